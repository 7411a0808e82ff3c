// Package testutil provides in-memory repositories and collaborators for
// testing the application layer without a database.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/supporthub/supporthub/internal/domain/agent"
	agentvo "github.com/supporthub/supporthub/internal/domain/agent/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/shared/events"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	ticketvo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

// Store is a shared in-memory backing for every mock repository, so that
// cross-aggregate lookups (open conversations, queue positions) behave like
// the SQL implementations. Entities are copied on the way in and out.
type Store struct {
	mu sync.Mutex

	customers     map[uint]customer.Customer
	conversations map[uint]conversation.Conversation
	messages      []conversation.Message
	tickets       map[uint]ticket.Ticket
	queues        map[uint]queue.Queue
	agents        map[string]*agentRecord
	rules         map[uint]routing.Rule
	users         map[string]user.User
	nextID        uint

	// FailOn injects an error for an operation, keyed like "ticket.Update".
	FailOn map[string]error
	// ContendOnce makes the next TryIncrementLoad for the agent lose a race:
	// the count is bumped by a phantom writer and false is returned.
	ContendOnce map[string]bool
	// StaleLoads pins the active count that plain reads report for an agent,
	// like a transaction snapshot taken before other writers committed.
	// LockLoads and TryIncrementLoad always see the live count.
	StaleLoads map[string]int
}

type agentRecord struct {
	userID      string
	displayName string
	presence    agentvo.Presence
	maxActive   int
	active      int
	skills      []string
	queueIDs    []uint
}

func NewStore() *Store {
	return &Store{
		customers:     make(map[uint]customer.Customer),
		conversations: make(map[uint]conversation.Conversation),
		tickets:       make(map[uint]ticket.Ticket),
		queues:        make(map[uint]queue.Queue),
		agents:        make(map[string]*agentRecord),
		rules:         make(map[uint]routing.Rule),
		users:         make(map[string]user.User),
		FailOn:        make(map[string]error),
		ContendOnce:   make(map[string]bool),
		StaleLoads:    make(map[string]int),
	}
}

func (s *Store) fail(op string) error {
	return s.FailOn[op]
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// Customers, Conversations, ... return repositories backed by s.
func (s *Store) Customers() *MockCustomerRepository         { return &MockCustomerRepository{s} }
func (s *Store) Conversations() *MockConversationRepository { return &MockConversationRepository{s} }
func (s *Store) Tickets() *MockTicketRepository             { return &MockTicketRepository{s} }
func (s *Store) Queues() *MockQueueRepository               { return &MockQueueRepository{s} }
func (s *Store) Agents() *MockAgentRepository               { return &MockAgentRepository{s} }
func (s *Store) Rules() *MockRuleRepository                 { return &MockRuleRepository{s} }
func (s *Store) Users() *MockUserRepository                 { return &MockUserRepository{s} }

// MessageCount returns the number of stored messages in a conversation.
func (s *Store) MessageCount(conversationID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.messages {
		if m.ConversationID() == conversationID {
			n++
		}
	}
	return n
}

// TicketCount returns the number of stored tickets.
func (s *Store) TicketCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

// CustomerCount returns the number of stored customers.
func (s *Store) CustomerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

// AgentLoad returns the stored active ticket count for an agent.
func (s *Store) AgentLoad(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.agents[userID]; ok {
		return a.active
	}
	return -1
}

// SeedQueue stores a queue and returns its id.
func (s *Store) SeedQueue(name string) uint {
	q, _ := queue.NewQueue(name, "")
	_ = s.Queues().Create(context.Background(), q)
	return q.ID()
}

// SeedAgent stores an agent mapped to the given queues.
func (s *Store) SeedAgent(userID, name string, presence agentvo.Presence, maxActive, active int, queueIDs ...uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[userID] = &agentRecord{
		userID:      userID,
		displayName: name,
		presence:    presence,
		maxActive:   maxActive,
		active:      active,
		queueIDs:    append([]uint{}, queueIDs...),
	}
}

// SeedRule stores a rule and returns its id.
func (s *Store) SeedRule(name string, enabled bool, order int, condition, action string) uint {
	r, _ := routing.NewRule(name, enabled, order, condition, action)
	_ = s.Rules().Create(context.Background(), r)
	return r.ID()
}

// MockCustomerRepository implements customer.Repository.
type MockCustomerRepository struct{ s *Store }

func (m *MockCustomerRepository) Create(_ context.Context, c *customer.Customer) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("customer.Create"); err != nil {
		return err
	}
	if err := m.s.checkContactUnique(c); err != nil {
		return err
	}
	if err := c.SetID(m.s.id()); err != nil {
		return err
	}
	m.s.customers[c.ID()] = *c
	return nil
}

func (m *MockCustomerRepository) Update(_ context.Context, c *customer.Customer) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("customer.Update"); err != nil {
		return err
	}
	if err := m.s.checkContactUnique(c); err != nil {
		return err
	}
	m.s.customers[c.ID()] = *c
	return nil
}

func (m *MockCustomerRepository) GetByID(_ context.Context, id uint) (*customer.Customer, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c, ok := m.s.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return &c, nil
}

func (m *MockCustomerRepository) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	return m.find(func(c customer.Customer) bool { return c.Email() == email })
}

func (m *MockCustomerRepository) FindByPhone(_ context.Context, phone string) (*customer.Customer, error) {
	return m.find(func(c customer.Customer) bool { return c.Phone() == phone })
}

func (m *MockCustomerRepository) find(match func(customer.Customer) bool) (*customer.Customer, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var best *customer.Customer
	for _, c := range m.s.customers {
		if match(c) && (best == nil || c.ID() < best.ID()) {
			cp := c
			best = &cp
		}
	}
	return best, nil
}

// checkContactUnique mirrors the unique email and phone indexes.
func (s *Store) checkContactUnique(c *customer.Customer) error {
	for id, other := range s.customers {
		if id == c.ID() {
			continue
		}
		if c.Email() != "" && other.Email() == c.Email() {
			return fmt.Errorf("duplicate customer email")
		}
		if c.Phone() != "" && other.Phone() == c.Phone() {
			return fmt.Errorf("duplicate customer phone")
		}
	}
	return nil
}

// MockConversationRepository implements conversation.Repository.
type MockConversationRepository struct{ s *Store }

func (m *MockConversationRepository) Create(_ context.Context, c *conversation.Conversation) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("conversation.Create"); err != nil {
		return err
	}
	if err := c.SetID(m.s.id()); err != nil {
		return err
	}
	m.s.conversations[c.ID()] = *c
	return nil
}

func (m *MockConversationRepository) Update(_ context.Context, c *conversation.Conversation) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("conversation.Update"); err != nil {
		return err
	}
	m.s.conversations[c.ID()] = *c
	return nil
}

func (m *MockConversationRepository) GetByID(_ context.Context, id uint) (*conversation.Conversation, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c, ok := m.s.conversations[id]
	if !ok {
		return nil, conversation.ErrConversationNotFound
	}
	return &c, nil
}

func (m *MockConversationRepository) FindOpen(_ context.Context, customerID uint, channel convvo.Channel) (*conversation.Conversation, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var best *conversation.Conversation
	for _, c := range m.s.conversations {
		if c.CustomerID() != customerID || c.Channel() != channel {
			continue
		}
		open := false
		for _, t := range m.s.tickets {
			if t.ConversationID() == c.ID() && !t.Status().IsTerminal() {
				open = true
			}
		}
		if open && (best == nil || c.ID() > best.ID()) {
			cp := c
			best = &cp
		}
	}
	return best, nil
}

func (m *MockConversationRepository) AppendMessage(_ context.Context, msg *conversation.Message) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("conversation.AppendMessage"); err != nil {
		return err
	}
	if _, ok := m.s.conversations[msg.ConversationID()]; !ok {
		return conversation.ErrConversationNotFound
	}
	if err := msg.SetID(m.s.id()); err != nil {
		return err
	}
	m.s.messages = append(m.s.messages, *msg)
	return nil
}

func (m *MockConversationRepository) ListMessages(_ context.Context, conversationID uint) ([]*conversation.Message, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*conversation.Message
	for _, msg := range m.s.messages {
		if msg.ConversationID() == conversationID {
			cp := msg
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SentAt().Equal(out[j].SentAt()) {
			return out[i].SentAt().Before(out[j].SentAt())
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

// MockTicketRepository implements ticket.Repository.
type MockTicketRepository struct{ s *Store }

func (m *MockTicketRepository) Create(_ context.Context, t *ticket.Ticket) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("ticket.Create"); err != nil {
		return err
	}
	for _, existing := range m.s.tickets {
		if existing.ConversationID() == t.ConversationID() {
			return fmt.Errorf("UNIQUE constraint failed: tickets.conversation_id")
		}
	}
	if err := t.SetID(m.s.id()); err != nil {
		return err
	}
	m.s.tickets[t.ID()] = *t
	return nil
}

func (m *MockTicketRepository) Update(_ context.Context, t *ticket.Ticket) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("ticket.Update"); err != nil {
		return err
	}
	if _, ok := m.s.tickets[t.ID()]; !ok {
		return ticket.ErrTicketNotFound
	}
	m.s.tickets[t.ID()] = *t
	return nil
}

func (m *MockTicketRepository) GetByID(_ context.Context, id uint) (*ticket.Ticket, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	t, ok := m.s.tickets[id]
	if !ok {
		return nil, ticket.ErrTicketNotFound
	}
	return &t, nil
}

func (m *MockTicketRepository) GetByConversationID(_ context.Context, conversationID uint) (*ticket.Ticket, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, t := range m.s.tickets {
		if t.ConversationID() == conversationID {
			cp := t
			return &cp, nil
		}
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *MockTicketRepository) List(_ context.Context, f ticket.Filter) ([]*ticket.Ticket, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*ticket.Ticket
	for _, t := range m.s.tickets {
		if f.AssignedAgentID != nil && (t.AssignedAgentID() == nil || *t.AssignedAgentID() != *f.AssignedAgentID) {
			continue
		}
		if f.QueueID != nil && (t.QueueID() == nil || *t.QueueID() != *f.QueueID) {
			continue
		}
		if f.Status != nil && t.Status() != *f.Status {
			continue
		}
		cp := t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt().Equal(out[j].UpdatedAt()) {
			return out[i].UpdatedAt().After(out[j].UpdatedAt())
		}
		return out[i].ID() > out[j].ID()
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *MockTicketRepository) QueuePosition(_ context.Context, t *ticket.Ticket) (int, error) {
	if t.QueueID() == nil {
		return 0, nil
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	n := 0
	for _, o := range m.s.tickets {
		if o.QueueID() == nil || *o.QueueID() != *t.QueueID() || o.Status().IsTerminal() {
			continue
		}
		if o.CreatedAt().Before(t.CreatedAt()) || (o.CreatedAt().Equal(t.CreatedAt()) && o.ID() <= t.ID()) {
			n++
		}
	}
	return n, nil
}

// MockQueueRepository implements queue.Repository.
type MockQueueRepository struct{ s *Store }

func (m *MockQueueRepository) Create(_ context.Context, q *queue.Queue) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.queues {
		if existing.Name() == q.Name() {
			return fmt.Errorf("UNIQUE constraint failed: queues.name")
		}
	}
	if err := q.SetID(m.s.id()); err != nil {
		return err
	}
	m.s.queues[q.ID()] = *q
	return nil
}

func (m *MockQueueRepository) GetByID(_ context.Context, id uint) (*queue.Queue, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	q, ok := m.s.queues[id]
	if !ok {
		return nil, queue.ErrQueueNotFound
	}
	return &q, nil
}

func (m *MockQueueRepository) FindByName(_ context.Context, name string) (*queue.Queue, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("queue.FindByName"); err != nil {
		return nil, err
	}
	for _, q := range m.s.queues {
		if q.Name() == name {
			cp := q
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MockQueueRepository) List(_ context.Context) ([]*queue.Queue, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]*queue.Queue, 0, len(m.s.queues))
	for _, q := range m.s.queues {
		cp := q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *MockQueueRepository) Count(_ context.Context) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return int64(len(m.s.queues)), nil
}

func (m *MockQueueRepository) Stats(_ context.Context, id uint) (*queue.Stats, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.queues[id]; !ok {
		return nil, queue.ErrQueueNotFound
	}
	st := &queue.Stats{QueueID: id}
	for _, t := range m.s.tickets {
		if t.QueueID() == nil || *t.QueueID() != id || t.Status() == ticketvo.StatusClosed {
			continue
		}
		st.OpenCount++
		if c := t.CreatedAt(); st.OldestCreatedAt == nil || c.Before(*st.OldestCreatedAt) {
			st.OldestCreatedAt = &c
		}
	}
	return st, nil
}

// MockAgentRepository implements agent.Repository.
type MockAgentRepository struct{ s *Store }

func (r *agentRecord) toDomain() *agent.Agent {
	return agent.ReconstructAgent(r.userID, r.displayName, r.presence, r.maxActive, r.active,
		append([]string{}, r.skills...), append([]uint{}, r.queueIDs...))
}

func (s *Store) agentView(rec *agentRecord) *agent.Agent {
	a := rec.toDomain()
	if n, ok := s.StaleLoads[rec.userID]; ok {
		a.SyncActiveTicketCount(n)
	}
	return a
}

func (m *MockAgentRepository) Create(_ context.Context, a *agent.Agent) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.agents[a.UserID()] = &agentRecord{
		userID:      a.UserID(),
		displayName: a.DisplayName(),
		presence:    a.Presence(),
		maxActive:   a.MaxActiveTickets(),
		active:      a.ActiveTicketCount(),
		skills:      a.Skills(),
	}
	return nil
}

func (m *MockAgentRepository) Update(_ context.Context, a *agent.Agent) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	rec, ok := m.s.agents[a.UserID()]
	if !ok {
		return agent.ErrAgentNotFound
	}
	rec.presence = a.Presence()
	rec.maxActive = a.MaxActiveTickets()
	rec.skills = a.Skills()
	return nil
}

func (m *MockAgentRepository) GetByUserID(_ context.Context, userID string) (*agent.Agent, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	rec, ok := m.s.agents[userID]
	if !ok {
		return nil, agent.ErrAgentNotFound
	}
	return m.s.agentView(rec), nil
}

func (m *MockAgentRepository) List(_ context.Context) ([]*agent.Agent, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []*agent.Agent
	for _, rec := range m.s.agents {
		out = append(out, m.s.agentView(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName() < out[j].DisplayName() })
	return out, nil
}

func (m *MockAgentRepository) ListByQueue(_ context.Context, queueID uint) ([]*agent.Agent, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("agent.ListByQueue"); err != nil {
		return nil, err
	}
	var out []*agent.Agent
	for _, rec := range m.s.agents {
		for _, q := range rec.queueIDs {
			if q == queueID {
				out = append(out, m.s.agentView(rec))
				break
			}
		}
	}
	// Map iteration order is random; callers must not rely on it.
	sort.Slice(out, func(i, j int) bool { return strings.Compare(out[i].UserID(), out[j].UserID()) > 0 })
	return out, nil
}

func (m *MockAgentRepository) AddToQueue(_ context.Context, userID string, queueID uint) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	rec, ok := m.s.agents[userID]
	if !ok {
		return agent.ErrAgentNotFound
	}
	rec.queueIDs = append(rec.queueIDs, queueID)
	return nil
}

func (m *MockAgentRepository) LockLoads(_ context.Context, userIDs []string) (map[string]int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("agent.LockLoads"); err != nil {
		return nil, err
	}
	loads := make(map[string]int, len(userIDs))
	for _, id := range userIDs {
		if rec, ok := m.s.agents[id]; ok {
			loads[id] = rec.active
		}
	}
	return loads, nil
}

func (m *MockAgentRepository) TryIncrementLoad(_ context.Context, userID string, expected int) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("agent.TryIncrementLoad"); err != nil {
		return false, err
	}
	rec, ok := m.s.agents[userID]
	if !ok {
		return false, agent.ErrAgentNotFound
	}
	if m.s.ContendOnce[userID] {
		delete(m.s.ContendOnce, userID)
		rec.active++
		return false, nil
	}
	if rec.active != expected {
		return false, nil
	}
	rec.active++
	return true, nil
}

func (m *MockAgentRepository) ReleaseLoad(_ context.Context, userID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if rec, ok := m.s.agents[userID]; ok && rec.active > 0 {
		rec.active--
	}
	return nil
}

// MockRuleRepository implements routing.Repository.
type MockRuleRepository struct{ s *Store }

func (m *MockRuleRepository) Create(_ context.Context, r *routing.Rule) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := r.SetID(m.s.id()); err != nil {
		return err
	}
	m.s.rules[r.ID()] = *r
	return nil
}

func (m *MockRuleRepository) Update(_ context.Context, r *routing.Rule) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.rules[r.ID()]; !ok {
		return routing.ErrRuleNotFound
	}
	m.s.rules[r.ID()] = *r
	return nil
}

func (m *MockRuleRepository) GetByID(_ context.Context, id uint) (*routing.Rule, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	r, ok := m.s.rules[id]
	if !ok {
		return nil, routing.ErrRuleNotFound
	}
	return &r, nil
}

func (m *MockRuleRepository) ListEnabled(ctx context.Context) ([]*routing.Rule, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, r := range all {
		if r.IsEnabled() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRuleRepository) List(_ context.Context) ([]*routing.Rule, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if err := m.s.fail("rule.List"); err != nil {
		return nil, err
	}
	out := make([]*routing.Rule, 0, len(m.s.rules))
	for _, r := range m.s.rules {
		cp := r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PriorityOrder() != out[j].PriorityOrder() {
			return out[i].PriorityOrder() < out[j].PriorityOrder()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

// MockUserRepository implements user.Repository.
type MockUserRepository struct{ s *Store }

func (m *MockUserRepository) Create(_ context.Context, u *user.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.users[u.ID()] = *u
	return nil
}

func (m *MockUserRepository) GetByID(_ context.Context, id string) (*user.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	u, ok := m.s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (m *MockUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Email() == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// MockTransactor runs the function directly and counts invocations.
type MockTransactor struct {
	Calls int
	Err   error
}

func (m *MockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

// RecordingPublisher captures published events.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []events.DomainEvent
	Err    error
}

func (p *RecordingPublisher) Publish(e events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, e)
	return nil
}

func (p *RecordingPublisher) PublishAll(es []events.DomainEvent) error {
	for _, e := range es {
		if err := p.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

// Types returns the recorded event types in publish order.
func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.GetEventType()
	}
	return out
}

// NewDiscardLogger returns a logger that writes nowhere.
func NewDiscardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
