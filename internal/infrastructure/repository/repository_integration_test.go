package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/supporthub/supporthub/internal/domain/agent"
	agentvo "github.com/supporthub/supporthub/internal/domain/agent/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	convvo "github.com/supporthub/supporthub/internal/domain/conversation/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	ticketvo "github.com/supporthub/supporthub/internal/domain/ticket/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
	"github.com/supporthub/supporthub/internal/shared/authorization"
	"github.com/supporthub/supporthub/internal/shared/db"
)

var t0 = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	// Every pooled connection to :memory: is a separate database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

type testRepos struct {
	customers     *CustomerRepository
	conversations *ConversationRepository
	tickets       *TicketRepository
	queues        *QueueRepository
	agents        *AgentRepository
	rules         *RoutingRuleRepository
	users         *UserRepository
}

func newTestRepos(t *testing.T) (*gorm.DB, testRepos) {
	gdb := setupTestDB(t)
	return gdb, testRepos{
		customers:     NewCustomerRepository(gdb),
		conversations: NewConversationRepository(gdb),
		tickets:       NewTicketRepository(gdb),
		queues:        NewQueueRepository(gdb),
		agents:        NewAgentRepository(gdb),
		rules:         NewRoutingRuleRepository(gdb),
		users:         NewUserRepository(gdb),
	}
}

// seedTicket stores a customer, a conversation on channel and its ticket.
func (r testRepos) seedTicket(t *testing.T, customerID uint, channel convvo.Channel, createdAt time.Time, mutate func(*ticket.Ticket)) (*conversation.Conversation, *ticket.Ticket) {
	t.Helper()
	ctx := context.Background()
	if customerID == 0 {
		c := customer.NewCustomer("Ann", "", "", false, createdAt)
		require.NoError(t, r.customers.Create(ctx, c))
		customerID = c.ID()
	}
	convo, err := conversation.NewConversation(customerID, channel, "", createdAt)
	require.NoError(t, err)
	require.NoError(t, r.conversations.Create(ctx, convo))
	tk, err := ticket.NewTicket(convo.ID(), customerID, createdAt)
	require.NoError(t, err)
	if mutate != nil {
		mutate(tk)
	}
	require.NoError(t, r.tickets.Create(ctx, tk))
	return convo, tk
}

func TestCustomerRepository(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()

	ann := customer.NewCustomer("Ann", "ann@example.com", "+15550001", true, t0)
	require.NoError(t, repos.customers.Create(ctx, ann))
	require.NotZero(t, ann.ID())

	t.Run("customers without addresses do not collide", func(t *testing.T) {
		require.NoError(t, repos.customers.Create(ctx, customer.NewCustomer("A", "", "", false, t0)))
		require.NoError(t, repos.customers.Create(ctx, customer.NewCustomer("B", "", "", false, t0)))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := repos.customers.Create(ctx, customer.NewCustomer("Other", "ann@example.com", "", false, t0))
		assert.Error(t, err)
	})

	t.Run("find by email and phone", func(t *testing.T) {
		byEmail, err := repos.customers.FindByEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, ann.ID(), byEmail.ID())
		assert.True(t, byEmail.IsVIP())
		assert.Equal(t, t0, byEmail.CreatedAt())

		byPhone, err := repos.customers.FindByPhone(ctx, "+15550001")
		require.NoError(t, err)
		require.NotNil(t, byPhone)
		assert.Equal(t, ann.ID(), byPhone.ID())
	})

	t.Run("misses return nil", func(t *testing.T) {
		c, err := repos.customers.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, c)

		c, err = repos.customers.FindByPhone(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, c)

		_, err = repos.customers.GetByID(ctx, 999)
		assert.True(t, errors.Is(err, customer.ErrCustomerNotFound))
	})

	t.Run("update refreshes name and vip", func(t *testing.T) {
		ann.Refresh("Ann Lee", false)
		require.NoError(t, repos.customers.Update(ctx, ann))

		stored, err := repos.customers.GetByID(ctx, ann.ID())
		require.NoError(t, err)
		assert.Equal(t, "Ann Lee", stored.Name())
		assert.False(t, stored.IsVIP())
		assert.Equal(t, "ann@example.com", stored.Email())
	})
}

func TestConversationRepository_FindOpen(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()

	cust := customer.NewCustomer("Ann", "ann@example.com", "", false, t0)
	require.NoError(t, repos.customers.Create(ctx, cust))

	closedConvo, _ := repos.seedTicket(t, cust.ID(), convvo.ChannelEmail, t0, func(tk *ticket.Ticket) {
		_ = tk.ChangeStatus(ticketvo.StatusClosed, t0)
	})
	openConvo, _ := repos.seedTicket(t, cust.ID(), convvo.ChannelEmail, t0.Add(time.Minute), func(tk *ticket.Ticket) {
		_ = tk.ChangeStatus(ticketvo.StatusPending, t0)
	})
	resolvedConvo, _ := repos.seedTicket(t, cust.ID(), convvo.ChannelEmail, t0.Add(2*time.Minute), func(tk *ticket.Ticket) {
		_ = tk.ChangeStatus(ticketvo.StatusResolved, t0)
	})

	found, err := repos.conversations.FindOpen(ctx, cust.ID(), convvo.ChannelEmail)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, openConvo.ID(), found.ID())
	assert.NotEqual(t, closedConvo.ID(), found.ID())
	assert.NotEqual(t, resolvedConvo.ID(), found.ID())

	none, err := repos.conversations.FindOpen(ctx, cust.ID(), convvo.ChannelSMS)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestConversationRepository_Messages(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()
	convo, _ := repos.seedTicket(t, 0, convvo.ChannelChat, t0, nil)

	late, err := conversation.NewMessage(convo.ID(), convvo.DirectionInbound, "ann", "second", t0.Add(time.Minute))
	require.NoError(t, err)
	early, err := conversation.NewMessage(convo.ID(), convvo.DirectionOutbound, "agent:Alex", "first", t0)
	require.NoError(t, err)
	require.NoError(t, repos.conversations.AppendMessage(ctx, late))
	require.NoError(t, repos.conversations.AppendMessage(ctx, early))

	require.NoError(t, convo.Record(late))
	require.NoError(t, repos.conversations.Update(ctx, convo))

	msgs, err := repos.conversations.ListMessages(ctx, convo.ID())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Body())
	assert.Equal(t, convvo.DirectionOutbound, msgs[0].Direction())
	assert.Equal(t, "agent:Alex", msgs[0].From())
	assert.Equal(t, "second", msgs[1].Body())

	stored, err := repos.conversations.GetByID(ctx, convo.ID())
	require.NoError(t, err)
	assert.Equal(t, t0.Add(time.Minute), stored.LastMessageAt())

	_, err = repos.conversations.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, conversation.ErrConversationNotFound))
}

func TestTicketRepository_CreateUpdateAndLookup(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()
	q, err := queue.NewQueue("Billing", "")
	require.NoError(t, err)
	require.NoError(t, repos.queues.Create(ctx, q))

	convo, tk := repos.seedTicket(t, 0, convvo.ChannelChat, t0, nil)

	t.Run("one ticket per conversation", func(t *testing.T) {
		dup, err := ticket.NewTicket(convo.ID(), tk.CustomerID(), t0)
		require.NoError(t, err)
		assert.Error(t, repos.tickets.Create(ctx, dup))
	})

	t.Run("update persists routing fields", func(t *testing.T) {
		tk.AssignQueue(q.ID())
		require.NoError(t, tk.SetPriority(ticketvo.PriorityUrgent))
		tk.SetCategory("VIP")
		_, err := tk.AssignAgent("alex", t0.Add(time.Hour))
		require.NoError(t, err)
		tk.MarkRouted(t0.Add(time.Hour))
		require.NoError(t, repos.tickets.Update(ctx, tk))

		stored, err := repos.tickets.GetByConversationID(ctx, convo.ID())
		require.NoError(t, err)
		assert.Equal(t, tk.ID(), stored.ID())
		require.NotNil(t, stored.QueueID())
		assert.Equal(t, q.ID(), *stored.QueueID())
		require.NotNil(t, stored.AssignedAgentID())
		assert.Equal(t, "alex", *stored.AssignedAgentID())
		assert.Equal(t, ticketvo.StatusOpen, stored.Status())
		assert.Equal(t, ticketvo.PriorityUrgent, stored.Priority())
		assert.Equal(t, "VIP", stored.Category())
		assert.Equal(t, t0, stored.CreatedAt())
		assert.Equal(t, t0.Add(time.Hour), stored.UpdatedAt())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repos.tickets.GetByID(ctx, 999)
		assert.True(t, errors.Is(err, ticket.ErrTicketNotFound))
		_, err = repos.tickets.GetByConversationID(ctx, 999)
		assert.True(t, errors.Is(err, ticket.ErrTicketNotFound))
	})
}

func TestTicketRepository_List(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()
	queueID := uint(7)

	_, older := repos.seedTicket(t, 0, convvo.ChannelChat, t0, func(tk *ticket.Ticket) {
		tk.AssignQueue(queueID)
		_, _ = tk.AssignAgent("alex", t0)
	})
	_, newer := repos.seedTicket(t, 0, convvo.ChannelSMS, t0.Add(time.Minute), nil)
	_, closed := repos.seedTicket(t, 0, convvo.ChannelSMS, t0.Add(2*time.Minute), func(tk *ticket.Ticket) {
		tk.AssignQueue(queueID)
		_ = tk.ChangeStatus(ticketvo.StatusClosed, t0.Add(2*time.Minute))
	})

	all, err := repos.tickets.List(ctx, ticket.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{closed.ID(), newer.ID(), older.ID()}, []uint{all[0].ID(), all[1].ID(), all[2].ID()})

	agentID := "alex"
	mine, err := repos.tickets.List(ctx, ticket.Filter{AssignedAgentID: &agentID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, older.ID(), mine[0].ID())

	status := ticketvo.StatusClosed
	inQueue, err := repos.tickets.List(ctx, ticket.Filter{QueueID: &queueID, Status: &status})
	require.NoError(t, err)
	require.Len(t, inQueue, 1)
	assert.Equal(t, closed.ID(), inQueue[0].ID())

	limited, err := repos.tickets.List(ctx, ticket.Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestTicketRepository_QueuePosition(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()
	queueID := uint(3)
	inQueue := func(tk *ticket.Ticket) { tk.AssignQueue(queueID) }

	_, first := repos.seedTicket(t, 0, convvo.ChannelChat, t0, inQueue)
	repos.seedTicket(t, 0, convvo.ChannelChat, t0.Add(time.Second), func(tk *ticket.Ticket) {
		tk.AssignQueue(queueID)
		_ = tk.ChangeStatus(ticketvo.StatusResolved, t0)
	})
	_, third := repos.seedTicket(t, 0, convvo.ChannelChat, t0.Add(2*time.Second), inQueue)
	_, sameInstant := repos.seedTicket(t, 0, convvo.ChannelChat, t0.Add(2*time.Second), inQueue)
	_, unrouted := repos.seedTicket(t, 0, convvo.ChannelChat, t0, nil)

	tests := []struct {
		name string
		tk   *ticket.Ticket
		want int
	}{
		{name: "head of queue", tk: first, want: 1},
		{name: "terminal tickets are skipped", tk: third, want: 2},
		{name: "id breaks creation ties", tk: sameInstant, want: 3},
		{name: "no queue", tk: unrouted, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repos.tickets.QueuePosition(ctx, tt.tk)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueueRepository(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()

	for _, name := range []string{"Tech Support", "Billing", "General"} {
		q, err := queue.NewQueue(name, name+" queue")
		require.NoError(t, err)
		require.NoError(t, repos.queues.Create(ctx, q))
	}

	count, err := repos.queues.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	list, err := repos.queues.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Billing", list[0].Name())
	assert.Equal(t, "Tech Support", list[2].Name())

	billing, err := repos.queues.FindByName(ctx, "Billing")
	require.NoError(t, err)
	require.NotNil(t, billing)
	assert.Equal(t, "Billing queue", billing.Description())

	lower, err := repos.queues.FindByName(ctx, "billing")
	require.NoError(t, err)
	assert.Nil(t, lower, "queue names match exactly")

	_, err = repos.queues.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, queue.ErrQueueNotFound))
}

func TestQueueRepository_Stats(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()
	q, err := queue.NewQueue("Billing", "")
	require.NoError(t, err)
	require.NoError(t, repos.queues.Create(ctx, q))

	empty, err := repos.queues.Stats(ctx, q.ID())
	require.NoError(t, err)
	assert.Zero(t, empty.OpenCount)
	assert.Nil(t, empty.OldestCreatedAt)

	repos.seedTicket(t, 0, convvo.ChannelChat, t0, func(tk *ticket.Ticket) {
		tk.AssignQueue(q.ID())
		_ = tk.ChangeStatus(ticketvo.StatusClosed, t0)
	})
	repos.seedTicket(t, 0, convvo.ChannelChat, t0.Add(time.Hour), func(tk *ticket.Ticket) {
		tk.AssignQueue(q.ID())
		_ = tk.ChangeStatus(ticketvo.StatusResolved, t0.Add(time.Hour))
	})
	repos.seedTicket(t, 0, convvo.ChannelChat, t0.Add(2*time.Hour), func(tk *ticket.Ticket) { tk.AssignQueue(q.ID()) })

	stats, err := repos.queues.Stats(ctx, q.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.OpenCount)
	require.NotNil(t, stats.OldestCreatedAt)
	assert.Equal(t, t0.Add(time.Hour), *stats.OldestCreatedAt)

	_, err = repos.queues.Stats(ctx, 999)
	assert.True(t, errors.Is(err, queue.ErrQueueNotFound))
}

func TestAgentRepository(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()

	alex, err := agent.NewAgent("alex", "Agent Alex", 2, []string{"billing", "refunds"})
	require.NoError(t, err)
	require.NoError(t, repos.agents.Create(ctx, alex))
	bea, err := agent.NewAgent("bea", "Agent Bea", 0, nil)
	require.NoError(t, err)
	require.NoError(t, repos.agents.Create(ctx, bea))

	require.NoError(t, repos.agents.AddToQueue(ctx, "alex", 1))
	require.NoError(t, repos.agents.AddToQueue(ctx, "alex", 2))
	require.NoError(t, repos.agents.AddToQueue(ctx, "alex", 2), "membership is idempotent")
	require.NoError(t, repos.agents.AddToQueue(ctx, "bea", 2))

	t.Run("get with memberships", func(t *testing.T) {
		got, err := repos.agents.GetByUserID(ctx, "alex")
		require.NoError(t, err)
		assert.Equal(t, "Agent Alex", got.DisplayName())
		assert.Equal(t, agentvo.PresenceOffline, got.Presence())
		assert.Equal(t, []string{"billing", "refunds"}, got.Skills())
		assert.Equal(t, []uint{1, 2}, got.QueueIDs())

		_, err = repos.agents.GetByUserID(ctx, "ghost")
		assert.True(t, errors.Is(err, agent.ErrAgentNotFound))
	})

	t.Run("list by queue", func(t *testing.T) {
		inBoth, err := repos.agents.ListByQueue(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, inBoth, 2)

		onlyAlex, err := repos.agents.ListByQueue(ctx, 1)
		require.NoError(t, err)
		require.Len(t, onlyAlex, 1)
		assert.Equal(t, "alex", onlyAlex[0].UserID())

		all, err := repos.agents.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Agent Alex", all[0].DisplayName())
		assert.Equal(t, agent.DefaultMaxActiveTickets, all[1].MaxActiveTickets())
	})

	t.Run("update keeps workload", func(t *testing.T) {
		ok, err := repos.agents.TryIncrementLoad(ctx, "bea", 0)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, bea.SetPresence(agentvo.PresenceAvailable))
		require.NoError(t, repos.agents.Update(ctx, bea))

		got, err := repos.agents.GetByUserID(ctx, "bea")
		require.NoError(t, err)
		assert.Equal(t, agentvo.PresenceAvailable, got.Presence())
		assert.Equal(t, 1, got.ActiveTicketCount())
	})
}

func TestAgentRepository_Workload(t *testing.T) {
	gdb, repos := newTestRepos(t)
	ctx := context.Background()
	a, err := agent.NewAgent("alex", "Agent Alex", 5, nil)
	require.NoError(t, err)
	require.NoError(t, repos.agents.Create(ctx, a))

	ok, err := repos.agents.TryIncrementLoad(ctx, "alex", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repos.agents.TryIncrementLoad(ctx, "alex", 0)
	require.NoError(t, err)
	assert.False(t, ok, "stale expectation loses")

	ok, err = repos.agents.TryIncrementLoad(ctx, "ghost", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	loads, err := repos.agents.LockLoads(ctx, []string{"alex", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"alex": 1}, loads)

	loads, err = repos.agents.LockLoads(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, loads)

	err = db.NewTransactionManager(gdb).RunInTransaction(ctx, func(txCtx context.Context) error {
		loads, err := repos.agents.LockLoads(txCtx, []string{"alex"})
		if err != nil {
			return err
		}
		ok, err := repos.agents.TryIncrementLoad(txCtx, "alex", loads["alex"])
		if err != nil {
			return err
		}
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, repos.agents.ReleaseLoad(ctx, "alex"))

	require.NoError(t, repos.agents.ReleaseLoad(ctx, "alex"))
	require.NoError(t, repos.agents.ReleaseLoad(ctx, "alex"))

	got, err := repos.agents.GetByUserID(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, 0, got.ActiveTicketCount(), "release never goes below zero")
}

func TestRoutingRuleRepository(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()

	create := func(name string, enabled bool, order int, condition string) *routing.Rule {
		r, err := routing.NewRule(name, enabled, order, condition, `{"queueName":"General"}`)
		require.NoError(t, err)
		require.NoError(t, repos.rules.Create(ctx, r))
		return r
	}
	fallback := create("Fallback", true, 999, `{}`)
	disabled := create("Disabled", false, 1, `{"isVip":true}`)
	vip := create("VIP", true, 1, `{"isVip":true}`)
	broken := create("Broken", true, 5, `{not json`)

	enabled, err := repos.rules.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, enabled, 3)
	assert.Equal(t, []uint{vip.ID(), broken.ID(), fallback.ID()}, []uint{enabled[0].ID(), enabled[1].ID(), enabled[2].ID()})

	all, err := repos.rules.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, disabled.ID(), all[0].ID(), "id breaks priority ties")
	assert.False(t, all[0].IsEnabled())

	stored, err := repos.rules.GetByID(ctx, broken.ID())
	require.NoError(t, err)
	assert.Equal(t, "{}", stored.ConditionJSON())
	assert.True(t, routing.ParseCondition(stored.ConditionJSON()).IsEmpty())

	on := true
	order := 0
	require.NoError(t, disabled.Apply(routing.RulePatch{Enabled: &on, PriorityOrder: &order}))
	require.NoError(t, repos.rules.Update(ctx, disabled))
	enabled, err = repos.rules.ListEnabled(ctx)
	require.NoError(t, err)
	assert.Equal(t, disabled.ID(), enabled[0].ID())

	_, err = repos.rules.GetByID(ctx, 999)
	assert.True(t, errors.Is(err, routing.ErrRuleNotFound))
}

func TestUserRepository(t *testing.T) {
	_, repos := newTestRepos(t)
	ctx := context.Background()

	u, err := user.NewUser("Sam Super", "sam@supporthub.local", authorization.RoleSupervisor)
	require.NoError(t, err)
	require.NoError(t, repos.users.Create(ctx, u))

	got, err := repos.users.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Sam Super", got.Name())
	assert.Equal(t, authorization.RoleSupervisor, got.Role())
	assert.True(t, got.IsActive())

	byEmail, err := repos.users.FindByEmail(ctx, "sam@supporthub.local")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())

	miss, err := repos.users.FindByEmail(ctx, "nobody@supporthub.local")
	require.NoError(t, err)
	assert.Nil(t, miss)

	_, err = repos.users.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, user.ErrUserNotFound))
}

func TestTransactionManager_RollsBack(t *testing.T) {
	gdb, repos := newTestRepos(t)
	ctx := context.Background()
	txMgr := db.NewTransactionManager(gdb)

	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		q, err := queue.NewQueue("Billing", "")
		require.NoError(t, err)
		require.NoError(t, repos.queues.Create(txCtx, q))
		return errors.New("boom")
	})
	require.Error(t, err)

	count, err := repos.queues.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		q, err := queue.NewQueue("Billing", "")
		if err != nil {
			return err
		}
		return repos.queues.Create(txCtx, q)
	})
	require.NoError(t, err)
	count, err = repos.queues.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
