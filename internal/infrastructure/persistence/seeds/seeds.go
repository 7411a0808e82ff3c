// Package seeds bootstraps an empty database with demo queues, users,
// agents and routing rules.
package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/supporthub/supporthub/internal/domain/agent"
	agentvo "github.com/supporthub/supporthub/internal/domain/agent/valueobjects"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/shared/authorization"
	"github.com/supporthub/supporthub/internal/shared/db"
	"github.com/supporthub/supporthub/internal/shared/logger"
)

//go:embed seed.yaml
var defaultSeed []byte

type Document struct {
	Queues []QueueSeed `yaml:"queues"`
	Users  []UserSeed  `yaml:"users"`
	Agents []AgentSeed `yaml:"agents"`
	Rules  []RuleSeed  `yaml:"rules"`
}

type QueueSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type UserSeed struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

// AgentSeed refers to its user by email and to queues by name.
type AgentSeed struct {
	Email            string   `yaml:"email"`
	Presence         string   `yaml:"presence"`
	MaxActiveTickets int      `yaml:"max_active_tickets"`
	Skills           []string `yaml:"skills"`
	Queues           []string `yaml:"queues"`
}

type RuleSeed struct {
	Name          string `yaml:"name"`
	PriorityOrder int    `yaml:"priority_order"`
	Disabled      bool   `yaml:"disabled"`
	Condition     string `yaml:"condition"`
	Action        string `yaml:"action"`
}

// Load parses the seed document at path, or the embedded default when path
// is empty.
func Load(path string) (*Document, error) {
	raw := defaultSeed
	if path != "" {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return &doc, nil
}

type Seeder struct {
	queueRepo queue.Repository
	userRepo  user.Repository
	agentRepo agent.Repository
	ruleRepo  routing.Repository
	txMgr     db.Transactor
	logger    logger.Interface
}

func NewSeeder(
	queueRepo queue.Repository,
	userRepo user.Repository,
	agentRepo agent.Repository,
	ruleRepo routing.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		queueRepo: queueRepo,
		userRepo:  userRepo,
		agentRepo: agentRepo,
		ruleRepo:  ruleRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Run applies doc in one transaction unless any queue already exists.
// It reports whether anything was written.
func (s *Seeder) Run(ctx context.Context, doc *Document) (bool, error) {
	count, err := s.queueRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count queues: %w", err)
	}
	if count > 0 {
		s.logger.Infow("database already seeded, skipping", "queues", count)
		return false, nil
	}

	err = s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		queueIDs, err := s.seedQueues(txCtx, doc.Queues)
		if err != nil {
			return err
		}
		users, err := s.seedUsers(txCtx, doc.Users)
		if err != nil {
			return err
		}
		if err := s.seedAgents(txCtx, doc.Agents, users, queueIDs); err != nil {
			return err
		}
		return s.seedRules(txCtx, doc.Rules)
	})
	if err != nil {
		return false, err
	}

	s.logger.Infow("seed data applied",
		"queues", len(doc.Queues),
		"users", len(doc.Users),
		"agents", len(doc.Agents),
		"rules", len(doc.Rules),
	)
	return true, nil
}

func (s *Seeder) seedQueues(ctx context.Context, seeds []QueueSeed) (map[string]uint, error) {
	ids := make(map[string]uint, len(seeds))
	for _, qs := range seeds {
		q, err := queue.NewQueue(qs.Name, qs.Description)
		if err != nil {
			return nil, fmt.Errorf("invalid queue seed %q: %w", qs.Name, err)
		}
		if err := s.queueRepo.Create(ctx, q); err != nil {
			return nil, err
		}
		ids[q.Name()] = q.ID()
	}
	return ids, nil
}

func (s *Seeder) seedUsers(ctx context.Context, seeds []UserSeed) (map[string]*user.User, error) {
	byEmail := make(map[string]*user.User, len(seeds))
	for _, us := range seeds {
		u, err := user.NewUser(us.Name, us.Email, authorization.ParseUserRole(us.Role))
		if err != nil {
			return nil, fmt.Errorf("invalid user seed %q: %w", us.Email, err)
		}
		if err := s.userRepo.Create(ctx, u); err != nil {
			return nil, err
		}
		byEmail[u.Email()] = u
	}
	return byEmail, nil
}

func (s *Seeder) seedAgents(ctx context.Context, seeds []AgentSeed, users map[string]*user.User, queueIDs map[string]uint) error {
	for _, as := range seeds {
		u, ok := users[as.Email]
		if !ok {
			return fmt.Errorf("agent seed refers to unknown user %q", as.Email)
		}

		a, err := agent.NewAgent(u.ID(), u.Name(), as.MaxActiveTickets, as.Skills)
		if err != nil {
			return fmt.Errorf("invalid agent seed %q: %w", as.Email, err)
		}
		if as.Presence != "" {
			presence, err := agentvo.NewPresence(as.Presence)
			if err != nil {
				return fmt.Errorf("invalid agent seed %q: %w", as.Email, err)
			}
			if err := a.SetPresence(presence); err != nil {
				return err
			}
		}
		if err := s.agentRepo.Create(ctx, a); err != nil {
			return err
		}

		for _, name := range as.Queues {
			queueID, ok := queueIDs[name]
			if !ok {
				return fmt.Errorf("agent seed %q refers to unknown queue %q", as.Email, name)
			}
			if err := s.agentRepo.AddToQueue(ctx, u.ID(), queueID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedRules(ctx context.Context, seeds []RuleSeed) error {
	for _, rs := range seeds {
		r, err := routing.NewRule(rs.Name, !rs.Disabled, rs.PriorityOrder, rs.Condition, rs.Action)
		if err != nil {
			return fmt.Errorf("invalid rule seed %q: %w", rs.Name, err)
		}
		if err := s.ruleRepo.Create(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
