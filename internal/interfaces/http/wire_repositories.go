package http

import (
	"gorm.io/gorm"

	"github.com/supporthub/supporthub/internal/domain/agent"
	"github.com/supporthub/supporthub/internal/domain/conversation"
	"github.com/supporthub/supporthub/internal/domain/customer"
	"github.com/supporthub/supporthub/internal/domain/queue"
	"github.com/supporthub/supporthub/internal/domain/routing"
	"github.com/supporthub/supporthub/internal/domain/ticket"
	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	customerRepo     customer.Repository
	conversationRepo conversation.Repository
	ticketRepo       ticket.Repository
	queueRepo        queue.Repository
	agentRepo        agent.Repository
	ruleRepo         routing.Repository
	userRepo         user.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		customerRepo:     repository.NewCustomerRepository(db),
		conversationRepo: repository.NewConversationRepository(db),
		ticketRepo:       repository.NewTicketRepository(db),
		queueRepo:        repository.NewQueueRepository(db),
		agentRepo:        repository.NewAgentRepository(db),
		ruleRepo:         repository.NewRoutingRuleRepository(db),
		userRepo:         repository.NewUserRepository(db),
	}
}
