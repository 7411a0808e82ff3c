package http

import (
	agentUsecases "github.com/supporthub/supporthub/internal/application/agent/usecases"
	conversationUsecases "github.com/supporthub/supporthub/internal/application/conversation/usecases"
	inboundUsecases "github.com/supporthub/supporthub/internal/application/inbound/usecases"
	queueUsecases "github.com/supporthub/supporthub/internal/application/queue/usecases"
	routingUsecases "github.com/supporthub/supporthub/internal/application/routing/usecases"
	ticketUsecases "github.com/supporthub/supporthub/internal/application/ticket/usecases"
	"github.com/supporthub/supporthub/internal/infrastructure/email"
	"github.com/supporthub/supporthub/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Inbound
	ingestInboundUC    *inboundUsecases.IngestInboundUseCase
	postGuestMessageUC *inboundUsecases.PostGuestMessageUseCase

	// Conversation
	getConversationUC *conversationUsecases.GetConversationUseCase
	sendAgentReplyUC  *conversationUsecases.SendAgentReplyUseCase

	// Ticket
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase
	assignTicketUC *ticketUsecases.AssignTicketUseCase

	// Queue
	listQueuesUC    *queueUsecases.ListQueuesUseCase
	getQueueStatsUC *queueUsecases.GetQueueStatsUseCase

	// Agent
	listAgentsUC     *agentUsecases.ListAgentsUseCase
	updatePresenceUC *agentUsecases.UpdatePresenceUseCase

	// Routing rules
	listRulesUC  *routingUsecases.ListRulesUseCase
	createRuleUC *routingUsecases.CreateRuleUseCase
	updateRuleUC *routingUsecases.UpdateRuleUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	publisher := c.eventDispatcher
	renderer := markdown.NewRenderer()
	mailer := email.NewMailer(c.cfg.Email, renderer, log)

	c.ucs = &allUseCases{
		ingestInboundUC: inboundUsecases.NewIngestInboundUseCase(
			r.customerRepo, r.conversationRepo, r.ticketRepo, r.queueRepo,
			c.routingEngine, c.txMgr, publisher, log,
		),
		postGuestMessageUC: inboundUsecases.NewPostGuestMessageUseCase(
			r.conversationRepo, r.ticketRepo, c.txMgr, publisher, log,
		),

		getConversationUC: conversationUsecases.NewGetConversationUseCase(
			r.ticketRepo, r.conversationRepo, r.customerRepo, renderer, log,
		),
		sendAgentReplyUC: conversationUsecases.NewSendAgentReplyUseCase(
			r.conversationRepo, r.ticketRepo, r.customerRepo, mailer, c.txMgr, publisher, log,
		),

		listTicketsUC: ticketUsecases.NewListTicketsUseCase(
			r.ticketRepo, r.customerRepo, r.conversationRepo, r.queueRepo, r.userRepo, log,
		),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(
			r.ticketRepo, r.agentRepo, c.txMgr, publisher, c.cfg.Routing.AssignRetryLimit, log,
		),
		assignTicketUC: ticketUsecases.NewAssignTicketUseCase(
			r.ticketRepo, r.queueRepo, r.agentRepo, c.txMgr, publisher, c.cfg.Routing.AssignRetryLimit, log,
		),

		listQueuesUC:    queueUsecases.NewListQueuesUseCase(r.queueRepo, log),
		getQueueStatsUC: queueUsecases.NewGetQueueStatsUseCase(r.queueRepo, log),

		listAgentsUC:     agentUsecases.NewListAgentsUseCase(r.agentRepo, log),
		updatePresenceUC: agentUsecases.NewUpdatePresenceUseCase(r.agentRepo, log),

		listRulesUC:  routingUsecases.NewListRulesUseCase(r.ruleRepo, log),
		createRuleUC: routingUsecases.NewCreateRuleUseCase(r.ruleRepo, log),
		updateRuleUC: routingUsecases.NewUpdateRuleUseCase(r.ruleRepo, log),
	}
}
