package http

import (
	agentHandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/agent"
	conversationHandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/conversation"
	healthHandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/health"
	inboundHandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/inbound"
	queueHandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/queue"
	routingHandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/routing"
	ticketHandlers "github.com/supporthub/supporthub/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *healthHandlers.HealthHandler
	inboundHandler      *inboundHandlers.InboundHandler
	ticketHandler       *ticketHandlers.TicketHandler
	conversationHandler *conversationHandlers.ConversationHandler
	queueHandler        *queueHandlers.QueueHandler
	agentHandler        *agentHandlers.AgentHandler
	routingRuleHandler  *routingHandlers.RoutingRuleHandler
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	var pinger healthHandlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	} else {
		log.Warnw("health check will not ping the database", "error", err)
	}

	c.hdlrs = &allHandlers{
		healthHandler:       healthHandlers.NewHealthHandler(pinger, log),
		inboundHandler:      inboundHandlers.NewInboundHandler(u.ingestInboundUC, u.postGuestMessageUC, log),
		ticketHandler:       ticketHandlers.NewTicketHandler(u.listTicketsUC, u.updateTicketUC, u.assignTicketUC, log),
		conversationHandler: conversationHandlers.NewConversationHandler(u.getConversationUC, u.sendAgentReplyUC, log),
		queueHandler:        queueHandlers.NewQueueHandler(u.listQueuesUC, u.getQueueStatsUC, log),
		agentHandler:        agentHandlers.NewAgentHandler(u.listAgentsUC, u.updatePresenceUC, log),
		routingRuleHandler:  routingHandlers.NewRoutingRuleHandler(u.listRulesUC, u.createRuleUC, u.updateRuleUC, log),
	}
}
