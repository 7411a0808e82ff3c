package constants

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware.
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserName  = "user_name"
	ContextKeyRequestID = "request_id"

	// Ticket listing cap.
	MaxTicketListSize = 200

	DefaultCustomerName = "Unknown"
	DefaultCategory     = "General"
	GuestSender         = "guest"
	AgentSenderPrefix   = "agent:"

	ErrMsgInternalServerError = "Internal server error occurred"
)

const (
	TableUsers         = "users"
	TableCustomers     = "customers"
	TableConversations = "conversations"
	TableMessages      = "messages"
	TableTickets       = "tickets"
	TableQueues        = "queues"
	TableAgents        = "agents"
	TableAgentQueues   = "agent_queues"
	TableRoutingRules  = "routing_rules"
)
