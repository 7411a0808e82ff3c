package models

// All returns every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&QueueModel{},
		&AgentModel{},
		&AgentQueueModel{},
		&CustomerModel{},
		&ConversationModel{},
		&MessageModel{},
		&TicketModel{},
		&RoutingRuleModel{},
	}
}
