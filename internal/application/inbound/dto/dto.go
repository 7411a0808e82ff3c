package dto

import "time"

// CustomerHint carries the identity a channel adapter knows about the sender.
type CustomerHint struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	IsVIP bool   `json:"isVip"`
}

// InboundMessageRequest is the payload accepted on /inbound/{channel}.
type InboundMessageRequest struct {
	From      string       `json:"from"`
	Customer  CustomerHint `json:"customer"`
	Subject   string       `json:"subject"`
	Body      string       `json:"body"`
	Timestamp *time.Time   `json:"timestamp,omitempty"`
}

// GuestMessageRequest is a follow-up typed into the guest chat widget.
type GuestMessageRequest struct {
	Body string `json:"body"`
}

type InboundResultDTO struct {
	TicketID        uint   `json:"ticket_id"`
	ConversationID  uint   `json:"conversation_id"`
	MessageID       uint   `json:"message_id"`
	QueuePosition   int    `json:"queue_position"`
	QueueName       string `json:"queue_name,omitempty"`
	AssignedAgentID string `json:"assigned_agent_id,omitempty"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	Category        string `json:"category"`
	MatchedRule     string `json:"matched_rule,omitempty"`
}

type GuestMessageResultDTO struct {
	MessageID uint `json:"message_id"`
}
