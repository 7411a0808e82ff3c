package dto

import "time"

type SendReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

type ReplyResultDTO struct {
	MessageID uint `json:"message_id"`
}

type CustomerDTO struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	IsVIP bool   `json:"is_vip"`
}

type MessageDTO struct {
	ID        uint      `json:"id"`
	Direction string    `json:"direction"`
	From      string    `json:"from"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html"`
	SentAt    time.Time `json:"sent_at"`
}

// ConversationViewDTO is the agent-facing view of a ticket's conversation.
type ConversationViewDTO struct {
	TicketID       uint         `json:"ticket_id"`
	ConversationID uint         `json:"conversation_id"`
	Channel        string       `json:"channel"`
	Subject        *string      `json:"subject"`
	Customer       CustomerDTO  `json:"customer"`
	Messages       []MessageDTO `json:"messages"`
}
