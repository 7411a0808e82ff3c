package usecases

import "context"

// OutboundEmail is an agent reply delivered to a customer's mailbox.
type OutboundEmail struct {
	To             string
	ToName         string
	Subject        string
	Body           string
	ConversationID uint
}

// ReplyMailer delivers agent replies on email conversations.
type ReplyMailer interface {
	SendReply(ctx context.Context, msg OutboundEmail) error
}
