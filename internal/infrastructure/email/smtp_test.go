package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/supporthub/supporthub/internal/application/conversation/usecases"
	"github.com/supporthub/supporthub/internal/application/testutil"
	"github.com/supporthub/supporthub/internal/shared/config"
	"github.com/supporthub/supporthub/internal/shared/services/markdown"
)

func newTestMailer(send func(m *gomail.Message) error) *SMTPMailer {
	m := NewSMTPMailer(SMTPConfig{
		Host:        "localhost",
		Port:        2525,
		FromAddress: "support@demo.local",
		FromName:    "Support",
	}, markdown.NewRenderer(), testutil.NewDiscardLogger())
	m.send = send
	return m
}

func TestSMTPMailer_SendReply(t *testing.T) {
	var sent *gomail.Message
	mailer := newTestMailer(func(m *gomail.Message) error {
		sent = m
		return nil
	})

	err := mailer.SendReply(context.Background(), usecases.OutboundEmail{
		To:             "ann@example.com",
		ToName:         "Ann",
		Subject:        "Re: Refund",
		Body:           "Your refund is **on its way**.",
		ConversationID: 12,
	})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{`"Ann" <ann@example.com>`}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Re: Refund"}, sent.GetHeader("Subject"))
	assert.Equal(t, []string{"12"}, sent.GetHeader(conversationHeader))

	var raw bytes.Buffer
	_, err = sent.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "text/plain")
	assert.Contains(t, raw.String(), "text/html")
	assert.Contains(t, raw.String(), "<strong>on its way</strong>")
}

func TestSMTPMailer_Errors(t *testing.T) {
	t.Run("missing recipient", func(t *testing.T) {
		called := false
		mailer := newTestMailer(func(*gomail.Message) error { called = true; return nil })

		err := mailer.SendReply(context.Background(), usecases.OutboundEmail{Body: "hi"})

		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("transport failure", func(t *testing.T) {
		mailer := newTestMailer(func(*gomail.Message) error { return errors.New("connection refused") })

		err := mailer.SendReply(context.Background(), usecases.OutboundEmail{To: "ann@example.com", Body: "hi"})

		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("cancelled context", func(t *testing.T) {
		mailer := newTestMailer(func(*gomail.Message) error { return nil })
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := mailer.SendReply(ctx, usecases.OutboundEmail{To: "ann@example.com", Body: "hi"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewMailer_SelectsImplementation(t *testing.T) {
	log := testutil.NewDiscardLogger()
	r := markdown.NewRenderer()

	assert.IsType(t, &LogMailer{}, NewMailer(config.EmailConfig{}, r, log))
	assert.IsType(t, &LogMailer{}, NewMailer(config.EmailConfig{Enabled: true}, r, log))
	assert.IsType(t, &SMTPMailer{}, NewMailer(config.EmailConfig{Enabled: true, SMTPHost: "smtp.local", SMTPPort: 25}, r, log))

	assert.NoError(t, NewLogMailer(log).SendReply(context.Background(), usecases.OutboundEmail{To: "x@example.com"}))
}
