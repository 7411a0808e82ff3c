package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/supporthub/supporthub/internal/application/conversation/usecases"
	"github.com/supporthub/supporthub/internal/shared/config"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/services/markdown"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

const conversationHeader = "X-SupportHub-Conversation"

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

func SMTPConfigFrom(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

// SMTPMailer sends agent replies as multipart mail: the body as typed plus
// its rendered HTML.
type SMTPMailer struct {
	config   SMTPConfig
	renderer markdown.Renderer
	send     func(m *gomail.Message) error
	logger   logger.Interface
}

func NewSMTPMailer(config SMTPConfig, renderer markdown.Renderer, logger logger.Interface) *SMTPMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPMailer{
		config:   config,
		renderer: renderer,
		send:     func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		logger:   logger,
	}
}

func (s *SMTPMailer) SendReply(ctx context.Context, msg usecases.OutboundEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("reply email sent",
		"conversation_id", msg.ConversationID,
		"to", utils.MaskEmail(msg.To),
	)
	return nil
}

func (s *SMTPMailer) buildMessage(msg usecases.OutboundEmail) (*gomail.Message, error) {
	if msg.To == "" {
		return nil, fmt.Errorf("recipient address is required")
	}
	htmlBody, err := s.renderer.Render(msg.Body)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader(conversationHeader, fmt.Sprintf("%d", msg.ConversationID))
	m.SetBody("text/plain", msg.Body)
	m.AddAlternative("text/html", htmlBody)
	return m, nil
}

// LogMailer stands in when outbound email is disabled. Replies are still
// stored; only delivery is skipped.
type LogMailer struct {
	logger logger.Interface
}

func NewLogMailer(logger logger.Interface) *LogMailer {
	return &LogMailer{logger: logger}
}

func (l *LogMailer) SendReply(_ context.Context, msg usecases.OutboundEmail) error {
	l.logger.Infow("email delivery disabled, reply not sent",
		"conversation_id", msg.ConversationID,
		"to", utils.MaskEmail(msg.To),
		"subject", msg.Subject,
	)
	return nil
}

// NewMailer picks the SMTP mailer when email is enabled.
func NewMailer(cfg config.EmailConfig, renderer markdown.Renderer, logger logger.Interface) usecases.ReplyMailer {
	if !cfg.Enabled || cfg.SMTPHost == "" {
		return NewLogMailer(logger)
	}
	return NewSMTPMailer(SMTPConfigFrom(cfg), renderer, logger)
}
