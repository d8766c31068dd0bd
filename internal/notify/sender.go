package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flyambition/flyambition-api/pkg/logger"
	mail "github.com/wneessen/go-mail"
)

// Message is a single outbound notification.
type Message struct {
	To           string
	Subject      string
	Text         string
	HTML         string
	HighPriority bool
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the account used to send notifications.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPSender sends mail through an authenticated SMTP relay (STARTTLS on 587,
// implicit TLS on 465). A client is dialled per message, matching the low
// volume of form notifications.
type SMTPSender struct {
	cfg  SMTPConfig
	from string
}

var ErrSMTPNotConfigured = errors.New("smtp not configured")

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, ErrSMTPNotConfigured
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SMTPSender{cfg: cfg, from: cfg.Username}, nil
}

// buildMsg turns msg into a go-mail message: plain text body, optional HTML
// alternative, and the high-importance headers when requested.
func buildMsg(from string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	m.Subject(msg.Subject)
	if msg.HighPriority {
		// Importance, X-Priority: 1 and X-MSMail-Priority
		m.SetImportance(mail.ImportanceHigh)
	}
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(s.from, msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	logger.Infof("email sent to=%s subject=%q", msg.To, msg.Subject)
	return nil
}

// LogSender only logs messages; used when EMAIL_ENABLED=false.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	logger.Infof("EMAIL (disabled): to=%s subject=%q priority_high=%v", msg.To, msg.Subject, msg.HighPriority)
	logger.Debugf("EMAIL (disabled) body:\n%s", msg.Text)
	return nil
}

// unconfiguredSender fails every send; submissions are still stored.
type unconfiguredSender struct {
	err error
}

func (u unconfiguredSender) Send(_ context.Context, msg Message) error {
	return fmt.Errorf("send to %s: %w", msg.To, u.err)
}

// NewSender picks the delivery path for notifications. With email disabled it
// only logs. With email enabled but the SMTP account incomplete it returns a
// sender that fails every message, together with the configuration error so
// the caller can report it at startup.
func NewSender(enabled bool, cfg SMTPConfig) (Sender, error) {
	if !enabled {
		return LogSender{}, nil
	}
	s, err := NewSMTPSender(cfg)
	if err != nil {
		return unconfiguredSender{err: err}, err
	}
	return s, nil
}
