package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/loanhub/internal/pkg/circuitbreaker"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
	nrpkg "github.com/piresc/loanhub/internal/pkg/newrelic"
	"gopkg.in/gomail.v2"
)

const (
	DriverSMTP = "smtp"
	DriverLog  = "log"
)

// Message is a plain-text email
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers email. Failures wrap models.ErrDeliveryFailed.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the sender selected by cfg.Driver
func NewSender(cfg models.MailConfig, zapLogger *logger.ZapLogger) (Sender, error) {
	switch cfg.Driver {
	case DriverSMTP:
		if cfg.Host == "" || cfg.From == "" {
			return nil, fmt.Errorf("smtp mail driver requires MAIL_HOST and MAIL_FROM")
		}
		return NewSMTPSender(cfg, zapLogger), nil
	case DriverLog, "":
		return NewLogSender(zapLogger), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}

// SMTPSender sends through an SMTP relay behind a circuit breaker
type SMTPSender struct {
	from    string
	url     string
	send    func(m *gomail.Message) error
	breaker *circuitbreaker.CircuitBreaker
}

// NewSMTPSender creates a sender for the relay in cfg
func NewSMTPSender(cfg models.MailConfig, zapLogger *logger.ZapLogger) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	breakerCfg := circuitbreaker.DefaultConfig("smtp")
	breakerCfg.FailureThreshold = 3
	breakerCfg.Timeout = 30 * time.Second

	return &SMTPSender{
		from:    cfg.From,
		url:     fmt.Sprintf("smtp://%s:%d", cfg.Host, cfg.Port),
		send:    func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		breaker: circuitbreaker.New(breakerCfg, zapLogger),
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	err := nrpkg.WithExternalSegment(ctx, "gomail", "send", s.url, func() error {
		return s.breaker.Execute(ctx, func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.send(m)
		})
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to send email",
			logger.String("to", msg.To),
			logger.String("subject", msg.Subject),
			logger.Bool("breaker_open", circuitbreaker.IsRejection(err)),
			logger.ErrorField(err))
		return fmt.Errorf("%w: %v", models.ErrDeliveryFailed, err)
	}
	return nil
}

// LogSender writes messages to the log instead of sending them. For local development.
type LogSender struct {
	logger *logger.ZapLogger
}

func NewLogSender(zapLogger *logger.ZapLogger) *LogSender {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	return &LogSender{logger: zapLogger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("Email (log driver)",
		logger.String("to", msg.To),
		logger.String("subject", msg.Subject),
		logger.String("body", msg.Body))
	return nil
}
