/*
Package notification 订单通知的发送实现：email、kafka 与日志。
*/
package notification

import (
	"context"
	"fmt"
	"time"

	"bakery/config"
	domain "bakery/domain/notification"
	"bakery/pkg/logger"
	"bakery/pkg/metric"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const (
	sinkEmail = "email"
	sinkKafka = "kafka"
	sinkLog   = "log"
)

// EmailRepository sends order notifications through an SMTP server
type EmailRepository struct {
	from          string
	to            []string
	subjectPrefix string
	smtp          config.SMTPConfig
	timeout       time.Duration
}

// NewEmailRepository Create email notification repository
func NewEmailRepository(cfg config.NotificationConfig) *EmailRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EmailRepository{
		from:          cfg.From,
		to:            cfg.To,
		subjectPrefix: cfg.SubjectPrefix,
		smtp:          cfg.SMTP,
		timeout:       timeout,
	}
}

// Send implements domain.Repository
func (r *EmailRepository) Send(ctx context.Context, n domain.OrderNotification) error {
	err := r.send(ctx, n)
	metric.RecordNotification(sinkEmail, err)
	if err != nil {
		return fmt.Errorf("send order notification email: %w", err)
	}

	logger.FromContext(ctx).Debug("Order notification email sent",
		zap.String("subject", n.Subject),
		zap.Strings("to", r.to))
	return nil
}

func (r *EmailRepository) send(ctx context.Context, n domain.OrderNotification) error {
	msg, err := r.message(n)
	if err != nil {
		return err
	}
	client, err := mail.NewClient(r.smtp.Host, r.clientOptions()...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return client.DialAndSendWithContext(ctx, msg)
}

func (r *EmailRepository) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(r.smtp.Port),
		mail.WithTimeout(r.timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if r.smtp.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(r.smtp.Username),
			mail.WithPassword(r.smtp.Password))
	}
	return opts
}

func (r *EmailRepository) message(n domain.OrderNotification) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(r.from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", r.from, err)
	}
	if err := msg.To(r.to...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	msg.Subject(r.subject(n.Subject))
	msg.SetBodyString(mail.TypeTextPlain, n.Body)
	return msg, nil
}

// subject 有前缀时为 "[prefix] subject"
func (r *EmailRepository) subject(subject string) string {
	if r.subjectPrefix == "" {
		return subject
	}
	return "[" + r.subjectPrefix + "] " + subject
}
