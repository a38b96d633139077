package notification

import (
	"context"

	"bakery/config"
	domain "bakery/domain/notification"
	"bakery/pkg/logger"
	"bakery/pkg/metric"

	"go.uber.org/zap"
)

// LogRepository only writes notifications to the application log, used in development
type LogRepository struct{}

func NewLogRepository() *LogRepository {
	return &LogRepository{}
}

func (LogRepository) Send(ctx context.Context, n domain.OrderNotification) error {
	logger.FromContext(ctx).Info("Order notification",
		zap.String("subject", n.Subject),
		zap.String("body", n.Body))
	metric.RecordNotification(sinkLog, nil)
	return nil
}

// New selects the sink from notification.type
func New(cfg config.NotificationConfig) domain.Repository {
	switch cfg.Type {
	case sinkEmail:
		return NewEmailRepository(cfg)
	case sinkKafka:
		return NewKafkaRepository(cfg.Kafka)
	default:
		return NewLogRepository()
	}
}
