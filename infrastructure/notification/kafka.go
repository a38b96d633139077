package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bakery/config"
	domain "bakery/domain/notification"
	"bakery/pkg/logger"
	"bakery/pkg/metric"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// message is the JSON payload published for each new order
type message struct {
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

// KafkaRepository publishes order notifications to a topic
type KafkaRepository struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

// NewKafkaRepository Create kafka notification repository
func NewKafkaRepository(cfg config.KafkaConfig) *KafkaRepository {
	return &KafkaRepository{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		topic: cfg.Topic,
		now:   time.Now,
	}
}

// Send implements domain.Repository
func (r *KafkaRepository) Send(ctx context.Context, n domain.OrderNotification) error {
	err := r.publish(ctx, n)
	metric.RecordNotification(sinkKafka, err)
	if err != nil {
		return fmt.Errorf("publish order notification to %s: %w", r.topic, err)
	}

	logger.FromContext(ctx).Debug("Order notification published",
		zap.String("topic", r.topic),
		zap.String("subject", n.Subject))
	return nil
}

func (r *KafkaRepository) publish(ctx context.Context, n domain.OrderNotification) error {
	sentAt := r.now().UTC()
	data, err := json.Marshal(message{Subject: n.Subject, Body: n.Body, SentAt: sentAt})
	if err != nil {
		return err
	}
	return r.writer.WriteMessages(ctx, kafka.Message{Key: []byte(n.Subject), Value: data, Time: sentAt})
}

// Close flushes pending messages
func (r *KafkaRepository) Close() error {
	return r.writer.Close()
}
