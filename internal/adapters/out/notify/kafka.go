package notify

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Writer is the part of kafka.Writer the notifier uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes one message per notification, keyed by recipient so
// that a user's notifications stay ordered within a partition.
type KafkaNotifier struct {
	writer Writer
	logger *slog.Logger
	now    func() time.Time
}

func NewKafkaNotifier(broker, topic string, logger *slog.Logger) *KafkaNotifier {
	return NewKafkaNotifierWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, logger)
}

func NewKafkaNotifierWithWriter(w Writer, logger *slog.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: w,
		logger: logger.With("component", "kafka_notifier"),
		now:    time.Now,
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	body, err := encode(notification, n.now())
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: []byte(notification.Recipient.String()), Value: body}
	if err = n.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "kafka write")
	}
	n.logger.DebugContext(ctx, "notification published", "action", notification.Action, "recipient", notification.Recipient.String())
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
