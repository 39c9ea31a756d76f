package notify

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/ports"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of amqp.Channel the notifier uses.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQNotifier publishes persistent JSON messages to a durable queue
// through the default exchange.
type RabbitMQNotifier struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	publisher Publisher
	queue     string
	logger    *slog.Logger
	now       func() time.Time
}

// DialRabbitMQ connects, opens a channel and declares the queue.
func DialRabbitMQ(url, queue string, logger *slog.Logger) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "open rabbitmq channel")
	}
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.Wrapf(err, "declare queue %s", queue)
	}

	n := NewRabbitMQNotifierWithPublisher(ch, queue, logger)
	n.conn = conn
	n.channel = ch
	return n, nil
}

func NewRabbitMQNotifierWithPublisher(p Publisher, queue string, logger *slog.Logger) *RabbitMQNotifier {
	return &RabbitMQNotifier{
		publisher: p,
		queue:     queue,
		logger:    logger.With("component", "rabbitmq_notifier"),
		now:       time.Now,
	}
}

func (n *RabbitMQNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	now := n.now()
	body, err := encode(notification, now)
	if err != nil {
		return err
	}
	err = n.publisher.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Type:         notification.Action,
		Body:         body,
	})
	if err != nil {
		return errors.Wrap(err, "rabbitmq publish")
	}
	n.logger.DebugContext(ctx, "notification published", "action", notification.Action, "recipient", notification.Recipient.String())
	return nil
}

// Close releases the channel and the connection opened by DialRabbitMQ.
func (n *RabbitMQNotifier) Close() error {
	if n.channel != nil {
		if err := n.channel.Close(); err != nil {
			return err
		}
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
