package notify

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/ports"
)

// LogNotifier writes notifications to the log. It is the transport for local
// runs without a broker.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	m := newMessage(notification, time.Now())
	attrs := []any{"recipient", m.Recipient, "action", m.Action, "payload", m.Payload}
	if m.LoadID != nil {
		attrs = append(attrs, "load_id", *m.LoadID)
	}
	if m.Sender != nil {
		attrs = append(attrs, "sender", *m.Sender)
	}
	n.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
