package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/ports"
)

// notifications fans messages out after a change has been committed.
// Delivery failures are logged and swallowed.
type notifications struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

func newNotifications(notifier ports.Notifier, logger *slog.Logger) notifications {
	if logger == nil {
		logger = slog.Default()
	}
	return notifications{notifier: notifier, logger: logger.With("component", "notifications")}
}

// send delivers template to every recipient except the actor, once each.
func (n notifications) send(ctx context.Context, actor kernel.UUID, recipients []kernel.UUID, template ports.Notification) {
	if n.notifier == nil {
		return
	}
	seen := make(map[kernel.UUID]struct{}, len(recipients))
	for _, recipient := range recipients {
		if recipient.IsZero() || recipient.IsEqual(actor) {
			continue
		}
		if _, ok := seen[recipient]; ok {
			continue
		}
		seen[recipient] = struct{}{}

		msg := template
		msg.Recipient = recipient
		if err := n.notifier.Notify(ctx, msg); err != nil {
			n.logger.WarnContext(ctx, "notification was not delivered",
				"action", msg.Action,
				"recipient", recipient.String(),
				"error", err,
			)
		}
	}
}

// loadStatusChanged notifies the four core parties of a new load status.
func (n notifications) loadStatusChanged(ctx context.Context, l *load.Load, actor kernel.UUID) {
	loadID, shipmentID := l.ID(), l.ShipmentID()
	n.send(ctx, actor, l.CoreParticipants(), ports.Notification{
		Action:     ports.ActionLoadStatusChanged,
		LoadID:     &loadID,
		ShipmentID: &shipmentID,
		Sender:     &actor,
		Payload:    l.Status().String(),
	})
}

// offerEvent notifies the side opposite to the actor.
func (n notifications) offerEvent(ctx context.Context, o *offer.Offer, actingSide offer.Side, actor kernel.UUID, action string) {
	loadID := o.LoadID()
	n.send(ctx, actor, []kernel.UUID{o.Recipient(actingSide)}, ports.Notification{
		Action:  action,
		LoadID:  &loadID,
		Sender:  &actor,
		Payload: o.Current().String(),
	})
}
