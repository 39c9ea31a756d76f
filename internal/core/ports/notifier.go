package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// Notification actions.
const (
	ActionLoadStatusChanged = "load_status_changed"
	ActionGotOffer          = "got_offer"
	ActionOfferUpdated      = "offer_updated"
)

// Notification is one message for one recipient.
type Notification struct {
	Recipient  kernel.UUID
	Action     string
	LoadID     *kernel.UUID
	ShipmentID *kernel.UUID
	Sender     *kernel.UUID
	Payload    string
}

// Notifier delivers notifications. Delivery is fire-and-forget: callers log
// failures and never undo the change that triggered them.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
