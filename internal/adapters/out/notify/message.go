// Package notify delivers notifications over Kafka, RabbitMQ or the log.
package notify

import (
	"encoding/json"
	"time"

	"freight/internal/core/ports"

	"github.com/pkg/errors"
)

// Message is the wire form of a notification.
type Message struct {
	Recipient  string    `json:"recipient"`
	Action     string    `json:"action"`
	LoadID     *string   `json:"load_id,omitempty"`
	ShipmentID *string   `json:"shipment_id,omitempty"`
	Sender     *string   `json:"sender,omitempty"`
	Payload    string    `json:"payload"`
	SentAt     time.Time `json:"sent_at"`
}

func newMessage(n ports.Notification, now time.Time) Message {
	m := Message{
		Recipient: n.Recipient.String(),
		Action:    n.Action,
		Payload:   n.Payload,
		SentAt:    now.UTC(),
	}
	if n.LoadID != nil {
		s := n.LoadID.String()
		m.LoadID = &s
	}
	if n.ShipmentID != nil {
		s := n.ShipmentID.String()
		m.ShipmentID = &s
	}
	if n.Sender != nil {
		s := n.Sender.String()
		m.Sender = &s
	}
	return m
}

func encode(n ports.Notification, now time.Time) ([]byte, error) {
	body, err := json.Marshal(newMessage(n, now))
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s notification", n.Action)
	}
	return body, nil
}
