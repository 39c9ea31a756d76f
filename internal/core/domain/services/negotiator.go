package services

import (
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
)

// Negotiator applies offer outcomes to the load they negotiate.
//
// Business rules:
//   - A live carrier thread assigns its carrier to the load
//   - Rejecting the carrier thread of the assigned carrier releases it
//   - The load status is recomputed from both legs after every change
type Negotiator struct{}

func NewNegotiator() Negotiator {
	return Negotiator{}
}

// Apply folds changed into the load. offers must hold every thread on the
// load, changed included. It reports whether the load status moved.
func (Negotiator) Apply(l *load.Load, changed *offer.Offer, offers []*offer.Offer, now time.Time) (bool, error) {
	if changed.Direction() == offer.ToCarrier {
		counterparty := changed.Counterparty()
		switch {
		case changed.IsLive():
			if err := l.AssignCarrier(counterparty, now); err != nil {
				return false, err
			}
		case l.HasCarrier() && l.Carrier().IsEqual(counterparty):
			if err := l.UnassignCarrier(now); err != nil {
				return false, err
			}
		}
	}

	customer, carrier := offer.Legs(offers)
	return l.ApplyNegotiation(customer, carrier, now)
}
