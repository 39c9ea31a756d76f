package offer

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// EnsureSlotFree rejects opening a thread on a leg that already has a
// Pending or Accepted thread. A Rejected thread frees the slot.
func EnsureSlotFree(existing []*Offer, loadID kernel.UUID, direction Direction) error {
	for _, o := range existing {
		if !o.loadID.IsEqual(loadID) || o.direction != direction || !o.IsLive() {
			continue
		}
		return errs.NewConflictErrorWithCause(
			"offer",
			fmt.Errorf("load %s already has a %s %s offer", loadID, o.status, direction),
		)
	}
	return nil
}

// Legs derives the customer and carrier leg states from every thread on a load.
func Legs(offers []*Offer) (customer, carrier load.LegState) {
	for _, o := range offers {
		state := legOf(o.status)
		switch o.direction {
		case ToCustomer:
			customer = max(customer, state)
		case ToCarrier:
			carrier = max(carrier, state)
		case UnknownDirection:
		}
	}
	return customer, carrier
}

// Agreement flags consumed by the final-agreement workflow.
func Agreement(offers []*Offer) (customerAgreed, carrierAgreed bool) {
	customer, carrier := Legs(offers)
	return customer == load.LegAccepted, carrier == load.LegAccepted
}

func legOf(s Status) load.LegState {
	switch s {
	case Pending:
		return load.LegPending
	case Accepted:
		return load.LegAccepted
	case UnknownStatus, Rejected:
	}
	return load.LegOpen
}
