package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a load.
//
// State transitions:
//
//	Created ─> Awaiting Customer ─> Assigning Carrier ─> Awaiting Carrier ─┐
//	   │                                                                    ├─> Ready For Pickup ─> In Transit ─> Delivered
//	   └──────────────── (carrier leg first) ─────> Awaiting Dispatcher ────┘
//
//	any non-terminal status ─> Canceled
//
// The statuses up to Awaiting Dispatcher are driven by offer outcomes (see
// Negotiate). In Transit, Delivered and Canceled are set explicitly.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Created
	AwaitingCustomer
	AssigningCarrier
	AwaitingCarrier
	AwaitingDispatcher
	ReadyForPickup
	InTransit
	Delivered
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Created:            "Created",
		AwaitingCustomer:   "Awaiting Customer",
		AssigningCarrier:   "Assigning Carrier",
		AwaitingCarrier:    "Awaiting Carrier",
		AwaitingDispatcher: "Awaiting Dispatcher",
		ReadyForPickup:     "Ready For Pickup",
		InTransit:          "In Transit",
		Delivered:          "Delivered",
		Canceled:           "Canceled",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Created, AwaitingCustomer, AssigningCarrier, AwaitingCarrier, AwaitingDispatcher,
		ReadyForPickup, InTransit, Delivered, Canceled,
	}
}

// Validate rejects Unknown and out-of-range values, e.g. a corrupt status column.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name, which is also the notification payload.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String.
func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if st != Unknown && name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports Delivered or Canceled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// IsNegotiating reports whether offer outcomes still drive the status.
func (s Status) IsNegotiating() bool {
	return s >= Created && s <= AwaitingDispatcher
}

// LegState is the state of one negotiation leg (customer side or carrier side).
type LegState int

const (
	// LegOpen means no live offer thread: none was sent, or the last one was rejected.
	LegOpen LegState = iota
	LegPending
	LegAccepted
)

func (l LegState) String() string {
	switch l {
	case LegOpen:
		return "open"
	case LegPending:
		return "pending"
	case LegAccepted:
		return "accepted"
	}
	return "unknown"
}

// Negotiate derives the next status from the two legs. The legs are
// independent and the load only reaches Ready For Pickup once both are Accepted.
func (s Status) Negotiate(customer, carrier LegState) (Status, error) {
	if !s.IsNegotiating() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to negotiate", s),
		)
	}

	switch {
	case customer == LegAccepted && carrier == LegAccepted:
		return ReadyForPickup, nil
	case carrier == LegAccepted:
		return AwaitingDispatcher, nil
	case customer == LegAccepted && carrier == LegPending:
		return AwaitingCarrier, nil
	case customer == LegAccepted:
		return AssigningCarrier, nil
	case customer == LegPending:
		return AwaitingCustomer, nil
	case carrier == LegPending:
		return AwaitingCarrier, nil
	default:
		return Created, nil
	}
}

// StartTransit moves Ready For Pickup to In Transit.
func (s Status) StartTransit() (Status, error) {
	if s != ReadyForPickup {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start transit", s),
		)
	}
	return InTransit, nil
}

// Deliver moves In Transit to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return Delivered, nil
}

// Cancel moves any non-terminal status to Canceled. Cancellation is irreversible.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return Canceled, nil
}

// RequestTransition applies an explicit status-update request. Only In Transit,
// Delivered and Canceled may be requested; every other target would skip or
// bypass the negotiation and is rejected.
func (s Status) RequestTransition(target Status) (Status, error) {
	switch target {
	case InTransit:
		return s.StartTransit()
	case Delivered:
		return s.Deliver()
	case Canceled:
		return s.Cancel()
	case Unknown, Created, AwaitingCustomer, AssigningCarrier, AwaitingCarrier, AwaitingDispatcher, ReadyForPickup:
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status transition is invalid",
		fmt.Errorf("cannot move from %s to %s", s, target),
	)
}
