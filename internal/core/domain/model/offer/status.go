package offer

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status of an offer thread. Accepted and Rejected are terminal.
type Status int

const (
	UnknownStatus Status = iota
	// Pending threads wait for the side that did not move last. Either side
	// may counter.
	Pending
	// Accepted threads settle the leg at the current amount.
	Accepted
	// Rejected threads free the leg for a new offer.
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	case UnknownStatus:
	}
	return "Unknown"
}

// Validate rejects UnknownStatus and out-of-range values read from storage.
func (s Status) Validate() error {
	if s < Pending || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("offer status is invalid", fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

func (s Status) IsTerminal() bool { return s == Accepted || s == Rejected }

// Direction is the leg an offer thread negotiates.
type Direction int

const (
	UnknownDirection Direction = iota
	ToCustomer
	ToCarrier
)

func (d Direction) String() string {
	switch d {
	case ToCustomer:
		return "customer"
	case ToCarrier:
		return "carrier"
	case UnknownDirection:
	}
	return "unknown"
}

func (d Direction) Validate() error {
	if d != ToCustomer && d != ToCarrier {
		return errs.NewValueIsInvalidErrorWithCause("offer direction is invalid", fmt.Errorf("%d is not customer or carrier", d))
	}
	return nil
}

// ParseDirection accepts "customer" or "carrier".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return ToCustomer, nil
	case "carrier":
		return ToCarrier, nil
	}
	return UnknownDirection, errs.NewValueIsInvalidErrorWithCause("offer direction is invalid", fmt.Errorf("%q is not customer or carrier", s))
}

// Side identifies who acted on a thread.
type Side int

const (
	SideDispatcher Side = iota + 1
	SideCounterparty
)

func (s Side) String() string {
	switch s {
	case SideDispatcher:
		return "dispatcher"
	case SideCounterparty:
		return "counterparty"
	}
	return "unknown"
}

// Decision is the answer to a pending amount.
type Decision int

const (
	UnknownDecision Decision = iota
	Accept
	Reject
)

// ParseDecision accepts "accept" or "reject".
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept":
		return Accept, nil
	case "reject":
		return Reject, nil
	}
	return UnknownDecision, errs.NewValueIsInvalidErrorWithCause("decision is invalid", fmt.Errorf("%q is not accept or reject", s))
}
