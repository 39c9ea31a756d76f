package offer

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

	// ErrOwnMove is returned when a side tries to answer its own amount.
	ErrOwnMove = errs.NewPermissionDeniedErrorWithCause(
		"respond to offer",
		errors.New("the side that made the last move cannot respond to it"),
	)
)

// Offer is one negotiation thread between the load's dispatcher (party 1)
// and the customer or carrier (party 2). Counters mutate the current amount
// in place; the initial amount is kept as the first bid.
type Offer struct {
	id           kernel.UUID
	loadID       kernel.UUID
	dispatcher   load.PartyRef
	counterparty load.PartyRef
	direction    Direction
	initial      kernel.Money
	current      kernel.Money
	status       Status
	lastMover    Side
	createdAt    time.Time
	updatedAt    time.Time
	version      int

	guard guard.ConstructorGuard
}

// NewOffer opens a Pending thread with current = initial. The dispatcher
// always makes the first move.
func NewOffer(
	id, loadID kernel.UUID,
	dispatcher, counterparty load.PartyRef,
	direction Direction,
	initial kernel.Money,
	now time.Time,
) (*Offer, error) {
	now = now.UTC()
	o := &Offer{
		id:           id,
		loadID:       loadID,
		dispatcher:   dispatcher,
		counterparty: counterparty,
		direction:    direction,
		initial:      initial,
		current:      initial,
		status:       Pending,
		lastMover:    SideDispatcher,
		createdAt:    now,
		updatedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if !initial.IsPositive() {
		return nil, errs.NewValueIsOutOfRangeError("initial", initial.String(), "0.01", "unbounded")
	}
	return o, nil
}

// Snapshot is the persisted form used by RestoreOffer.
type Snapshot struct {
	ID           kernel.UUID
	LoadID       kernel.UUID
	Dispatcher   load.PartyRef
	Counterparty load.PartyRef
	Direction    Direction
	Initial      kernel.Money
	Current      kernel.Money
	Status       Status
	LastMover    Side
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int
}

// RestoreOffer rebuilds an offer from storage. It checks the same invariants
// as NewOffer and additionally requires a known status and last mover.
func RestoreOffer(s Snapshot) (*Offer, error) {
	o := &Offer{
		id:           s.ID,
		loadID:       s.LoadID,
		dispatcher:   s.Dispatcher,
		counterparty: s.Counterparty,
		direction:    s.Direction,
		initial:      s.Initial,
		current:      s.Current,
		status:       s.Status,
		lastMover:    s.LastMover,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		version:      s.Version,
		guard:        guard.NewConstructorGuard(),
	}
	if err := errors.Join(o.validate(), o.status.Validate()); err != nil {
		return nil, err
	}
	if o.lastMover != SideDispatcher && o.lastMover != SideCounterparty {
		return nil, errs.NewValueIsInvalidError("last mover")
	}
	return o, nil
}

// Validate reports ErrOfferIsNotConstructed for a nil offer or one built
// without NewOffer or RestoreOffer.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) ID() kernel.UUID             { return o.id }
func (o *Offer) LoadID() kernel.UUID         { return o.loadID }
func (o *Offer) Dispatcher() load.PartyRef   { return o.dispatcher }
func (o *Offer) Counterparty() load.PartyRef { return o.counterparty }
func (o *Offer) Direction() Direction        { return o.direction }
func (o *Offer) Initial() kernel.Money       { return o.initial }
func (o *Offer) Current() kernel.Money       { return o.current }
func (o *Offer) Status() Status              { return o.status }
func (o *Offer) LastMover() Side             { return o.lastMover }
func (o *Offer) CreatedAt() time.Time        { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time        { return o.updatedAt }
func (o *Offer) Version() int                { return o.version }
func (o *Offer) IsLive() bool                { return o.status != Rejected }
func (o *Offer) IsEqual(other *Offer) bool   { return other != nil && o.id.IsEqual(other.id) }

// Party returns the AppUser acting for side.
func (o *Offer) Party(side Side) kernel.UUID {
	if side == SideDispatcher {
		return o.dispatcher.AppUserID
	}
	return o.counterparty.AppUserID
}

// Recipient returns the AppUser on the side opposite to the actor.
func (o *Offer) Recipient(actor Side) kernel.UUID {
	if actor == SideDispatcher {
		return o.counterparty.AppUserID
	}
	return o.dispatcher.AppUserID
}

// Counter replaces the current amount. Only Pending threads can be
// countered; a terminal thread requires a new one.
func (o *Offer) Counter(side Side, amount kernel.Money, now time.Time) error {
	if err := o.requirePending(); err != nil {
		return err
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsOutOfRangeError("current", amount.String(), "0.01", "unbounded")
	}
	if amount.IsEqual(o.current) {
		return errs.NewValueIsInvalidErrorWithCause(
			"current",
			fmt.Errorf("counter amount %s equals the current amount", amount),
		)
	}
	o.current = amount
	o.lastMover = side
	o.updatedAt = now.UTC()
	return nil
}

// Respond accepts or rejects the current amount. Responding twice is a conflict.
func (o *Offer) Respond(side Side, decision Decision, now time.Time) error {
	if err := o.requirePending(); err != nil {
		return err
	}
	if side == o.lastMover {
		return ErrOwnMove
	}
	switch decision {
	case Accept:
		o.status = Accepted
	case Reject:
		o.status = Rejected
	default:
		return errs.NewValueIsInvalidError("decision")
	}
	o.updatedAt = now.UTC()
	return nil
}

func (o *Offer) requirePending() error {
	if o.status.IsTerminal() {
		return errs.NewConflictErrorWithCause(
			"offer",
			fmt.Errorf("offer %s is already %s", o.id, o.status),
		)
	}
	return nil
}

func (o *Offer) validate() error {
	var partyErr error
	if o.dispatcher.ProfileID.IsZero() || o.dispatcher.AppUserID.IsZero() {
		partyErr = errs.NewValueIsRequiredError("dispatcher")
	}
	if o.counterparty.ProfileID.IsZero() || o.counterparty.AppUserID.IsZero() {
		partyErr = errors.Join(partyErr, errs.NewValueIsRequiredError("counterparty"))
	}
	return errors.Join(
		o.id.Validate(),
		o.loadID.Validate(),
		partyErr,
		o.direction.Validate(),
		o.initial.Validate(),
		o.current.Validate(),
	)
}
