package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand opens a negotiation thread on one leg of a load.
//
// For the customer leg the counterparty is always the load's customer. For
// the carrier leg the carrier profile is required unless one is already
// assigned to the load.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	offerID   kernel.UUID
	loadID    kernel.UUID
	actor     kernel.UUID
	direction offer.Direction
	carrier   kernel.UUID
	amount    kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateOfferCommand(
	offerID, loadID, actor kernel.UUID,
	direction offer.Direction,
	carrierProfileID kernel.UUID,
	amount kernel.Money,
) (CreateOfferCommand, error) {
	var amountErr error
	if err := amount.Validate(); err != nil {
		amountErr = err
	} else if !amount.IsPositive() {
		amountErr = errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "unbounded")
	}

	if err := errors.Join(
		offerID.Validate(),
		loadID.Validate(),
		actor.Validate(),
		direction.Validate(),
		amountErr,
	); err != nil {
		return CreateOfferCommand{}, err
	}

	return CreateOfferCommand{
		offerID:   offerID,
		loadID:    loadID,
		actor:     actor,
		direction: direction,
		carrier:   carrierProfileID,
		amount:    amount,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

func (c CreateOfferCommand) OfferID() kernel.UUID       { return c.offerID }
func (c CreateOfferCommand) LoadID() kernel.UUID        { return c.loadID }
func (c CreateOfferCommand) Actor() kernel.UUID         { return c.actor }
func (c CreateOfferCommand) Direction() offer.Direction { return c.direction }
func (c CreateOfferCommand) Amount() kernel.Money       { return c.amount }

// CarrierProfileID is zero when the caller relies on the assigned carrier.
func (c CreateOfferCommand) CarrierProfileID() kernel.UUID { return c.carrier }
