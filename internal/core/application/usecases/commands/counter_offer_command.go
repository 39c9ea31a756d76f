package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCounterOfferCommandIsNotConstructed = errors.New(
	"CounterOfferCommand must be created via NewCounterOfferCommand constructor",
)

// CounterOfferCommand proposes a new current amount on a Pending thread.
type CounterOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	actor   kernel.UUID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

func NewCounterOfferCommand(offerID, actor kernel.UUID, amount kernel.Money) (CounterOfferCommand, error) {
	if err := errors.Join(offerID.Validate(), actor.Validate(), amount.Validate()); err != nil {
		return CounterOfferCommand{}, err
	}
	return CounterOfferCommand{offerID: offerID, actor: actor, amount: amount, guard: guard.NewConstructorGuard()}, nil
}

func (c CounterOfferCommand) Validate() error {
	return c.guard.Validate(ErrCounterOfferCommandIsNotConstructed)
}

func (c CounterOfferCommand) OfferID() kernel.UUID { return c.offerID }
func (c CounterOfferCommand) Actor() kernel.UUID   { return c.actor }
func (c CounterOfferCommand) Amount() kernel.Money { return c.amount }
