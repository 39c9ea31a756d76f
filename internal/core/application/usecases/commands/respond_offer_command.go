package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRespondOfferCommandIsNotConstructed = errors.New(
	"RespondOfferCommand must be created via NewRespondOfferCommand constructor",
)

// RespondOfferCommand accepts or rejects the current amount of a thread.
type RespondOfferCommand struct { //nolint:recvcheck //using for validation
	offerID  kernel.UUID
	actor    kernel.UUID
	decision offer.Decision

	guard guard.ConstructorGuard
}

func NewRespondOfferCommand(offerID, actor kernel.UUID, decision offer.Decision) (RespondOfferCommand, error) {
	var decisionErr error
	if decision != offer.Accept && decision != offer.Reject {
		decisionErr = errs.NewValueIsInvalidError("decision")
	}
	if err := errors.Join(offerID.Validate(), actor.Validate(), decisionErr); err != nil {
		return RespondOfferCommand{}, err
	}
	return RespondOfferCommand{offerID: offerID, actor: actor, decision: decision, guard: guard.NewConstructorGuard()}, nil
}

func (c RespondOfferCommand) Validate() error {
	return c.guard.Validate(ErrRespondOfferCommandIsNotConstructed)
}

func (c RespondOfferCommand) OfferID() kernel.UUID     { return c.offerID }
func (c RespondOfferCommand) Actor() kernel.UUID       { return c.actor }
func (c RespondOfferCommand) Decision() offer.Decision { return c.decision }
