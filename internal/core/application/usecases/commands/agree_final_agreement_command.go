package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrAgreeFinalAgreementCommandIsNotConstructed = errors.New(
	"AgreeFinalAgreementCommand must be created via NewAgreeFinalAgreementCommand constructor",
)

// AgreeFinalAgreementCommand records that the customer or the carrier signed
// the load's final agreement.
type AgreeFinalAgreementCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	actor  kernel.UUID
	party  ports.AgreementParty

	guard guard.ConstructorGuard
}

func NewAgreeFinalAgreementCommand(loadID, actor kernel.UUID, p ports.AgreementParty) (AgreeFinalAgreementCommand, error) {
	var partyErr error
	if p != ports.AgreementCustomer && p != ports.AgreementCarrier {
		partyErr = errs.NewValueIsInvalidErrorWithCause("party", fmt.Errorf("%q is not customer or carrier", p))
	}
	if err := errors.Join(loadID.Validate(), actor.Validate(), partyErr); err != nil {
		return AgreeFinalAgreementCommand{}, err
	}
	return AgreeFinalAgreementCommand{loadID: loadID, actor: actor, party: p, guard: guard.NewConstructorGuard()}, nil
}

func (c AgreeFinalAgreementCommand) Validate() error {
	return c.guard.Validate(ErrAgreeFinalAgreementCommandIsNotConstructed)
}

func (c AgreeFinalAgreementCommand) LoadID() kernel.UUID         { return c.loadID }
func (c AgreeFinalAgreementCommand) Actor() kernel.UUID          { return c.actor }
func (c AgreeFinalAgreementCommand) Party() ports.AgreementParty { return c.party }
