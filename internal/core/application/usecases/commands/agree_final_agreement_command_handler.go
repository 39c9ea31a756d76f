package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// AgreeFinalAgreementCommandHandler marks a party as agreed in the document
// service once that party's leg is Accepted. The signer must act for the
// party: the customer's or carrier's AppUser, or a colleague.
type AgreeFinalAgreementCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gate       loadGate
	agreements ports.FinalAgreements
}

// NewAgreeFinalAgreementCommandHandler creates a handler that records a party's signature.
func NewAgreeFinalAgreementCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	directory ports.Directory,
	agreements ports.FinalAgreements,
) AgreeFinalAgreementCommandHandler {
	return AgreeFinalAgreementCommandHandler{
		uowFactory: uowFactory,
		gate:       newLoadGate(directory),
		agreements: agreements,
	}
}

func (h AgreeFinalAgreementCommandHandler) Handle(ctx context.Context, cmd AgreeFinalAgreementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	colleagues, err := h.gate.colleagues(ctx, cmd.Actor())
	if err != nil {
		return err
	}

	err = inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		l, err := uow.LoadRepository().GetForUpdate(ctx, cmd.LoadID())
		if err != nil {
			return err
		}
		if err = h.gate.authorizeView(ctx, l, colleagues); err != nil {
			return err
		}
		offers, err := uow.OfferRepository().ListByLoad(ctx, l.ID())
		if err != nil {
			return err
		}

		customerAgreed, carrierAgreed := offer.Agreement(offers)
		var (
			signer   kernel.UUID
			accepted bool
		)
		switch cmd.Party() {
		case ports.AgreementCustomer:
			signer, accepted = l.Customer().AppUserID, customerAgreed
		case ports.AgreementCarrier:
			if l.HasCarrier() {
				signer = l.Carrier().AppUserID
			}
			accepted = carrierAgreed
		}

		if !accepted {
			return errs.NewValueIsInvalidErrorWithCause(
				"final agreement",
				fmt.Errorf("the %s leg of load %s is not accepted", cmd.Party(), l.Name()),
			)
		}
		if !h.gate.policy.ActsFor(cmd.Actor(), signer, colleagues) {
			return errs.NewPermissionDeniedErrorWithCause(
				"sign final agreement",
				fmt.Errorf("requester does not act for the %s", cmd.Party()),
			)
		}
		return h.agreements.SetPartyAgreed(ctx, l.ID(), cmd.Party())
	})
	return err
}
