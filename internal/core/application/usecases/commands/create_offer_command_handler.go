package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// CreateOfferCommandHandler opens offer threads. Only the load's dispatcher
// side may open one, and only while the leg has no Pending or Accepted
// thread. A carrier thread assigns its carrier to the load.
type CreateOfferCommandHandler struct {
	uowFactory    ports.UnitOfWorkFactory
	gate          loadGate
	negotiator    services.Negotiator
	notifications notifications
}

// NewCreateOfferCommandHandler creates a handler that opens offer threads.
// Requires a UnitOfWorkFactory coordinating the load and offer repositories.
func NewCreateOfferCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	directory ports.Directory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory:    uowFactory,
		gate:          newLoadGate(directory),
		negotiator:    services.NewNegotiator(),
		notifications: newNotifications(notifier, logger),
	}
}

func (h CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	colleagues, err := h.gate.colleagues(ctx, cmd.Actor())
	if err != nil {
		return err
	}

	var (
		created       *offer.Offer
		updatedLoad   *load.Load
		statusChanged bool
	)
	err = inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		l, err := uow.LoadRepository().GetForUpdate(ctx, cmd.LoadID())
		if err != nil {
			return err
		}
		if err = h.gate.authorizeView(ctx, l, colleagues); err != nil {
			return err
		}
		if err = h.gate.policy.AuthorizeDispatcher(l, cmd.Actor(), colleagues); err != nil {
			return err
		}

		counterparty, err := h.counterparty(ctx, l, cmd)
		if err != nil {
			return err
		}

		offers, err := uow.OfferRepository().ListByLoad(ctx, l.ID())
		if err != nil {
			return err
		}
		if err = offer.EnsureSlotFree(offers, l.ID(), cmd.Direction()); err != nil {
			return err
		}

		now := time.Now()
		o, err := offer.NewOffer(cmd.OfferID(), l.ID(), l.Dispatcher(), counterparty, cmd.Direction(), cmd.Amount(), now)
		if err != nil {
			return err
		}
		statusChanged, err = h.negotiator.Apply(l, o, append(offers, o), now)
		if err != nil {
			return err
		}

		if err = uow.OfferRepository().Add(ctx, o); err != nil {
			return err
		}
		if err = uow.LoadRepository().Update(ctx, l); err != nil {
			return err
		}
		created, updatedLoad = o, l
		return nil
	})
	if err != nil {
		return err
	}

	h.notifications.offerEvent(ctx, created, offer.SideDispatcher, cmd.Actor(), ports.ActionGotOffer)
	if statusChanged {
		h.notifications.loadStatusChanged(ctx, updatedLoad, cmd.Actor())
	}
	return nil
}

func (h CreateOfferCommandHandler) counterparty(ctx context.Context, l *load.Load, cmd CreateOfferCommand) (load.PartyRef, error) {
	if cmd.Direction() == offer.ToCustomer {
		return l.Customer(), nil
	}

	carrierID := cmd.CarrierProfileID()
	if carrierID.IsZero() {
		if !l.HasCarrier() {
			return load.PartyRef{}, errs.NewValueIsRequiredError("carrier")
		}
		return *l.Carrier(), nil
	}
	if l.HasCarrier() && !l.Carrier().ProfileID.IsEqual(carrierID) {
		return load.PartyRef{}, errs.NewValueIsInvalidErrorWithCause(
			"carrier",
			fmt.Errorf("load %s already has a different carrier", l.Name()),
		)
	}

	profile, err := h.gate.directory.Profile(ctx, carrierID)
	if err != nil {
		return load.PartyRef{}, err
	}
	return load.NewPartyRef(profile, party.RoleCarrier)
}
