package commands

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// offerTx locks the load before the offer so that concurrent commands on the
// same load always take locks in the same order.
type offerTx struct {
	load  *load.Load
	offer *offer.Offer
	side  offer.Side
}

func lockOffer(
	ctx context.Context,
	uow ports.UnitOfWork,
	gate loadGate,
	offerID, actor kernel.UUID,
	colleagues party.Employees,
) (offerTx, error) {
	peek, err := uow.OfferRepository().Get(ctx, offerID)
	if err != nil {
		return offerTx{}, err
	}
	l, err := uow.LoadRepository().GetForUpdate(ctx, peek.LoadID())
	if err != nil {
		return offerTx{}, err
	}
	o, err := uow.OfferRepository().GetForUpdate(ctx, offerID)
	if err != nil {
		return offerTx{}, err
	}
	if err = gate.authorizeView(ctx, l, colleagues); err != nil {
		return offerTx{}, err
	}
	side, err := gate.policy.OfferSide(o, actor, colleagues)
	if err != nil {
		return offerTx{}, err
	}
	return offerTx{load: l, offer: o, side: side}, nil
}

// CounterOfferCommandHandler lets either side replace the current amount of a
// Pending thread while the load is still negotiating. The opposite side is
// notified with offer_updated.
type CounterOfferCommandHandler struct {
	uowFactory    ports.UnitOfWorkFactory
	gate          loadGate
	notifications notifications
}

// NewCounterOfferCommandHandler creates a handler for counter offers.
// The notifier may be nil, in which case nothing is sent.
func NewCounterOfferCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	directory ports.Directory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CounterOfferCommandHandler {
	return CounterOfferCommandHandler{
		uowFactory:    uowFactory,
		gate:          newLoadGate(directory),
		notifications: newNotifications(notifier, logger),
	}
}

func (h CounterOfferCommandHandler) Handle(ctx context.Context, cmd CounterOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	colleagues, err := h.gate.colleagues(ctx, cmd.Actor())
	if err != nil {
		return err
	}

	var tx offerTx
	err = inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		var err error
		tx, err = lockOffer(ctx, uow, h.gate, cmd.OfferID(), cmd.Actor(), colleagues)
		if err != nil {
			return err
		}
		if err = tx.load.RequireNegotiating(); err != nil {
			return err
		}
		if err = tx.offer.Counter(tx.side, cmd.Amount(), time.Now()); err != nil {
			return err
		}
		return uow.OfferRepository().Update(ctx, tx.offer)
	})
	if err != nil {
		return err
	}

	h.notifications.offerEvent(ctx, tx.offer, tx.side, cmd.Actor(), ports.ActionOfferUpdated)
	return nil
}

// RespondOfferCommandHandler accepts or rejects a thread and folds the
// outcome into the load: carrier assignment and the negotiation status.
type RespondOfferCommandHandler struct {
	uowFactory    ports.UnitOfWorkFactory
	gate          loadGate
	negotiator    services.Negotiator
	notifications notifications
}

// NewRespondOfferCommandHandler creates a handler for accept and reject decisions.
func NewRespondOfferCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	directory ports.Directory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RespondOfferCommandHandler {
	return RespondOfferCommandHandler{
		uowFactory:    uowFactory,
		gate:          newLoadGate(directory),
		negotiator:    services.NewNegotiator(),
		notifications: newNotifications(notifier, logger),
	}
}

func (h RespondOfferCommandHandler) Handle(ctx context.Context, cmd RespondOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	colleagues, err := h.gate.colleagues(ctx, cmd.Actor())
	if err != nil {
		return err
	}

	var (
		tx            offerTx
		statusChanged bool
	)
	err = inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		var err error
		tx, err = lockOffer(ctx, uow, h.gate, cmd.OfferID(), cmd.Actor(), colleagues)
		if err != nil {
			return err
		}

		now := time.Now()
		if err = tx.offer.Respond(tx.side, cmd.Decision(), now); err != nil {
			return err
		}

		offers, err := uow.OfferRepository().ListByLoad(ctx, tx.load.ID())
		if err != nil {
			return err
		}
		statusChanged, err = h.negotiator.Apply(tx.load, tx.offer, replaceOffer(offers, tx.offer), now)
		if err != nil {
			return err
		}

		if err = uow.OfferRepository().Update(ctx, tx.offer); err != nil {
			return err
		}
		return uow.LoadRepository().Update(ctx, tx.load)
	})
	if err != nil {
		return err
	}

	h.notifications.offerEvent(ctx, tx.offer, tx.side, cmd.Actor(), ports.ActionOfferUpdated)
	if statusChanged {
		h.notifications.loadStatusChanged(ctx, tx.load, cmd.Actor())
	}
	return nil
}

// replaceOffer swaps the stored copy of changed for the in-memory one.
func replaceOffer(offers []*offer.Offer, changed *offer.Offer) []*offer.Offer {
	out := make([]*offer.Offer, 0, len(offers)+1)
	found := false
	for _, o := range offers {
		if o.IsEqual(changed) {
			out = append(out, changed)
			found = true
			continue
		}
		out = append(out, o)
	}
	if !found {
		out = append(out, changed)
	}
	return out
}
