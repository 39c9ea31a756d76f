package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// CreateLoadCommandHandler creates loads on behalf of a dispatcher or a
// shipment party.
//
// Creation checks, in order:
//   - the actor's selected role is dispatcher or shipment party
//   - the actor may act on the shipment (creator, admin or a colleague of either)
//   - both facilities exist
//   - every party resolves to an active profile of the right sub-type
//   - the load's own invariants (dates, distinct facilities)
type CreateLoadCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	directory  ports.Directory
	policy     services.AccessPolicy
}

// NewCreateLoadCommandHandler creates a handler for load creation.
// Requires a UnitOfWorkFactory for persistence and a Directory to resolve the
// creator's role, shipment and facilities.
func NewCreateLoadCommandHandler(uowFactory ports.UnitOfWorkFactory, directory ports.Directory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	p := cmd.Params()

	if err := h.authorizeCreator(ctx, p); err != nil {
		return err
	}

	parties, err := h.resolveParties(ctx, p)
	if err != nil {
		return err
	}

	if _, err = h.directory.Facility(ctx, p.PickUp); err != nil {
		return err
	}
	if _, err = h.directory.Facility(ctx, p.Destination); err != nil {
		return err
	}

	l, err := load.NewLoad(load.NewLoadParams{
		ID:             p.LoadID,
		ShipmentID:     p.ShipmentID,
		CreatedBy:      p.Actor,
		Parties:        parties,
		PickUpLocation: p.PickUp,
		Destination:    p.Destination,
		Schedule:       load.Schedule{PickUpDate: p.PickUpDate, DeliveryDate: p.DeliveryDate},
		Freight:        p.Freight,
		Draft:          p.Draft,
	}, time.Now())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		return uow.LoadRepository().Add(ctx, l)
	})
}

func (h CreateLoadCommandHandler) authorizeCreator(ctx context.Context, p CreateLoadParams) error {
	actor, err := h.directory.AppUser(ctx, p.Actor)
	if err != nil {
		return err
	}
	role := actor.SelectedRole()
	if role != party.RoleDispatcher && role != party.RoleShipmentParty {
		return errs.NewValueIsInvalidErrorWithCause(
			"selected role",
			fmt.Errorf("role %s cannot create loads", role),
		)
	}

	s, err := h.directory.Shipment(ctx, p.ShipmentID)
	if err != nil {
		return err
	}
	colleagues, err := h.directory.Colleagues(ctx, p.Actor)
	if err != nil {
		return err
	}
	for _, stakeholder := range s.Stakeholders() {
		if h.policy.ActsFor(p.Actor, stakeholder, colleagues) {
			return nil
		}
	}
	return errs.NewPermissionDeniedErrorWithCause(
		"create load",
		fmt.Errorf("shipment %s is not managed by the requester", s.Name()),
	)
}

func (h CreateLoadCommandHandler) resolveParties(ctx context.Context, p CreateLoadParams) (load.Parties, error) {
	resolve := func(id kernel.UUID, role party.Role) (load.PartyRef, error) {
		profile, err := h.directory.Profile(ctx, id)
		if err != nil {
			return load.PartyRef{}, err
		}
		return load.NewPartyRef(profile, role)
	}

	customer, customerErr := resolve(p.Customer, party.RoleShipmentParty)
	shipper, shipperErr := resolve(p.Shipper, party.RoleShipmentParty)
	consignee, consigneeErr := resolve(p.Consignee, party.RoleShipmentParty)
	dispatcher, dispatcherErr := resolve(p.Dispatcher, party.RoleDispatcher)
	if err := errors.Join(customerErr, shipperErr, consigneeErr, dispatcherErr); err != nil {
		return load.Parties{}, err
	}

	return load.Parties{
		Customer:   customer,
		Shipper:    shipper,
		Consignee:  consignee,
		Dispatcher: dispatcher,
	}, nil
}
