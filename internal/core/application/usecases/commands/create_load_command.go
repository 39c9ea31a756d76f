package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadParams is the raw request for a new load. Party fields are
// profile ids; facilities are facility ids.
type CreateLoadParams struct {
	LoadID       kernel.UUID
	ShipmentID   kernel.UUID
	Actor        kernel.UUID
	Customer     kernel.UUID
	Shipper      kernel.UUID
	Consignee    kernel.UUID
	Dispatcher   kernel.UUID
	PickUp       kernel.UUID
	Destination  kernel.UUID
	PickUpDate   time.Time
	DeliveryDate time.Time
	Freight      load.Freight
	Draft        bool
}

// CreateLoadCommand requests a new load inside an existing shipment.
//
// Example:
//
//	cmd, err := NewCreateLoadCommand(CreateLoadParams{
//	    LoadID:     kernel.NewUUID(),
//	    ShipmentID: shipmentID,
//	    Actor:      dispatcherAppUserID,
//	    // parties, facilities, dates, freight
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	params CreateLoadParams

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand checks that every reference is present. Business
// rules on dates, facilities and parties are enforced by the handler.
func NewCreateLoadCommand(params CreateLoadParams) (CreateLoadCommand, error) {
	required := func(name string, id kernel.UUID) error {
		if id.IsZero() {
			return errs.NewValueIsRequiredError(name)
		}
		return nil
	}
	var dateErr error
	if params.PickUpDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("pick_up_date")
	}
	if params.DeliveryDate.IsZero() {
		dateErr = errors.Join(dateErr, errs.NewValueIsRequiredError("delivery_date"))
	}

	if err := errors.Join(
		required("load id", params.LoadID),
		required("shipment", params.ShipmentID),
		required("actor", params.Actor),
		required("customer", params.Customer),
		required("shipper", params.Shipper),
		required("consignee", params.Consignee),
		required("dispatcher", params.Dispatcher),
		required("pick_up_location", params.PickUp),
		required("destination", params.Destination),
		dateErr,
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return CreateLoadCommand{params: params, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

func (c CreateLoadCommand) Params() CreateLoadParams {
	return c.params
}
