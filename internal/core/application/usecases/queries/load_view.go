package queries

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadView is the read model of a load.
type LoadView struct {
	ID                  kernel.UUID
	Name                string
	ShipmentID          kernel.UUID
	Status              load.Status
	CreatedBy           kernel.UUID
	CustomerProfileID   kernel.UUID
	ShipperProfileID    kernel.UUID
	ConsigneeProfileID  kernel.UUID
	DispatcherProfileID kernel.UUID
	CarrierProfileID    *kernel.UUID
	PickUpLocation      kernel.UUID
	Destination         kernel.UUID
	PickUpDate          time.Time
	DeliveryDate        time.Time
	ActualDeliveryDate  *time.Time
	Weight              decimal.Decimal
	Quantity            decimal.Decimal
	Commodity           string
	EquipmentType       string
	LoadType            load.Type
	IsDraft             bool
	CreatedAt           time.Time
}

const loadViewColumns = `
	l.id, l.name, l.shipment_id, l.status, l.created_by,
	l.customer_profile_id, l.shipper_profile_id, l.consignee_profile_id,
	l.dispatcher_profile_id, l.carrier_profile_id,
	l.pick_up_location, l.destination, l.pick_up_date, l.delivery_date, l.actual_delivery_date,
	l.weight, l.quantity, l.commodity, l.equipment_type, l.load_type,
	l.is_draft, l.created_at`

type loadRow struct {
	ID                  uuid.UUID
	Name                string
	ShipmentID          uuid.UUID
	Status              int
	CreatedBy           uuid.UUID
	CustomerProfileID   uuid.UUID
	ShipperProfileID    uuid.UUID
	ConsigneeProfileID  uuid.UUID
	DispatcherProfileID uuid.UUID
	CarrierProfileID    *uuid.UUID
	PickUpLocation      uuid.UUID
	Destination         uuid.UUID
	PickUpDate          time.Time
	DeliveryDate        time.Time
	ActualDeliveryDate  *time.Time
	Weight              decimal.Decimal
	Quantity            decimal.Decimal
	Commodity           string
	EquipmentType       string
	LoadType            int
	IsDraft             bool
	CreatedAt           time.Time
	Visible             bool
}

func (r loadRow) view() (LoadView, error) {
	raw := []uuid.UUID{
		r.ID, r.ShipmentID, r.CreatedBy,
		r.CustomerProfileID, r.ShipperProfileID, r.ConsigneeProfileID, r.DispatcherProfileID,
		r.PickUpLocation, r.Destination,
	}
	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, err := kernel.UUIDFromBytes(b[:])
		if err != nil {
			return LoadView{}, err
		}
		ids = append(ids, id)
	}

	v := LoadView{
		ID:                  ids[0],
		Name:                r.Name,
		ShipmentID:          ids[1],
		Status:              load.Status(r.Status),
		CreatedBy:           ids[2],
		CustomerProfileID:   ids[3],
		ShipperProfileID:    ids[4],
		ConsigneeProfileID:  ids[5],
		DispatcherProfileID: ids[6],
		PickUpLocation:      ids[7],
		Destination:         ids[8],
		PickUpDate:          r.PickUpDate.UTC(),
		DeliveryDate:        r.DeliveryDate.UTC(),
		Weight:              r.Weight,
		Quantity:            r.Quantity,
		Commodity:           r.Commodity,
		EquipmentType:       r.EquipmentType,
		LoadType:            load.Type(r.LoadType),
		IsDraft:             r.IsDraft,
		CreatedAt:           r.CreatedAt.UTC(),
	}
	if r.CarrierProfileID != nil {
		carrier, err := kernel.UUIDFromBytes(r.CarrierProfileID[:])
		if err != nil {
			return LoadView{}, err
		}
		v.CarrierProfileID = &carrier
	}
	if r.ActualDeliveryDate != nil {
		t := r.ActualDeliveryDate.UTC()
		v.ActualDeliveryDate = &t
	}
	return v, nil
}
