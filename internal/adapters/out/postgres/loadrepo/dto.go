// Package loadrepo persists the load aggregate. Party AppUser columns are
// stored next to the profile references so that visibility can be resolved
// with a single join against company membership.
package loadrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadDTO is the row of the loads table.
type LoadDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:32;uniqueIndex"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;index"`

	Customer   PartyDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Shipper    PartyDTO `gorm:"embedded;embeddedPrefix:shipper_"`
	Consignee  PartyDTO `gorm:"embedded;embeddedPrefix:consignee_"`
	Dispatcher PartyDTO `gorm:"embedded;embeddedPrefix:dispatcher_"`

	CarrierProfileID *uuid.UUID `gorm:"type:uuid"`
	CarrierAppUserID *uuid.UUID `gorm:"type:uuid;index"`

	PickUpLocation     uuid.UUID `gorm:"type:uuid"`
	Destination        uuid.UUID `gorm:"type:uuid"`
	PickUpDate         time.Time
	DeliveryDate       time.Time
	ActualDeliveryDate *time.Time

	Freight FreightDTO `gorm:"embedded"`

	Status    int       `gorm:"index"`
	IsDraft   bool      `gorm:"not null;default:false"`
	IsDeleted bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int       `gorm:"not null;default:0"`
}

func (LoadDTO) TableName() string {
	return "loads"
}

// PartyDTO is an embedded profile reference with its owning AppUser.
type PartyDTO struct {
	ProfileID uuid.UUID `gorm:"type:uuid"`
	AppUserID uuid.UUID `gorm:"type:uuid;index"`
}

// FreightDTO holds dimensions and cargo description.
type FreightDTO struct {
	Length        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Width         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Height        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Weight        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Commodity     string          `gorm:"size:255"`
	EquipmentType string          `gorm:"size:64;index"`
	LoadType      int
}

func partyFromDomain(ref load.PartyRef) PartyDTO {
	return PartyDTO{ProfileID: ref.ProfileID.Bytes(), AppUserID: ref.AppUserID.Bytes()}
}

func partyToDomain(dto PartyDTO) (load.PartyRef, error) {
	profileID, err := kernel.UUIDFromBytes(dto.ProfileID[:])
	if err != nil {
		return load.PartyRef{}, err
	}
	appUserID, err := kernel.UUIDFromBytes(dto.AppUserID[:])
	if err != nil {
		return load.PartyRef{}, err
	}
	return load.PartyRef{ProfileID: profileID, AppUserID: appUserID}, nil
}

func fromDomain(l *load.Load) LoadDTO {
	parties := l.Parties()
	f := l.Freight()
	s := l.Schedule()

	dto := LoadDTO{
		ID:                 l.ID().Bytes(),
		Name:               l.Name(),
		ShipmentID:         l.ShipmentID().Bytes(),
		CreatedBy:          l.CreatedBy().Bytes(),
		Customer:           partyFromDomain(parties.Customer),
		Shipper:            partyFromDomain(parties.Shipper),
		Consignee:          partyFromDomain(parties.Consignee),
		Dispatcher:         partyFromDomain(parties.Dispatcher),
		PickUpLocation:     l.PickUpLocation().Bytes(),
		Destination:        l.Destination().Bytes(),
		PickUpDate:         s.PickUpDate,
		DeliveryDate:       s.DeliveryDate,
		ActualDeliveryDate: l.ActualDeliveryDate(),
		Freight: FreightDTO{
			Length:        f.Length,
			Width:         f.Width,
			Height:        f.Height,
			Weight:        f.Weight,
			Quantity:      f.Quantity,
			Commodity:     f.Commodity,
			EquipmentType: f.EquipmentType,
			LoadType:      int(f.Type),
		},
		Status:    int(l.Status()),
		IsDraft:   l.IsDraft(),
		IsDeleted: l.IsDeleted(),
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
		Version:   l.Version(),
	}
	if c := parties.Carrier; c != nil {
		profileID, appUserID := c.ProfileID.Bytes(), c.AppUserID.Bytes()
		dto.CarrierProfileID = &profileID
		dto.CarrierAppUserID = &appUserID
	}
	return dto
}

func toDomain(dto LoadDTO) (*load.Load, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{dto.ID, dto.ShipmentID, dto.CreatedBy, dto.PickUpLocation, dto.Destination} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var (
		parties load.Parties
		err     error
	)
	if parties.Customer, err = partyToDomain(dto.Customer); err != nil {
		return nil, err
	}
	if parties.Shipper, err = partyToDomain(dto.Shipper); err != nil {
		return nil, err
	}
	if parties.Consignee, err = partyToDomain(dto.Consignee); err != nil {
		return nil, err
	}
	if parties.Dispatcher, err = partyToDomain(dto.Dispatcher); err != nil {
		return nil, err
	}
	if dto.CarrierProfileID != nil && dto.CarrierAppUserID != nil {
		carrier, carrierErr := partyToDomain(PartyDTO{ProfileID: *dto.CarrierProfileID, AppUserID: *dto.CarrierAppUserID})
		if carrierErr != nil {
			return nil, carrierErr
		}
		parties.Carrier = &carrier
	}

	var actual *time.Time
	if dto.ActualDeliveryDate != nil {
		t := dto.ActualDeliveryDate.UTC()
		actual = &t
	}

	return load.RestoreLoad(load.Snapshot{
		ID:             ids[0],
		Name:           dto.Name,
		ShipmentID:     ids[1],
		CreatedBy:      ids[2],
		Parties:        parties,
		PickUpLocation: ids[3],
		Destination:    ids[4],
		Schedule: load.Schedule{
			PickUpDate:   dto.PickUpDate.UTC(),
			DeliveryDate: dto.DeliveryDate.UTC(),
		},
		ActualDeliveryDate: actual,
		Freight: load.Freight{
			Length:        dto.Freight.Length,
			Width:         dto.Freight.Width,
			Height:        dto.Freight.Height,
			Weight:        dto.Freight.Weight,
			Quantity:      dto.Freight.Quantity,
			Commodity:     dto.Freight.Commodity,
			EquipmentType: dto.Freight.EquipmentType,
			Type:          load.Type(dto.Freight.LoadType),
		},
		Status:    load.Status(dto.Status),
		IsDraft:   dto.IsDraft,
		IsDeleted: dto.IsDeleted,
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
		Version:   dto.Version,
	})
}
