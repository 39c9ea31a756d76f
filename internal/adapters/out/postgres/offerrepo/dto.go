// Package offerrepo persists offer threads.
package offerrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferDTO is the row of the offers table. idx_offers_live_thread allows one
// Pending or Accepted thread per dispatcher, counterparty, load and
// direction; Rejected rows (status 3) fall outside it.
type OfferDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_offers_live_thread,where:status <> 3"`

	DispatcherProfileID   uuid.UUID `gorm:"type:uuid"`
	DispatcherAppUserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offers_live_thread,where:status <> 3"`
	CounterpartyProfileID uuid.UUID `gorm:"type:uuid"`
	CounterpartyAppUserID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_offers_live_thread,where:status <> 3"`
	Direction             string    `gorm:"size:16;uniqueIndex:idx_offers_live_thread,where:status <> 3"`

	Initial   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Current   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status    int             `gorm:"index"`
	LastMover int
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int       `gorm:"not null;default:0"`
}

func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(o *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:                    o.ID().Bytes(),
		LoadID:                o.LoadID().Bytes(),
		DispatcherProfileID:   o.Dispatcher().ProfileID.Bytes(),
		DispatcherAppUserID:   o.Dispatcher().AppUserID.Bytes(),
		CounterpartyProfileID: o.Counterparty().ProfileID.Bytes(),
		CounterpartyAppUserID: o.Counterparty().AppUserID.Bytes(),
		Direction:             o.Direction().String(),
		Initial:               o.Initial().Decimal(),
		Current:               o.Current().Decimal(),
		Status:                int(o.Status()),
		LastMover:             int(o.LastMover()),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		Version:               o.Version(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	raw := []uuid.UUID{
		dto.ID, dto.LoadID,
		dto.DispatcherProfileID, dto.DispatcherAppUserID,
		dto.CounterpartyProfileID, dto.CounterpartyAppUserID,
	}
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	direction, err := offer.ParseDirection(dto.Direction)
	if err != nil {
		return nil, err
	}
	initial, err := kernel.NewMoney(dto.Initial)
	if err != nil {
		return nil, err
	}
	current, err := kernel.NewMoney(dto.Current)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(offer.Snapshot{
		ID:           ids[0],
		LoadID:       ids[1],
		Dispatcher:   load.PartyRef{ProfileID: ids[2], AppUserID: ids[3]},
		Counterparty: load.PartyRef{ProfileID: ids[4], AppUserID: ids[5]},
		Direction:    direction,
		Initial:      initial,
		Current:      current,
		Status:       offer.Status(dto.Status),
		LastMover:    offer.Side(dto.LastMover),
		CreatedAt:    dto.CreatedAt.UTC(),
		UpdatedAt:    dto.UpdatedAt.UTC(),
		Version:      dto.Version,
	})
}
