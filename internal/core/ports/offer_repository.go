package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
)

// OfferRepository persists offer threads.
type OfferRepository interface {
	// Add persists a new thread. A second Pending thread for the same
	// (dispatcher, counterparty, load, direction) signals Conflict.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update writes the thread back using optimistic versioning.
	Update(ctx context.Context, aggregate *offer.Offer) error

	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// ListByLoad returns every thread on a load, oldest first.
	ListByLoad(ctx context.Context, loadID kernel.UUID) ([]*offer.Offer, error)
}
