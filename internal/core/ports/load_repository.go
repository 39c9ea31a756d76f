// Package ports defines the contracts between the freight core and its
// infrastructure: persistence, the party directory, the document service
// and notification delivery.
package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// LoadRepository persists Load aggregates.
type LoadRepository interface {
	// Add persists a new load. A duplicate name signals Conflict.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update writes the load back using optimistic versioning. A stale
	// version signals Conflict.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get returns a non-purged load or NotFound.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// DeleteExpired removes soft-deleted loads last updated before cutoff and
	// drafts created before cutoff, returning the number of removed loads.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
