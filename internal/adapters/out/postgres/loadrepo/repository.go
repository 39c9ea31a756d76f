package loadrepo

import (
	"context"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dependentTables hold rows keyed by load_id that go with the load.
var dependentTables = []string{"offers", "final_agreements"}

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new load. A duplicate id or name is a conflict.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("load", err)
		}
		return errors.Wrap(err, "insert load")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column of the load guarded by its version. A row that
// changed since it was read, or vanished, is a conflict.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return errors.Wrap(result.Error, "update load")
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause(
			"load",
			fmt.Errorf("load %s was modified concurrently or no longer exists", aggregate.ID()),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate reads a live load with a row lock held until the transaction
// ends. Soft-deleted loads are reported as not found.
func (r *GormLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("NOT is_deleted"), id)
}

func (r *GormLoadRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, errors.Wrap(err, "select load")
	}

	return toDomain(dto)
}

// DeleteExpired removes soft-deleted loads untouched since cutoff and drafts
// created before it, together with their offers and final agreements.
func (r *GormLoadRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	db := r.db.WithContext(ctx)
	expired := func() *gorm.DB {
		return db.Model(&LoadDTO{}).
			Select("id").
			Where("(is_deleted AND updated_at < @cutoff) OR (is_draft AND created_at < @cutoff)",
				map[string]any{"cutoff": cutoff.UTC()})
	}

	for _, table := range dependentTables {
		if err := db.Exec("DELETE FROM "+table+" WHERE load_id IN (?)", expired()).Error; err != nil {
			return 0, errors.Wrapf(err, "purge %s of expired loads", table)
		}
	}

	result := db.Where("id IN (?)", expired()).Delete(&LoadDTO{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "purge expired loads")
	}
	return result.RowsAffected, nil
}
