package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// DefaultRetention is the retention window for soft-deleted loads and drafts.
const DefaultRetention = 30 * 24 * time.Hour

var ErrPurgeExpiredLoadsCommandIsNotConstructed = errors.New(
	"PurgeExpiredLoadsCommand must be created via NewPurgeExpiredLoadsCommand constructor",
)

// PurgeExpiredLoadsCommand removes loads that are soft-deleted and untouched
// for the retention window, and drafts older than it.
type PurgeExpiredLoadsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration
	now       time.Time

	guard guard.ConstructorGuard
}

func NewPurgeExpiredLoadsCommand(retention time.Duration, now time.Time) (PurgeExpiredLoadsCommand, error) {
	if retention <= 0 {
		return PurgeExpiredLoadsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention.String(), "1ns", "unbounded")
	}
	if now.IsZero() {
		return PurgeExpiredLoadsCommand{}, errs.NewValueIsRequiredError("now")
	}
	return PurgeExpiredLoadsCommand{retention: retention, now: now, guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeExpiredLoadsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredLoadsCommandIsNotConstructed)
}

// Cutoff is the instant before which expired loads were last touched.
func (c PurgeExpiredLoadsCommand) Cutoff() time.Time {
	return c.now.Add(-c.retention)
}

// PurgeExpiredLoadsCommandHandler runs the retention sweep in one transaction.
type PurgeExpiredLoadsCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewPurgeExpiredLoadsCommandHandler creates a handler for the retention job.
func NewPurgeExpiredLoadsCommandHandler(uowFactory ports.UnitOfWorkFactory) PurgeExpiredLoadsCommandHandler {
	return PurgeExpiredLoadsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of purged loads.
func (h PurgeExpiredLoadsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredLoadsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var purged int64
	err := inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		var err error
		purged, err = uow.LoadRepository().DeleteExpired(ctx, cmd.Cutoff())
		return err
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}
