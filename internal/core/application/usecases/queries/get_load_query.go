package queries

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery reads one load on behalf of a requester.
type GetLoadQuery struct {
	loadID    kernel.UUID
	requester kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLoadQuery(loadID, requester kernel.UUID) (GetLoadQuery, error) {
	if err := errors.Join(loadID.Validate(), requester.Validate()); err != nil {
		return GetLoadQuery{}, err
	}
	return GetLoadQuery{loadID: loadID, requester: requester, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

// GetLoadQueryHandler tells a missing load (NotFound) from a hidden one
// (PermissionDenied) in a single round trip.
type GetLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadQueryHandler creates a handler for single load reads.
func NewGetLoadQueryHandler(db *gorm.DB) GetLoadQueryHandler {
	return GetLoadQueryHandler{db: db}
}

func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadView, error) {
	if err := query.Validate(); err != nil {
		return LoadView{}, err
	}

	row, err := findLoad(ctx, h.db, query.loadID, query.requester)
	if err != nil {
		return LoadView{}, err
	}
	return row.view()
}

// findLoad returns the non-deleted load with its visibility already checked.
func findLoad(ctx context.Context, db *gorm.DB, loadID, requester kernel.UUID) (loadRow, error) {
	var rows []loadRow
	err := db.WithContext(ctx).Raw(`
		SELECT `+loadViewColumns+`, `+visibleLoadSQL+` AS visible
		FROM loads l
		WHERE l.id = @load AND NOT l.is_deleted
	`, requesterArg(requester), namedUUID("load", loadID)).Scan(&rows).Error
	if err != nil {
		return loadRow{}, err
	}
	if len(rows) == 0 {
		return loadRow{}, errs.NewObjectNotFoundError("load", loadID.String())
	}
	if !rows[0].Visible {
		return loadRow{}, errs.NewPermissionDeniedErrorWithCause("view load", fmt.Errorf("load %s", loadID))
	}
	return rows[0], nil
}
