package queries

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

var ErrListLoadsQueryIsNotConstructed = errors.New(
	"ListLoadsQuery must be created via NewListLoadsQuery constructor",
)

// ListLoadsQuery pages through the loads a requester may see, newest first.
// A requester without a company gets an empty page.
type ListLoadsQuery struct {
	requester kernel.UUID
	status    *load.Status
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewListLoadsQuery builds the query; a zero limit means DefaultPageSize and a
// nil status means every status.
func NewListLoadsQuery(requester kernel.UUID, status *load.Status, limit, offset int) (ListLoadsQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListLoadsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListLoadsQuery{}, err
		}
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 0 || limit > MaxPageSize {
		return ListLoadsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}
	if offset < 0 {
		return ListLoadsQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return ListLoadsQuery{
		requester: requester,
		status:    status,
		limit:     limit,
		offset:    offset,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListLoadsQueryIsNotConstructed)
}

type ListLoadsQueryHandler struct {
	db *gorm.DB
}

// NewListLoadsQueryHandler creates a handler for paged load lists.
func NewListLoadsQueryHandler(db *gorm.DB) ListLoadsQueryHandler {
	return ListLoadsQueryHandler{db: db}
}

func (h ListLoadsQueryHandler) Handle(ctx context.Context, query ListLoadsQuery) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("loads AS l").
		Select(loadViewColumns).
		Where("NOT l.is_deleted").
		Scopes(VisibleLoads(query.requester))
	if query.status != nil {
		stmt = stmt.Where("l.status = ?", int(*query.status))
	}

	var rows []loadRow
	if err := stmt.
		Order("l.created_at DESC, l.id").
		Limit(query.limit).
		Offset(query.offset).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]LoadView, 0, len(rows))
	for _, r := range rows {
		v, err := r.view()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
