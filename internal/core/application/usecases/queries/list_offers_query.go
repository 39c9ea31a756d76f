package queries

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListOffersQueryIsNotConstructed = errors.New(
	"ListOffersQuery must be created via NewListOffersQuery constructor",
)

// ListOffersQuery lists the offer threads of a load the requester may see.
type ListOffersQuery struct {
	loadID    kernel.UUID
	requester kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOffersQuery(loadID, requester kernel.UUID) (ListOffersQuery, error) {
	if err := errors.Join(loadID.Validate(), requester.Validate()); err != nil {
		return ListOffersQuery{}, err
	}
	return ListOffersQuery{loadID: loadID, requester: requester, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOffersQuery) Validate() error {
	return q.guard.Validate(ErrListOffersQueryIsNotConstructed)
}

// OfferView is the read model of an offer thread.
type OfferView struct {
	ID                    kernel.UUID
	LoadID                kernel.UUID
	Direction             offer.Direction
	DispatcherProfileID   kernel.UUID
	CounterpartyProfileID kernel.UUID
	Initial               decimal.Decimal
	Current               decimal.Decimal
	Status                offer.Status
	LastMover             offer.Side
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type offerRow struct {
	ID                    uuid.UUID
	LoadID                uuid.UUID
	Direction             string
	DispatcherProfileID   uuid.UUID
	CounterpartyProfileID uuid.UUID
	Initial               decimal.Decimal
	Current               decimal.Decimal
	Status                int
	LastMover             int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ListOffersQueryHandler applies the role split: the dispatcher's company
// sees both legs, a customer's or carrier's company only its own threads.
type ListOffersQueryHandler struct {
	db *gorm.DB
}

// NewListOffersQueryHandler creates a handler reading offers straight from the database.
func NewListOffersQueryHandler(db *gorm.DB) ListOffersQueryHandler {
	return ListOffersQueryHandler{db: db}
}

func (h ListOffersQueryHandler) Handle(ctx context.Context, query ListOffersQuery) ([]OfferView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if _, err := findLoad(ctx, h.db, query.loadID, query.requester); err != nil {
		return nil, err
	}

	var rows []offerRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id, o.load_id, o.direction, o.dispatcher_profile_id, o.counterparty_profile_id,
			o.initial, o.current, o.status, o.last_mover, o.created_at, o.updated_at
		FROM offers o
		JOIN loads l ON l.id = o.load_id
		WHERE o.load_id = @load
		  AND (`+actsForSQL("l.dispatcher_app_user_id")+` OR `+actsForSQL("o.counterparty_app_user_id")+`)
		ORDER BY o.created_at, o.id
	`, requesterArg(query.requester), namedUUID("load", query.loadID)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]OfferView, 0, len(rows))
	for _, r := range rows {
		v, err := r.view()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r offerRow) view() (OfferView, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, b := range []uuid.UUID{r.ID, r.LoadID, r.DispatcherProfileID, r.CounterpartyProfileID} {
		id, err := kernel.UUIDFromBytes(b[:])
		if err != nil {
			return OfferView{}, err
		}
		ids = append(ids, id)
	}
	direction, err := offer.ParseDirection(r.Direction)
	if err != nil {
		return OfferView{}, err
	}
	return OfferView{
		ID:                    ids[0],
		LoadID:                ids[1],
		Direction:             direction,
		DispatcherProfileID:   ids[2],
		CounterpartyProfileID: ids[3],
		Initial:               r.Initial,
		Current:               r.Current,
		Status:                offer.Status(r.Status),
		LastMover:             offer.Side(r.LastMover),
		CreatedAt:             r.CreatedAt.UTC(),
		UpdatedAt:             r.UpdatedAt.UTC(),
	}, nil
}
