package queries

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"golang.org/x/sync/errgroup"
)

// DefaultBranchTimeout bounds each dashboard aggregation.
const DefaultBranchTimeout = 5 * time.Second

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

type GetDashboardQuery struct {
	requester kernel.UUID
	now       time.Time

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery builds the query; the monthly series covers the UTC
// year of now.
func NewGetDashboardQuery(requester kernel.UUID, now time.Time) (GetDashboardQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}
	if now.IsZero() {
		return GetDashboardQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetDashboardQuery{requester: requester, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryHandler fans the seven aggregations out concurrently and
// waits for all of them. A failing branch degrades to its zero value; only
// cancellation of the caller's context fails the whole dashboard.
type GetDashboardQueryHandler struct {
	reader        DashboardReader
	branchTimeout time.Duration
	logger        *slog.Logger
}

// NewGetDashboardQueryHandler creates a handler that runs every dashboard
// branch with its own timeout of branchTimeout. A non-positive timeout falls
// back to DefaultBranchTimeout and a nil logger to slog.Default.
func NewGetDashboardQueryHandler(reader DashboardReader, branchTimeout time.Duration, logger *slog.Logger) GetDashboardQueryHandler {
	if branchTimeout <= 0 {
		branchTimeout = DefaultBranchTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return GetDashboardQueryHandler{
		reader:        reader,
		branchTimeout: branchTimeout,
		logger:        logger.With("component", "dashboard"),
	}
}

// Handle returns NotFound when the requester sees no loads at all.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	requester := query.requester
	total, err := h.reader.CountVisible(ctx, requester)
	if err != nil {
		return Dashboard{}, err
	}
	if total == 0 {
		return Dashboard{}, errs.NewObjectNotFoundError("dashboard loads", requester.String())
	}

	d := Dashboard{Year: query.now.Year(), TotalLoads: total}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	run := func(branch string, fetch func(ctx context.Context) error) {
		g.Go(func() error {
			bctx, cancel := context.WithTimeout(gctx, h.branchTimeout)
			defer cancel()

			if err := fetch(bctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				h.logger.WarnContext(ctx, "dashboard branch degraded",
					"branch", branch,
					"requester", requester.String(),
					"error", err,
				)
				mu.Lock()
				d.Degraded = append(d.Degraded, branch)
				mu.Unlock()
			}
			return nil
		})
	}

	run("status_cards", func(ctx context.Context) error {
		v, err := h.reader.StatusCards(ctx, requester)
		if err == nil {
			d.StatusCards = v
		}
		return err
	})
	run("monthly", func(ctx context.Context) error {
		v, err := h.reader.MonthlySeries(ctx, requester, d.Year)
		if err == nil {
			d.Monthly = v
		}
		return err
	})
	run("type_weight", func(ctx context.Context) error {
		v, err := h.reader.TypeWeightBreakdown(ctx, requester)
		if err == nil {
			d.TypeWeight = v
		}
		return err
	})
	run("top_equipment", func(ctx context.Context) error {
		v, err := h.reader.TopEquipment(ctx, requester, topListSize)
		if err == nil {
			d.TopEquipment = v
		}
		return err
	})
	run("top_dispatchers", func(ctx context.Context) error {
		v, err := h.reader.TopDispatchers(ctx, requester, topListSize)
		if err == nil {
			d.TopDispatchers = v
		}
		return err
	})
	run("punctuality", func(ctx context.Context) error {
		v, err := h.reader.Punctuality(ctx, requester)
		if err == nil {
			d.Punctuality = v
		}
		return err
	})
	run("revenue", func(ctx context.Context) error {
		v, err := h.reader.Revenue(ctx, requester)
		if err == nil {
			d.Revenue = v
		}
		return err
	})

	if err = g.Wait(); err != nil {
		return Dashboard{}, err
	}
	slices.Sort(d.Degraded)
	return d, nil
}
