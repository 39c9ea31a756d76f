package queries

import (
	"context"
	"database/sql"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// baseLoadsCTE is the dashboard's base dataset: published, non-deleted loads
// visible to @requester.
const baseLoadsCTE = `WITH base AS (
	SELECT l.* FROM loads l
	WHERE NOT l.is_deleted AND NOT l.is_draft AND ` + visibleLoadSQL + `
)
`

// marginSQL adds accepted customer amounts and subtracts accepted carrier
// amounts of an offer row aliased o.
const marginSQL = `COALESCE(SUM(CASE o.direction WHEN 'customer' THEN o.current ELSE -o.current END), 0)`

// GormDashboardReader implements DashboardReader with one SQL statement per branch.
type GormDashboardReader struct {
	db *gorm.DB
}

func NewGormDashboardReader(db *gorm.DB) GormDashboardReader {
	return GormDashboardReader{db: db}
}

func (r GormDashboardReader) raw(ctx context.Context, query string, requester kernel.UUID, args ...any) *gorm.DB {
	return r.db.WithContext(ctx).Raw(baseLoadsCTE+query, append([]any{requesterArg(requester)}, args...)...)
}

func (r GormDashboardReader) CountVisible(ctx context.Context, requester kernel.UUID) (int64, error) {
	var total int64
	err := r.raw(ctx, `SELECT COUNT(*) FROM base`, requester).Scan(&total).Error
	return total, err
}

// StatusCards has one card per status, zero counts included.
func (r GormDashboardReader) StatusCards(ctx context.Context, requester kernel.UUID) ([]StatusCard, error) {
	var rows []struct {
		Status int
		Count  int64
	}
	if err := r.raw(ctx, `SELECT status, COUNT(*) AS count FROM base GROUP BY status`, requester).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[load.Status]int64, len(rows))
	for _, row := range rows {
		counts[load.Status(row.Status)] = row.Count
	}
	statuses := load.AllStatuses()
	cards := make([]StatusCard, 0, len(statuses))
	for _, s := range statuses {
		cards = append(cards, StatusCard{Status: s, Count: counts[s]})
	}
	return cards, nil
}

// MonthlySeries returns twelve points for the given UTC year.
func (r GormDashboardReader) MonthlySeries(ctx context.Context, requester kernel.UUID, year int) ([]MonthlyPoint, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var rows []struct {
		Month     int
		Created   int64
		Delivered int64
	}
	err := r.raw(ctx, `
		SELECT month, SUM(created) AS created, SUM(delivered) AS delivered FROM (
			SELECT EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month, 1 AS created, 0 AS delivered
			FROM base WHERE created_at >= @from AND created_at < @to
			UNION ALL
			SELECT EXTRACT(MONTH FROM actual_delivery_date AT TIME ZONE 'UTC')::int, 0, 1
			FROM base WHERE status = @delivered AND actual_delivery_date >= @from AND actual_delivery_date < @to
		) events
		GROUP BY month
	`, requester,
		sql.Named("from", from),
		sql.Named("to", to),
		sql.Named("delivered", int(load.Delivered)),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	series := make([]MonthlyPoint, 12)
	for i := range series {
		series[i].Month = i + 1
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			series[row.Month-1].Created = row.Created
			series[row.Month-1].Delivered = row.Delivered
		}
	}
	return series, nil
}

func (r GormDashboardReader) TypeWeightBreakdown(ctx context.Context, requester kernel.UUID) ([]TypeWeightBucket, error) {
	var rows []struct {
		LoadType    int
		WeightClass string
		Count       int64
	}
	err := r.raw(ctx, `
		SELECT load_type,
			CASE WHEN weight < @light THEN '`+WeightClassLight+`' WHEN weight < @medium THEN '`+WeightClassMedium+`' ELSE '`+WeightClassHeavy+`' END AS weight_class,
			COUNT(*) AS count
		FROM base
		GROUP BY 1, 2
		ORDER BY 1, 2
	`, requester,
		sql.Named("light", lightWeightLimit),
		sql.Named("medium", mediumWeightLimit),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	buckets := make([]TypeWeightBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, TypeWeightBucket{LoadType: load.Type(row.LoadType), WeightClass: row.WeightClass, Count: row.Count})
	}
	return buckets, nil
}

func (r GormDashboardReader) TopEquipment(ctx context.Context, requester kernel.UUID, limit int) ([]EquipmentCount, error) {
	var rows []EquipmentCount
	err := r.raw(ctx, `
		SELECT equipment_type, COUNT(*) AS count
		FROM base
		WHERE equipment_type <> ''
		GROUP BY equipment_type
		ORDER BY count DESC, equipment_type
		LIMIT @limit
	`, requester, sql.Named("limit", limit)).Scan(&rows).Error
	return rows, err
}

// TopDispatchers ranks dispatcher profiles by margin on delivered loads.
func (r GormDashboardReader) TopDispatchers(ctx context.Context, requester kernel.UUID, limit int) ([]DispatcherRevenue, error) {
	var rows []struct {
		DispatcherProfileID uuid.UUID
		Revenue             decimal.Decimal
		Loads               int64
	}
	err := r.raw(ctx, `
		SELECT b.dispatcher_profile_id, `+marginSQL+` AS revenue, COUNT(DISTINCT b.id) AS loads
		FROM base b
		JOIN offers o ON o.load_id = b.id AND o.status = @accepted
		WHERE b.status = @delivered
		GROUP BY b.dispatcher_profile_id
		ORDER BY revenue DESC, b.dispatcher_profile_id
		LIMIT @limit
	`, requester,
		sql.Named("accepted", int(offer.Accepted)),
		sql.Named("delivered", int(load.Delivered)),
		sql.Named("limit", limit),
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	top := make([]DispatcherRevenue, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.DispatcherProfileID[:])
		if idErr != nil {
			return nil, idErr
		}
		top = append(top, DispatcherRevenue{DispatcherProfileID: id, Revenue: row.Revenue, Loads: row.Loads})
	}
	return top, nil
}

func (r GormDashboardReader) Punctuality(ctx context.Context, requester kernel.UUID) (Punctuality, error) {
	var p Punctuality
	err := r.raw(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE actual_delivery_date <= delivery_date) AS on_time,
			COUNT(*) FILTER (WHERE actual_delivery_date > delivery_date) AS late
		FROM base
		WHERE status = @delivered AND actual_delivery_date IS NOT NULL
	`, requester, sql.Named("delivered", int(load.Delivered))).Scan(&p).Error
	return p, err
}

// Revenue is the accepted customer amounts minus the accepted carrier amounts
// over delivered loads.
func (r GormDashboardReader) Revenue(ctx context.Context, requester kernel.UUID) (decimal.Decimal, error) {
	var row struct {
		Revenue decimal.Decimal
	}
	err := r.raw(ctx, `
		SELECT `+marginSQL+` AS revenue
		FROM base b
		JOIN offers o ON o.load_id = b.id AND o.status = @accepted
		WHERE b.status = @delivered
	`, requester,
		sql.Named("accepted", int(offer.Accepted)),
		sql.Named("delivered", int(load.Delivered)),
	).Scan(&row).Error
	return row.Revenue, err
}
