package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
)

// Weight classes of the load-type breakdown, in pounds.
const (
	WeightClassLight  = "light"
	WeightClassMedium = "medium"
	WeightClassHeavy  = "heavy"

	lightWeightLimit  = 10000
	mediumWeightLimit = 26000

	topListSize = 5
)

type StatusCard struct {
	Status load.Status
	Count  int64
}

// MonthlyPoint counts loads created and delivered in one month of the year.
type MonthlyPoint struct {
	Month     int
	Created   int64
	Delivered int64
}

type TypeWeightBucket struct {
	LoadType    load.Type
	WeightClass string
	Count       int64
}

type EquipmentCount struct {
	EquipmentType string
	Count         int64
}

// DispatcherRevenue is the margin a dispatcher brought in on delivered loads.
type DispatcherRevenue struct {
	DispatcherProfileID kernel.UUID
	Revenue             decimal.Decimal
	Loads               int64
}

type Punctuality struct {
	OnTime int64
	Late   int64
}

// OnTimeRatio is OnTime over all delivered loads, or 0 when none were delivered.
func (p Punctuality) OnTimeRatio() float64 {
	total := p.OnTime + p.Late
	if total == 0 {
		return 0
	}
	return float64(p.OnTime) / float64(total)
}

// Dashboard merges every branch. Degraded names the branches that failed or
// timed out; their fields hold zero values.
type Dashboard struct {
	Year           int
	TotalLoads     int64
	StatusCards    []StatusCard
	Monthly        []MonthlyPoint
	TypeWeight     []TypeWeightBucket
	TopEquipment   []EquipmentCount
	TopDispatchers []DispatcherRevenue
	Punctuality    Punctuality
	Revenue        decimal.Decimal
	Degraded       []string
}

// DashboardReader runs the aggregations over the loads visible to requester,
// excluding drafts and deleted loads.
type DashboardReader interface {
	CountVisible(ctx context.Context, requester kernel.UUID) (int64, error)
	StatusCards(ctx context.Context, requester kernel.UUID) ([]StatusCard, error)
	MonthlySeries(ctx context.Context, requester kernel.UUID, year int) ([]MonthlyPoint, error)
	TypeWeightBreakdown(ctx context.Context, requester kernel.UUID) ([]TypeWeightBucket, error)
	TopEquipment(ctx context.Context, requester kernel.UUID, limit int) ([]EquipmentCount, error)
	TopDispatchers(ctx context.Context, requester kernel.UUID, limit int) ([]DispatcherRevenue, error)
	Punctuality(ctx context.Context, requester kernel.UUID) (Punctuality, error)
	Revenue(ctx context.Context, requester kernel.UUID) (decimal.Decimal, error)
}
