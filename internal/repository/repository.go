package repository

import (
	"context"

	"dashtrack/internal/models"
)

// Repository is the record store consumed by the order and analytics services.
// Rollup methods return pre-aggregated sums only; derived ratios are computed
// by the analytics package so the divide-by-zero policy lives in one place.
type Repository interface {
	// Orders
	InsertOrder(ctx context.Context, item *models.Order) error
	InsertOrdersBulk(ctx context.Context, items []*models.Order) error
	GetOrderByID(ctx context.Context, id uint64) (*models.Order, error)
	UpdateOrder(ctx context.Context, item *models.Order) (int64, error)
	DeleteOrder(ctx context.Context, id uint64) (int64, error)
	ClearOrders(ctx context.Context) (int64, error)
	ListOrders(ctx context.Context, params ListOrdersParams) ([]models.Order, error)
	CountOrders(ctx context.Context, params ListOrdersParams) (int64, error)

	// Aggregate rollups
	OverviewStats(ctx context.Context) (OverviewRow, error)
	DailyRollup(ctx context.Context, startDate, endDate string) ([]DailyStatRow, error)
	HourlyRollup(ctx context.Context, date string) ([]HourlyStatRow, error)
}

type ListOrdersParams struct {
	Limit     int
	Offset    int
	StartDate *string
	EndDate   *string
	MinPay    *float64
	MaxPay    *float64
	OrderBy   string
	Asc       *bool
}

// OverviewRow is the whole-table rollup. FirstOrderDate and LastOrderDate are
// empty strings when the table is empty.
type OverviewRow struct {
	TotalOrders    int64
	TotalEarnings  float64
	TotalMiles     float64
	TotalMinutes   int64
	AvgPayPerOrder float64
	FirstOrderDate string
	LastOrderDate  string
}

// DailyStatRow is one GROUP BY date row, descending by date. Dates with no
// orders in the range are absent (sparse result).
type DailyStatRow struct {
	Date           string
	TotalOrders    int64
	TotalPay       float64
	TotalMiles     float64
	TotalMinutes   int64
	AvgPayPerOrder float64
}

// HourlyStatRow is one GROUP BY hour-of(start_time) row. Only hours with at
// least one order appear; zero-filling to 24 buckets is the caller's job.
type HourlyStatRow struct {
	Hour           int
	TotalOrders    int64
	TotalPay       float64
	TotalMiles     float64
	TotalMinutes   int64
	AvgPayPerOrder float64
}
