package service

import (
	"context"

	"go.uber.org/zap"
)

// StatsSnapshotService periodically logs the all-time overview aggregates.
// Observability only: nothing is cached or persisted, every analytics request
// still computes from the store.
type StatsSnapshotService struct {
	Analytics *AnalyticsService
	Logger    *zap.Logger
}

func (s *StatsSnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Analytics == nil {
		return nil
	}
	overview, err := s.Analytics.Overview(ctx)
	if err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("stats snapshot",
			zap.Int64("total_orders", overview.TotalOrders),
			zap.Float64("total_earnings", overview.TotalEarnings),
			zap.Float64("total_hours", overview.TotalHours),
			zap.Float64("avg_pay_per_hour", overview.AvgPayPerHour),
			zap.Float64("avg_pay_per_mile", overview.AvgPayPerMile),
			zap.String("first_order_date", overview.FirstOrderDate),
			zap.String("last_order_date", overview.LastOrderDate),
		)
	}
	return nil
}
