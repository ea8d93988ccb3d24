package service

import (
	"context"

	"dashtrack/internal/analytics"
	"dashtrack/internal/repository"
)

// AnalyticsService validates request parameters, pulls pre-aggregated rows
// from the store and hands them to the analytics transforms. All validation
// happens before any store call; invalid input never yields a partial result.
type AnalyticsService struct {
	Repo repository.Repository
}

func (s *AnalyticsService) Overview(ctx context.Context) (analytics.Overview, error) {
	row, err := s.Repo.OverviewStats(ctx)
	if err != nil {
		return analytics.Overview{}, err
	}
	return analytics.BuildOverview(row), nil
}

// DailyStats returns one stat per day with orders in [startDate, endDate],
// descending by date. Days without orders are absent.
func (s *AnalyticsService) DailyStats(ctx context.Context, startDate, endDate string) ([]analytics.DailyStat, error) {
	if err := analytics.ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	rows, err := s.Repo.DailyRollup(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return analytics.BuildDailyStats(rows), nil
}

// HourlyStats returns exactly 24 buckets, zero-filled. An empty date means
// the all-time hour-of-day distribution.
func (s *AnalyticsService) HourlyStats(ctx context.Context, date string) ([]analytics.HourlyStat, error) {
	if date != "" {
		if err := analytics.ValidateDate(date); err != nil {
			return nil, err
		}
	}
	rows, err := s.Repo.HourlyRollup(ctx, date)
	if err != nil {
		return nil, err
	}
	return analytics.BuildHourlyStats(rows), nil
}

// TrendSeries charts one metric over the range with a trailing moving
// average, most recent point first. An empty metric defaults to pay_per_hour.
func (s *AnalyticsService) TrendSeries(ctx context.Context, startDate, endDate, metric string) (analytics.TrendSeries, error) {
	if metric == "" {
		metric = analytics.MetricPayPerHour
	}
	if err := analytics.ValidateRange(startDate, endDate); err != nil {
		return analytics.TrendSeries{}, err
	}
	if err := analytics.ValidateMetric(metric); err != nil {
		return analytics.TrendSeries{}, err
	}
	rows, err := s.Repo.DailyRollup(ctx, startDate, endDate)
	if err != nil {
		return analytics.TrendSeries{}, err
	}
	days := analytics.BuildDailyStats(rows)
	// The store returns newest-first; the moving average needs a
	// chronological walk.
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return analytics.BuildTrendSeries(days, metric), nil
}

// PerformanceSummary returns best/worst day, totals and averages over the
// range. An empty range yields the explicit zero object, not an error.
func (s *AnalyticsService) PerformanceSummary(ctx context.Context, startDate, endDate string) (analytics.PerformanceSummary, error) {
	if err := analytics.ValidateRange(startDate, endDate); err != nil {
		return analytics.PerformanceSummary{}, err
	}
	rows, err := s.Repo.DailyRollup(ctx, startDate, endDate)
	if err != nil {
		return analytics.PerformanceSummary{}, err
	}
	return analytics.BuildPerformanceSummary(analytics.BuildDailyStats(rows)), nil
}
