package analytics

import "dashtrack/internal/repository"

// DailyStat is one calendar day's rollup with derived KPI ratios. Not
// persisted; computed per request and discarded.
type DailyStat struct {
	Date            string  `json:"date"`
	TotalOrders     int64   `json:"total_orders"`
	TotalPay        float64 `json:"total_pay"`
	TotalMiles      float64 `json:"total_miles"`
	TotalMinutes    int64   `json:"total_minutes"`
	TotalHours      float64 `json:"total_hours"`
	AvgPayPerOrder  float64 `json:"avg_pay_per_order"`
	PayPerHour      float64 `json:"pay_per_hour"`
	PayPerMile      float64 `json:"pay_per_mile"`
	EfficiencyScore float64 `json:"efficiency_score"`
}

// BuildDailyStats derives the per-day ratios from pre-grouped sums. Input
// ordering is preserved (the store returns descending by date); days with no
// orders are simply absent, callers wanting a dense axis must build it
// themselves.
func BuildDailyStats(rows []repository.DailyStatRow) []DailyStat {
	out := make([]DailyStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, buildDailyStat(r))
	}
	return out
}

func buildDailyStat(r repository.DailyStatRow) DailyStat {
	hours := float64(r.TotalMinutes) / 60
	payPerHour := SafeDiv(r.TotalPay, hours)
	payPerMile := SafeDiv(r.TotalPay, r.TotalMiles)

	// Raw weighted composite, only meaningful when both ratios exist.
	efficiency := 0.0
	if payPerHour != 0 && payPerMile != 0 {
		efficiency = payPerHour*0.6 + payPerMile*0.4
	}

	return DailyStat{
		Date:            r.Date,
		TotalOrders:     r.TotalOrders,
		TotalPay:        r.TotalPay,
		TotalMiles:      r.TotalMiles,
		TotalMinutes:    r.TotalMinutes,
		TotalHours:      hours,
		AvgPayPerOrder:  r.AvgPayPerOrder,
		PayPerHour:      payPerHour,
		PayPerMile:      payPerMile,
		EfficiencyScore: efficiency,
	}
}
