package analytics

// PerformanceTotals aggregates a period of daily stats.
type PerformanceTotals struct {
	Earnings float64 `json:"earnings"`
	Orders   int64   `json:"orders"`
	Miles    float64 `json:"miles"`
	Hours    float64 `json:"hours"`
}

type PerformanceAverages struct {
	PayPerHour   float64 `json:"payPerHour"`
	PayPerMile   float64 `json:"payPerMile"`
	OrdersPerDay float64 `json:"ordersPerDay"`
	HoursPerDay  float64 `json:"hoursPerDay"`
}

type PerformanceScores struct {
	Efficiency  int  `json:"efficiency"`
	Consistency *int `json:"consistency"`
}

// PerformanceSummary describes a period of daily stats. BestDay and WorstDay
// are nil for an empty period; everything else is an explicit zero, a "no
// data" response rather than an error.
type PerformanceSummary struct {
	BestDay      *DailyStat          `json:"bestDay"`
	WorstDay     *DailyStat          `json:"worstDay"`
	Averages     PerformanceAverages `json:"averages"`
	Totals       PerformanceTotals   `json:"totals"`
	Scores       PerformanceScores   `json:"scores"`
	DaysAnalyzed int                 `json:"daysAnalyzed"`
}

// BuildPerformanceSummary selects best/worst day by pay-per-hour and computes
// period totals and averages. On ties the first day encountered wins, so the
// result depends on the input ordering (descending by date, as the daily view
// returns it).
func BuildPerformanceSummary(days []DailyStat) PerformanceSummary {
	if len(days) == 0 {
		return PerformanceSummary{}
	}

	best := 0
	worst := 0
	var totals PerformanceTotals
	payPerHourByDay := make([]float64, 0, len(days))
	for i, d := range days {
		if d.PayPerHour > days[best].PayPerHour {
			best = i
		}
		if d.PayPerHour < days[worst].PayPerHour {
			worst = i
		}
		totals.Earnings += d.TotalPay
		totals.Orders += d.TotalOrders
		totals.Miles += d.TotalMiles
		totals.Hours += float64(d.TotalMinutes) / 60
		payPerHourByDay = append(payPerHourByDay, d.PayPerHour)
	}

	n := float64(len(days))
	averages := PerformanceAverages{
		PayPerHour:   SafeDiv(totals.Earnings, totals.Hours),
		PayPerMile:   SafeDiv(totals.Earnings, totals.Miles),
		OrdersPerDay: float64(totals.Orders) / n,
		HoursPerDay:  totals.Hours / n,
	}

	scores := PerformanceScores{
		Efficiency: EfficiencyScore(averages.PayPerHour, averages.PayPerMile),
	}
	if v, ok := ConsistencyScore(payPerHourByDay); ok {
		scores.Consistency = &v
	}

	bestDay := days[best]
	worstDay := days[worst]
	return PerformanceSummary{
		BestDay:      &bestDay,
		WorstDay:     &worstDay,
		Averages:     averages,
		Totals:       totals,
		Scores:       scores,
		DaysAnalyzed: len(days),
	}
}
