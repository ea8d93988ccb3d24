package analytics

import (
	"time"

	"dashtrack/internal/repository"
)

// Overview is the whole-history rollup shown on the dashboard.
type Overview struct {
	TotalOrders     int64   `json:"total_orders"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalMiles      float64 `json:"total_miles"`
	TotalMinutes    int64   `json:"total_minutes"`
	TotalHours      float64 `json:"total_hours"`
	AvgPayPerOrder  float64 `json:"avg_pay_per_order"`
	AvgPayPerHour   float64 `json:"avg_pay_per_hour"`
	AvgPayPerMile   float64 `json:"avg_pay_per_mile"`
	FirstOrderDate  string  `json:"first_order_date"`
	LastOrderDate   string  `json:"last_order_date"`
	TotalDaysActive int     `json:"total_days_active"`
	AvgHoursPerDay  float64 `json:"avg_hours_per_day"`
}

// BuildOverview derives the ratio and span fields from the raw rollup. An
// empty table yields the all-zero object, not an error.
func BuildOverview(row repository.OverviewRow) Overview {
	hours := float64(row.TotalMinutes) / 60
	days := daySpanInclusive(row.FirstOrderDate, row.LastOrderDate)
	return Overview{
		TotalOrders:     row.TotalOrders,
		TotalEarnings:   row.TotalEarnings,
		TotalMiles:      row.TotalMiles,
		TotalMinutes:    row.TotalMinutes,
		TotalHours:      hours,
		AvgPayPerOrder:  row.AvgPayPerOrder,
		AvgPayPerHour:   SafeDiv(row.TotalEarnings, hours),
		AvgPayPerMile:   SafeDiv(row.TotalEarnings, row.TotalMiles),
		FirstOrderDate:  row.FirstOrderDate,
		LastOrderDate:   row.LastOrderDate,
		TotalDaysActive: days,
		AvgHoursPerDay:  SafeDiv(hours, float64(days)),
	}
}

// daySpanInclusive counts calendar days from first to last, both ends
// included; 0 when either bound is absent or malformed.
func daySpanInclusive(first, last string) int {
	if first == "" || last == "" {
		return 0
	}
	start, err := time.Parse(dateLayout, first)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, last)
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
