package analytics

import "dashtrack/internal/repository"

// HourlyStat is one hour-of-day bucket (0-23). A session is credited wholly
// to the hour it started in, even when it spans into later hours.
type HourlyStat struct {
	Hour           int     `json:"hour"`
	TotalOrders    int64   `json:"total_orders"`
	TotalPay       float64 `json:"total_pay"`
	TotalMiles     float64 `json:"total_miles"`
	TotalMinutes   int64   `json:"total_minutes"`
	TotalHours     float64 `json:"total_hours"`
	AvgPayPerOrder float64 `json:"avg_pay_per_order"`
	PayPerHour     float64 `json:"pay_per_hour"`
	PayPerMile     float64 `json:"pay_per_mile"`
}

// BuildHourlyStats expands sparse per-hour rows into exactly 24 entries in
// ascending hour order, zero-filled where no orders matched. Rows with an
// out-of-range hour (malformed start_time slipped past upstream validation)
// are dropped rather than panicking the whole view.
func BuildHourlyStats(rows []repository.HourlyStatRow) []HourlyStat {
	byHour := make(map[int]repository.HourlyStatRow, len(rows))
	for _, r := range rows {
		if r.Hour < 0 || r.Hour > 23 {
			continue
		}
		byHour[r.Hour] = r
	}

	out := make([]HourlyStat, 0, 24)
	for hour := 0; hour < 24; hour++ {
		r := byHour[hour]
		hours := float64(r.TotalMinutes) / 60
		out = append(out, HourlyStat{
			Hour:           hour,
			TotalOrders:    r.TotalOrders,
			TotalPay:       r.TotalPay,
			TotalMiles:     r.TotalMiles,
			TotalMinutes:   r.TotalMinutes,
			TotalHours:     hours,
			AvgPayPerOrder: r.AvgPayPerOrder,
			PayPerHour:     SafeDiv(r.TotalPay, hours),
			PayPerMile:     SafeDiv(r.TotalPay, r.TotalMiles),
		})
	}
	return out
}
