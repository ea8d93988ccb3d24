package analytics

import (
	"testing"

	"dashtrack/internal/repository"
)

func TestBuildDailyStats_DerivedRatios(t *testing.T) {
	// Two orders on 2024-01-01: 90min/$15/5mi and 30min/$5/1mi.
	rows := []repository.DailyStatRow{
		{
			Date:           "2024-01-01",
			TotalOrders:    2,
			TotalPay:       20,
			TotalMiles:     6,
			TotalMinutes:   120,
			AvgPayPerOrder: 10,
		},
	}
	stats := BuildDailyStats(rows)
	if len(stats) != 1 {
		t.Fatalf("len=%d want=1", len(stats))
	}
	d := stats[0]
	if d.TotalOrders != 2 || d.TotalMinutes != 120 {
		t.Fatalf("totals=%+v", d)
	}
	if !approx(d.PayPerHour, 10) {
		t.Fatalf("pay_per_hour=%v want=10", d.PayPerHour)
	}
	if !approx(d.PayPerMile, 20.0/6.0) {
		t.Fatalf("pay_per_mile=%v want=%v", d.PayPerMile, 20.0/6.0)
	}
	if !approx(d.TotalHours, 2) {
		t.Fatalf("total_hours=%v want=2", d.TotalHours)
	}
	if !approx(d.EfficiencyScore, 10*0.6+(20.0/6.0)*0.4) {
		t.Fatalf("efficiency_score=%v", d.EfficiencyScore)
	}
}

func TestBuildDailyStats_ZeroGuards(t *testing.T) {
	rows := []repository.DailyStatRow{
		{Date: "2024-02-01", TotalOrders: 1, TotalPay: 12, TotalMiles: 0, TotalMinutes: 0},
	}
	d := BuildDailyStats(rows)[0]
	if d.PayPerHour != 0 || d.PayPerMile != 0 {
		t.Fatalf("ratios=%v/%v want zero", d.PayPerHour, d.PayPerMile)
	}
	// One undefined ratio zeroes the composite too.
	if d.EfficiencyScore != 0 {
		t.Fatalf("efficiency_score=%v want=0", d.EfficiencyScore)
	}
}

func TestBuildDailyStats_PreservesOrderingAndSparseness(t *testing.T) {
	rows := []repository.DailyStatRow{
		{Date: "2024-01-03", TotalOrders: 1, TotalPay: 5, TotalMinutes: 30},
		{Date: "2024-01-01", TotalOrders: 2, TotalPay: 20, TotalMinutes: 120},
	}
	stats := BuildDailyStats(rows)
	if len(stats) != 2 {
		t.Fatalf("len=%d want=2 (no zero-filling of 2024-01-02)", len(stats))
	}
	if stats[0].Date != "2024-01-03" || stats[1].Date != "2024-01-01" {
		t.Fatalf("ordering changed: %s, %s", stats[0].Date, stats[1].Date)
	}

	var totalOrders int64
	for _, d := range stats {
		totalOrders += d.TotalOrders
	}
	if totalOrders != 3 {
		t.Fatalf("sum(total_orders)=%d want=3", totalOrders)
	}
}
