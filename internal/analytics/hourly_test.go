package analytics

import (
	"testing"

	"dashtrack/internal/repository"
)

func TestBuildHourlyStats_ZeroFillsTo24(t *testing.T) {
	// One order starting 09:15.
	rows := []repository.HourlyStatRow{
		{Hour: 9, TotalOrders: 1, TotalPay: 12, TotalMiles: 4, TotalMinutes: 45, AvgPayPerOrder: 12},
	}
	stats := BuildHourlyStats(rows)
	if len(stats) != 24 {
		t.Fatalf("len=%d want=24", len(stats))
	}
	var sum int64
	for i, h := range stats {
		if h.Hour != i {
			t.Fatalf("stats[%d].Hour=%d, not ascending", i, h.Hour)
		}
		sum += h.TotalOrders
		if i != 9 && h.TotalOrders != 0 {
			t.Fatalf("hour %d not zero-filled: %+v", i, h)
		}
	}
	if sum != 1 {
		t.Fatalf("sum(total_orders)=%d want=1", sum)
	}
	if stats[9].TotalOrders != 1 {
		t.Fatalf("hour 9 orders=%d want=1", stats[9].TotalOrders)
	}
	if !approx(stats[9].PayPerHour, 16) {
		t.Fatalf("hour 9 pay_per_hour=%v want=16", stats[9].PayPerHour)
	}
	if !approx(stats[9].PayPerMile, 3) {
		t.Fatalf("hour 9 pay_per_mile=%v want=3", stats[9].PayPerMile)
	}
}

func TestBuildHourlyStats_EmptyInput(t *testing.T) {
	stats := BuildHourlyStats(nil)
	if len(stats) != 24 {
		t.Fatalf("len=%d want=24", len(stats))
	}
	for _, h := range stats {
		if h.TotalOrders != 0 || h.PayPerHour != 0 || h.PayPerMile != 0 {
			t.Fatalf("expected all-zero bucket, got %+v", h)
		}
	}
}

func TestBuildHourlyStats_LateStartStaysInStartHour(t *testing.T) {
	// A 23:50 session spanning midnight is credited wholly to hour 23.
	rows := []repository.HourlyStatRow{
		{Hour: 23, TotalOrders: 1, TotalPay: 9, TotalMinutes: 20},
	}
	stats := BuildHourlyStats(rows)
	if stats[23].TotalOrders != 1 {
		t.Fatalf("hour 23 orders=%d want=1", stats[23].TotalOrders)
	}
	if stats[0].TotalOrders != 0 {
		t.Fatalf("hour 0 orders=%d want=0 (no boundary split)", stats[0].TotalOrders)
	}
}

func TestBuildHourlyStats_DropsOutOfRangeHours(t *testing.T) {
	rows := []repository.HourlyStatRow{
		{Hour: 31, TotalOrders: 1, TotalPay: 10},
		{Hour: -1, TotalOrders: 1, TotalPay: 10},
	}
	stats := BuildHourlyStats(rows)
	for _, h := range stats {
		if h.TotalOrders != 0 {
			t.Fatalf("out-of-range rows must not land in bucket %d", h.Hour)
		}
	}
}
