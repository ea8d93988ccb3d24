package analytics

import "testing"

func TestBuildPerformanceSummary_Empty(t *testing.T) {
	s := BuildPerformanceSummary(nil)
	if s.BestDay != nil || s.WorstDay != nil {
		t.Fatalf("expected nil best/worst for empty period")
	}
	if s.DaysAnalyzed != 0 || s.Totals != (PerformanceTotals{}) || s.Averages != (PerformanceAverages{}) {
		t.Fatalf("expected zero object: %+v", s)
	}
}

func TestBuildPerformanceSummary_SingleDay(t *testing.T) {
	days := []DailyStat{{
		Date:         "2024-01-05",
		TotalOrders:  3,
		TotalPay:     36,
		TotalMiles:   12,
		TotalMinutes: 180,
		PayPerHour:   12,
		PayPerMile:   3,
	}}
	s := BuildPerformanceSummary(days)
	if s.BestDay == nil || s.WorstDay == nil {
		t.Fatalf("expected best and worst day")
	}
	if s.BestDay.Date != "2024-01-05" || s.WorstDay.Date != "2024-01-05" {
		t.Fatalf("best=%s worst=%s want same single day", s.BestDay.Date, s.WorstDay.Date)
	}
	if !approx(s.Averages.PayPerHour, 12) {
		t.Fatalf("payPerHour=%v want=12", s.Averages.PayPerHour)
	}
	if s.DaysAnalyzed != 1 {
		t.Fatalf("daysAnalyzed=%d want=1", s.DaysAnalyzed)
	}
	if s.Scores.Consistency != nil {
		t.Fatalf("consistency must be undefined for 1 day")
	}
}

func TestBuildPerformanceSummary_BestWorstAndTotals(t *testing.T) {
	days := []DailyStat{
		{Date: "2024-01-03", TotalOrders: 2, TotalPay: 30, TotalMiles: 10, TotalMinutes: 120, PayPerHour: 15, PayPerMile: 3},
		{Date: "2024-01-02", TotalOrders: 4, TotalPay: 40, TotalMiles: 20, TotalMinutes: 240, PayPerHour: 10, PayPerMile: 2},
		{Date: "2024-01-01", TotalOrders: 1, TotalPay: 25, TotalMiles: 5, TotalMinutes: 60, PayPerHour: 25, PayPerMile: 5},
	}
	s := BuildPerformanceSummary(days)
	if s.BestDay.Date != "2024-01-01" {
		t.Fatalf("bestDay=%s want=2024-01-01", s.BestDay.Date)
	}
	if s.WorstDay.Date != "2024-01-02" {
		t.Fatalf("worstDay=%s want=2024-01-02", s.WorstDay.Date)
	}
	if !approx(s.Totals.Earnings, 95) || s.Totals.Orders != 7 || !approx(s.Totals.Miles, 35) || !approx(s.Totals.Hours, 7) {
		t.Fatalf("totals=%+v", s.Totals)
	}
	if !approx(s.Averages.PayPerHour, 95.0/7.0) {
		t.Fatalf("payPerHour=%v", s.Averages.PayPerHour)
	}
	if !approx(s.Averages.OrdersPerDay, 7.0/3.0) || !approx(s.Averages.HoursPerDay, 7.0/3.0) {
		t.Fatalf("averages=%+v", s.Averages)
	}
	if s.DaysAnalyzed != 3 {
		t.Fatalf("daysAnalyzed=%d want=3", s.DaysAnalyzed)
	}
	if s.Scores.Consistency == nil {
		t.Fatalf("consistency must be defined for 3 days")
	}
	if *s.Scores.Consistency < 0 || *s.Scores.Consistency > 100 {
		t.Fatalf("consistency=%d out of [0,100]", *s.Scores.Consistency)
	}
	if s.Scores.Efficiency < 0 || s.Scores.Efficiency > 100 {
		t.Fatalf("efficiency=%d out of [0,100]", s.Scores.Efficiency)
	}
}

func TestBuildPerformanceSummary_TieKeepsFirstEncountered(t *testing.T) {
	days := []DailyStat{
		{Date: "2024-01-02", PayPerHour: 10, TotalMinutes: 60},
		{Date: "2024-01-01", PayPerHour: 10, TotalMinutes: 60},
	}
	s := BuildPerformanceSummary(days)
	if s.BestDay.Date != "2024-01-02" || s.WorstDay.Date != "2024-01-02" {
		t.Fatalf("tie-break changed: best=%s worst=%s", s.BestDay.Date, s.WorstDay.Date)
	}
}

func TestBuildPerformanceSummary_ZeroDenominators(t *testing.T) {
	days := []DailyStat{
		{Date: "2024-01-01", TotalOrders: 1, TotalPay: 10, TotalMiles: 0, TotalMinutes: 0},
	}
	s := BuildPerformanceSummary(days)
	if s.Averages.PayPerHour != 0 || s.Averages.PayPerMile != 0 {
		t.Fatalf("averages=%+v want guarded zeros", s.Averages)
	}
}
