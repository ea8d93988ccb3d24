package analytics

import "testing"

func chronologicalDays(totalPay ...float64) []DailyStat {
	days := make([]DailyStat, 0, len(totalPay))
	for i, pay := range totalPay {
		days = append(days, DailyStat{
			Date:        dateForIndex(i),
			TotalOrders: int64(i + 1),
			TotalPay:    pay,
		})
	}
	return days
}

func dateForIndex(i int) string {
	return "2024-01-" + string([]byte{byte('0' + (i+1)/10), byte('0' + (i+1)%10)})
}

func TestValidateMetric(t *testing.T) {
	for _, m := range []string{
		MetricPayPerHour, MetricPayPerMile, MetricTotalPay,
		MetricTotalOrders, MetricAvgPayPerOrder,
	} {
		if err := ValidateMetric(m); err != nil {
			t.Fatalf("metric %q rejected: %v", m, err)
		}
	}
	if err := ValidateMetric("total_tips"); err == nil {
		t.Fatalf("expected rejection of unknown metric")
	}
	if err := ValidateMetric(""); err == nil {
		t.Fatalf("expected rejection of empty metric")
	}
}

func TestBuildTrendSeries_ReversedOutputAndTrendPct(t *testing.T) {
	series := BuildTrendSeries(chronologicalDays(10, 20, 30), MetricTotalPay)
	if len(series.Data) != 3 {
		t.Fatalf("len=%d want=3", len(series.Data))
	}
	// Most recent first.
	if series.Data[0].Value != 30 || series.Data[1].Value != 20 || series.Data[2].Value != 10 {
		t.Fatalf("values=%v,%v,%v want 30,20,10",
			series.Data[0].Value, series.Data[1].Value, series.Data[2].Value)
	}
	if !approx(series.Summary.Trend, 200) {
		t.Fatalf("trend=%v want=200", series.Summary.Trend)
	}
	if !approx(series.Summary.Average, 20) || series.Summary.Highest != 30 || series.Summary.Lowest != 10 {
		t.Fatalf("summary=%+v", series.Summary)
	}
}

func TestBuildTrendSeries_MovingAverageWindow(t *testing.T) {
	series := BuildTrendSeries(chronologicalDays(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), MetricTotalPay)

	// Output is reversed; index from the chronological end.
	byDate := map[string]TrendPoint{}
	for _, p := range series.Data {
		byDate[p.Date] = p
	}

	// First chronological point: window of 1.
	if got := byDate[dateForIndex(0)].MovingAverage; !approx(got, 1) {
		t.Fatalf("first ma=%v want=1", got)
	}
	// Third point: mean of 1..3.
	if got := byDate[dateForIndex(2)].MovingAverage; !approx(got, 2) {
		t.Fatalf("third ma=%v want=2", got)
	}
	// Tenth point: trailing 7 values 4..10, never more.
	if got := byDate[dateForIndex(9)].MovingAverage; !approx(got, 7) {
		t.Fatalf("tenth ma=%v want=7", got)
	}
}

func TestBuildTrendSeries_ZeroFirstValuePinsTrend(t *testing.T) {
	series := BuildTrendSeries(chronologicalDays(0, 50, 100), MetricTotalPay)
	if series.Summary.Trend != 0 {
		t.Fatalf("trend=%v want=0 when first value is 0", series.Summary.Trend)
	}
}

func TestBuildTrendSeries_SinglePointAndEmpty(t *testing.T) {
	series := BuildTrendSeries(chronologicalDays(42), MetricTotalPay)
	if len(series.Data) != 1 {
		t.Fatalf("len=%d want=1", len(series.Data))
	}
	if !approx(series.Data[0].MovingAverage, 42) {
		t.Fatalf("ma=%v want=42", series.Data[0].MovingAverage)
	}
	if series.Summary.Trend != 0 {
		t.Fatalf("trend=%v want=0 for single point", series.Summary.Trend)
	}

	empty := BuildTrendSeries(nil, MetricTotalPay)
	if len(empty.Data) != 0 || empty.Summary != (TrendSummary{}) {
		t.Fatalf("empty input: %+v", empty)
	}
}

func TestBuildTrendSeries_PassThroughContext(t *testing.T) {
	days := []DailyStat{{Date: "2024-03-01", TotalOrders: 4, TotalPay: 55.5, PayPerHour: 18}}
	series := BuildTrendSeries(days, MetricPayPerHour)
	p := series.Data[0]
	if p.Value != 18 || p.TotalOrders != 4 || !approx(p.TotalPay, 55.5) {
		t.Fatalf("point=%+v", p)
	}
}
