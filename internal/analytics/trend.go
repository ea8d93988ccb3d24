package analytics

// Metrics that can be charted as a trend series.
const (
	MetricPayPerHour     = "pay_per_hour"
	MetricPayPerMile     = "pay_per_mile"
	MetricTotalPay       = "total_pay"
	MetricTotalOrders    = "total_orders"
	MetricAvgPayPerOrder = "avg_pay_per_order"
)

// movingAverageWindow is the maximum trailing window: the current point plus
// up to six preceding ones.
const movingAverageWindow = 7

var validMetrics = map[string]struct{}{
	MetricPayPerHour:     {},
	MetricPayPerMile:     {},
	MetricTotalPay:       {},
	MetricTotalOrders:    {},
	MetricAvgPayPerOrder: {},
}

// ValidateMetric rejects unknown metric names before any aggregation runs.
func ValidateMetric(metric string) error {
	if metric == "" {
		return ErrMissingParameter
	}
	if _, ok := validMetrics[metric]; !ok {
		return ErrInvalidMetric
	}
	return nil
}

// TrendPoint carries one day's raw metric value plus its trailing moving
// average, with order/pay pass-throughs for display context.
type TrendPoint struct {
	Date          string  `json:"date"`
	Value         float64 `json:"value"`
	MovingAverage float64 `json:"movingAverage"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalPay      float64 `json:"totalPay"`
}

type TrendSummary struct {
	Average float64 `json:"average"`
	Highest float64 `json:"highest"`
	Lowest  float64 `json:"lowest"`
	Trend   float64 `json:"trend"`
}

type TrendSeries struct {
	Metric  string       `json:"metric"`
	Data    []TrendPoint `json:"data"`
	Summary TrendSummary `json:"summary"`
}

// BuildTrendSeries computes the trailing moving average over days ordered
// oldest-first, then reverses the output so the most recent point comes
// first. The ordering matters: trailing averages are only correct when the
// walk is chronological, so the reversal must happen exactly once, at the
// end.
func BuildTrendSeries(days []DailyStat, metric string) TrendSeries {
	points := make([]TrendPoint, 0, len(days))
	values := make([]float64, 0, len(days))
	for i, d := range days {
		v := metricValue(d, metric)
		values = append(values, v)

		start := i - (movingAverageWindow - 1)
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, w := range values[start : i+1] {
			sum += w
		}

		points = append(points, TrendPoint{
			Date:          d.Date,
			Value:         v,
			MovingAverage: sum / float64(i+1-start),
			TotalOrders:   d.TotalOrders,
			TotalPay:      d.TotalPay,
		})
	}

	summary := summarize(values)

	// Most recent first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return TrendSeries{Metric: metric, Data: points, Summary: summary}
}

// summarize is order-independent except for trend, which compares the first
// chronological value to the last. A zero first value pins trend to 0: there
// is no meaningful percentage change from nothing.
func summarize(values []float64) TrendSummary {
	if len(values) == 0 {
		return TrendSummary{}
	}
	highest := values[0]
	lowest := values[0]
	for _, v := range values[1:] {
		if v > highest {
			highest = v
		}
		if v < lowest {
			lowest = v
		}
	}
	trend := 0.0
	if first := values[0]; len(values) > 1 && first != 0 {
		trend = (values[len(values)-1] - first) / first * 100
	}
	return TrendSummary{
		Average: mean(values),
		Highest: highest,
		Lowest:  lowest,
		Trend:   trend,
	}
}

func metricValue(d DailyStat, metric string) float64 {
	switch metric {
	case MetricPayPerHour:
		return d.PayPerHour
	case MetricPayPerMile:
		return d.PayPerMile
	case MetricTotalPay:
		return d.TotalPay
	case MetricTotalOrders:
		return float64(d.TotalOrders)
	case MetricAvgPayPerOrder:
		return d.AvgPayPerOrder
	default:
		return 0
	}
}
