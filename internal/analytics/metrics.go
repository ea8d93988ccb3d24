package analytics

import "math"

// Normalization ceilings for the efficiency score: $25/hour and $3/mile count
// as a perfect component score.
const (
	efficiencyHourlyCeiling = 25.0
	efficiencyMileCeiling   = 3.0
)

// SafeDiv is the single guarded-division helper used by every ratio in the
// package: a zero denominator yields 0, never an error. Zero-division on an
// empty bucket is an expected condition, not an exceptional one.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// EfficiencyScore is a 0-100 composite of the two core KPIs, weighted 60/40 in
// favor of the hourly rate. Either ratio being zero means there is no basis
// for a score.
func EfficiencyScore(payPerHour, payPerMile float64) int {
	if payPerHour == 0 || payPerMile == 0 {
		return 0
	}
	hourly := math.Min(payPerHour/efficiencyHourlyCeiling, 1)
	mile := math.Min(payPerMile/efficiencyMileCeiling, 1)
	return int(math.Round((hourly*0.6 + mile*0.4) * 100))
}

// ConsistencyScore measures day-to-day stability of pay-per-hour as
// 100 minus the relative population standard deviation, floored at 0.
// It is undefined (ok=false) with fewer than three days or a zero mean.
func ConsistencyScore(dailyPayPerHour []float64) (int, bool) {
	if len(dailyPayPerHour) < 3 {
		return 0, false
	}
	m := mean(dailyPayPerHour)
	if m == 0 {
		return 0, false
	}
	sd := popStdDev(dailyPayPerHour, m)
	score := 100 - (sd/m)*100
	if score < 0 {
		score = 0
	}
	return int(math.Round(score)), true
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	s := 0.0
	for _, x := range v {
		s += x
	}
	return s / float64(len(v))
}

func popStdDev(v []float64, m float64) float64 {
	if len(v) == 0 {
		return 0
	}
	s := 0.0
	for _, x := range v {
		d := x - m
		s += d * d
	}
	return math.Sqrt(s / float64(len(v)))
}
