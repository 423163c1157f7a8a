package report

import "github.com/shopspring/decimal"

// Health is the traffic-light bucket derived from a budget's usage.
type Health string

const (
	HealthHealthy  Health = "Healthy"
	HealthAtRisk   Health = "At Risk"
	HealthCritical Health = "Critical"
)

// UsagePercent returns deducted/initial as a percentage rounded to two
// decimals. A zero initial yields 0: an unfunded budget is never "over".
func UsagePercent(initial, deducted decimal.Decimal) float64 {
	if initial.IsZero() {
		return 0
	}
	pct := deducted.Div(initial).Mul(decimal.NewFromInt(100)).Round(2)
	f, _ := pct.Float64()
	return f
}

// Classify buckets a usage percentage: below 70 Healthy, 70 up to but not
// including 90 At Risk, 90 and above Critical.
func Classify(usage float64) Health {
	switch {
	case usage < 70:
		return HealthHealthy
	case usage < 90:
		return HealthAtRisk
	default:
		return HealthCritical
	}
}
