// Package growth projects an account balance over equal-length periods with
// optional periodic contributions, compounding and inflation adjustment.
package growth

import "math"

// Point is the balance at the end of one period.
type Point struct {
	Period  int     // 1-based
	Nominal float64 // unadjusted for inflation
	Real    float64 // nominal deflated back to period 0 purchasing power
}

// Year returns the 1-based year the period falls in.
func (pt Point) Year(periodsPerYear int) int {
	if periodsPerYear <= 0 {
		return 0
	}
	return (pt.Period-1)/periodsPerYear + 1
}

// Series is the ordered sequence of period-end balances. Index i holds
// period i+1.
type Series []Point

// Len returns the number of periods.
func (s Series) Len() int { return len(s) }

// Last returns the final point, or the zero Point for an empty series.
func (s Series) Last() Point {
	if len(s) == 0 {
		return Point{}
	}
	return s[len(s)-1]
}

// At returns the point for a 1-based period.
func (s Series) At(period int) (Point, bool) {
	if period < 1 || period > len(s) {
		return Point{}, false
	}
	return s[period-1], true
}

// Nominal returns the nominal balances in period order.
func (s Series) Nominal() []float64 {
	out := make([]float64, len(s))
	for i, pt := range s {
		out[i] = pt.Nominal
	}
	return out
}

// Simulate runs the per-period update rule
//
//	balance = balance × (1 + periodRate) + contribution
//
// TotalPeriods times starting from InitialCapital. When AnnualInflation is
// set, each point's Real value is the nominal balance discounted by the
// cumulative per-period inflation since period 0. A balance that grows past
// the float64 range is reported as a *ParamError on horizonYears.
func Simulate(p Params) (Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.TotalPeriods()
	rate := PeriodRate(p.AnnualRate, p.PeriodsPerYear)
	inflation := PeriodRate(p.AnnualInflation, p.PeriodsPerYear)

	series := make(Series, 0, n)
	balance := p.InitialCapital
	for period := 1; period <= n; period++ {
		balance = step(balance, rate, p.PeriodicContribution)
		if !finite(balance) {
			return nil, invalid("horizonYears", "balance overflows at period %d of %d", period, n)
		}
		deflated := balance
		if inflation != 0 {
			deflated = balance / math.Pow(1+inflation, float64(period))
		}
		series = append(series, Point{Period: period, Nominal: balance, Real: deflated})
	}
	return series, nil
}

func step(balance, rate, contribution float64) float64 {
	return balance*(1+rate) + contribution
}
