package growth

import "math"

// Common compounding frequencies, expressed as periods per year.
const (
	Yearly  = 1
	Monthly = 12
	Weekly  = 52
)

// MaxSimulatedPeriods caps PeriodsPerYear × HorizonYears for a single
// projection: 100 000 periods is over 1900 years of weekly compounding.
const MaxSimulatedPeriods = 100_000

// Params describes one growth projection. Rates are decimal fractions
// (5% is 0.05).
type Params struct {
	InitialCapital       float64
	PeriodicContribution float64
	AnnualRate           float64
	AnnualInflation      float64 // 0 disables inflation tracking
	PeriodsPerYear       int
	HorizonYears         float64
}

// TotalPeriods returns round(PeriodsPerYear × HorizonYears).
func (p Params) TotalPeriods() int {
	return totalPeriods(p.PeriodsPerYear, p.HorizonYears)
}

// Validate checks every field and returns a *ParamError for the first bad one.
func (p Params) Validate() error {
	if p.PeriodsPerYear <= 0 {
		return invalid("periodsPerYear", "must be positive, got %d", p.PeriodsPerYear)
	}
	if !finite(p.HorizonYears) || p.HorizonYears <= 0 {
		return invalid("horizonYears", "must be positive, got %v", p.HorizonYears)
	}
	if float64(p.PeriodsPerYear)*p.HorizonYears > MaxSimulatedPeriods {
		return invalid("horizonYears", "%v years at %d periods per year exceeds %d periods",
			p.HorizonYears, p.PeriodsPerYear, MaxSimulatedPeriods)
	}
	if !finite(p.InitialCapital) || p.InitialCapital < 0 {
		return invalid("initialCapital", "must be >= 0, got %v", p.InitialCapital)
	}
	if !finite(p.PeriodicContribution) || p.PeriodicContribution < 0 {
		return invalid("periodicContribution", "must be >= 0, got %v", p.PeriodicContribution)
	}
	if !finite(p.AnnualRate) || p.AnnualRate <= -1 {
		return invalid("annualRate", "must be > -1, got %v", p.AnnualRate)
	}
	if !finite(p.AnnualInflation) || p.AnnualInflation < 0 {
		return invalid("annualInflation", "must be >= 0, got %v", p.AnnualInflation)
	}
	if p.TotalPeriods() < 1 {
		return invalid("horizonYears", "%v years at %d periods per year yields no period",
			p.HorizonYears, p.PeriodsPerYear)
	}
	return nil
}

// PeriodRate converts an annual rate into the equivalent per-period rate
// using compound conversion: (1 + annualRate)^(1/periodsPerYear) - 1.
func PeriodRate(annualRate float64, periodsPerYear int) float64 {
	if annualRate == 0 || periodsPerYear <= 0 {
		return 0
	}
	if periodsPerYear == 1 {
		return annualRate
	}
	return math.Pow(1+annualRate, 1/float64(periodsPerYear)) - 1
}

func totalPeriods(periodsPerYear int, horizonYears float64) int {
	return int(math.Round(float64(periodsPerYear) * horizonYears))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
