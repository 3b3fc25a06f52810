package growth

import "math"

// FutureCost returns what something costing today will cost after years of
// annual inflation.
func FutureCost(today, annualInflation, years float64) (float64, error) {
	if !finite(today) || today < 0 {
		return 0, invalid("amount", "must be >= 0, got %v", today)
	}
	if !finite(annualInflation) || annualInflation < 0 {
		return 0, invalid("annualInflation", "must be >= 0, got %v", annualInflation)
	}
	if !finite(years) || years < 0 {
		return 0, invalid("horizonYears", "must be >= 0, got %v", years)
	}
	cost := today * math.Pow(1+annualInflation, years)
	if !finite(cost) {
		return 0, invalid("horizonYears", "inflated cost overflows after %v years", years)
	}
	return cost, nil
}

// InflationAdjustedContribution returns the zero-rate contribution needed to
// afford a goal priced today once inflation has raised its price, together
// with that inflated price.
func InflationAdjustedContribution(today, horizonYears, annualInflation float64, periodsPerYear int) (contribution, inflatedTarget float64, err error) {
	inflatedTarget, err = FutureCost(today, annualInflation, horizonYears)
	if err != nil {
		return 0, 0, err
	}
	contribution, err = RequiredContribution(inflatedTarget, horizonYears, 0, periodsPerYear)
	if err != nil {
		return 0, 0, err
	}
	return contribution, inflatedTarget, nil
}

// YearInterest summarises one year of a simulated series.
type YearInterest struct {
	Year          int
	Interest      float64
	Contributions float64
	EndBalance    float64
}

// InterestByYear splits a series produced by Simulate(p) into per-year
// interest earned: each period's balance increase minus its contribution.
// A trailing partial year is reported as its own entry.
func InterestByYear(p Params, s Series) []YearInterest {
	if len(s) == 0 || p.PeriodsPerYear <= 0 {
		return nil
	}

	var out []YearInterest
	prev := p.InitialCapital
	for _, pt := range s {
		year := pt.Year(p.PeriodsPerYear)
		if len(out) == 0 || out[len(out)-1].Year != year {
			out = append(out, YearInterest{Year: year})
		}
		cur := &out[len(out)-1]
		cur.Interest += pt.Nominal - prev - p.PeriodicContribution
		cur.Contributions += p.PeriodicContribution
		cur.EndBalance = pt.Nominal
		prev = pt.Nominal
	}
	return out
}

// Comparison holds the final points of two projections of the same inputs.
type Comparison struct {
	Baseline Point
	Scenario Point
}

// Difference is Scenario minus Baseline in nominal terms.
func (c Comparison) Difference() float64 {
	return c.Scenario.Nominal - c.Baseline.Nominal
}

// StartEarlier compares p against the same plan started extraYears sooner.
// Baseline is p; Scenario is p with the horizon extended by extraYears.
func StartEarlier(p Params, extraYears float64) (Comparison, error) {
	if !finite(extraYears) || extraYears < 0 {
		return Comparison{}, invalid("extraYears", "must be >= 0, got %v", extraYears)
	}
	earlier := p
	earlier.HorizonYears += extraYears
	return compare(p, earlier)
}

// KeepVersusInvest compares holding cash (the same plan at a zero rate) with
// investing at p.AnnualRate. Both sides are deflated by p.AnnualInflation.
func KeepVersusInvest(p Params) (Comparison, error) {
	kept := p
	kept.AnnualRate = 0
	return compare(kept, p)
}

func compare(baseline, scenario Params) (Comparison, error) {
	b, err := Simulate(baseline)
	if err != nil {
		return Comparison{}, err
	}
	s, err := Simulate(scenario)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{Baseline: b.Last(), Scenario: s.Last()}, nil
}
