package growth

import "math"

// MaxPeriods bounds PeriodsToTarget: 600 monthly periods is 50 years.
const MaxPeriods = 600

// RequiredContribution returns the constant per-period contribution needed to
// reach target from zero initial capital after horizonYears.
//
// With a zero rate the answer is target / n. Otherwise the future value of an
// annuity is solved: target × i / ((1+i)^n − 1), where i is the compound
// per-period rate.
func RequiredContribution(target, horizonYears, annualRate float64, periodsPerYear int) (float64, error) {
	if !finite(target) || target < 0 {
		return 0, invalid("targetAmount", "must be >= 0, got %v", target)
	}
	p := Params{AnnualRate: annualRate, PeriodsPerYear: periodsPerYear, HorizonYears: horizonYears}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	n := p.TotalPeriods()
	i := PeriodRate(annualRate, periodsPerYear)
	if i == 0 {
		return target / float64(n), nil
	}
	return annuityPayment(target, i, n)
}

func annuityPayment(target, i float64, n int) (float64, error) {
	denom := math.Pow(1+i, float64(n)) - 1
	if denom == 0 {
		return 0, ErrDivisionByZero
	}
	return target * i / denom, nil
}

// PeriodsToTarget returns the smallest number of periods after which a balance
// starting at zero reaches target. See PeriodsToTargetFrom.
func PeriodsToTarget(target, contribution, annualRate float64, periodsPerYear int) (int, error) {
	return PeriodsToTargetFrom(0, target, contribution, annualRate, periodsPerYear)
}

// PeriodsToTargetFrom iterates the per-period update rule from initialCapital
// until the nominal balance is at least target. It returns 0 when the initial
// capital already covers the target and ErrTargetUnreachable when MaxPeriods
// periods are not enough.
func PeriodsToTargetFrom(initialCapital, target, contribution, annualRate float64, periodsPerYear int) (int, error) {
	if !finite(target) || target < 0 {
		return 0, invalid("targetAmount", "must be >= 0, got %v", target)
	}
	p := Params{
		InitialCapital:       initialCapital,
		PeriodicContribution: contribution,
		AnnualRate:           annualRate,
		PeriodsPerYear:       periodsPerYear,
		HorizonYears:         1,
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	balance := initialCapital
	if balance >= target {
		return 0, nil
	}
	rate := PeriodRate(annualRate, periodsPerYear)
	for period := 1; period <= MaxPeriods; period++ {
		balance = step(balance, rate, contribution)
		if balance >= target {
			return period, nil
		}
	}
	return 0, ErrTargetUnreachable
}

// SplitPeriods breaks a period count into whole years and remaining periods.
func SplitPeriods(periods, periodsPerYear int) (years, rest int) {
	if periodsPerYear <= 0 {
		return 0, periods
	}
	return periods / periodsPerYear, periods % periodsPerYear
}
