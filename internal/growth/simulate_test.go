package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_ZeroRateMonthlySaving(t *testing.T) {
	s, err := Simulate(Params{
		PeriodicContribution: 100,
		PeriodsPerYear:       Monthly,
		HorizonYears:         1,
	})
	require.NoError(t, err)
	require.Equal(t, 12, s.Len())
	assert.Equal(t, 1200.0, s.Last().Nominal)
	assert.Equal(t, 12, s.Last().Period)
}

func TestSimulate_ZeroRateIsArithmetic(t *testing.T) {
	for _, n := range []int{1, 7, 52, 240} {
		s, err := Simulate(Params{PeriodicContribution: 25, PeriodsPerYear: 1, HorizonYears: float64(n)})
		require.NoError(t, err)
		assert.Equal(t, 25*float64(n), s.Last().Nominal, "n=%d", n)
	}
}

func TestSimulate_PureCompounding(t *testing.T) {
	s, err := Simulate(Params{
		InitialCapital: 10000,
		AnnualRate:     0.07,
		PeriodsPerYear: Yearly,
		HorizonYears:   20,
	})
	require.NoError(t, err)
	require.Equal(t, 20, s.Len())

	want := 10000 * math.Pow(1.07, 20)
	assert.InEpsilon(t, want, s.Last().Nominal, 1e-9)
	assert.InDelta(t, 38697, s.Last().Nominal, 1)
}

func TestSimulate_MonthlyCompoundingMatchesAnnualYield(t *testing.T) {
	s, err := Simulate(Params{
		InitialCapital: 1000,
		AnnualRate:     0.05,
		PeriodsPerYear: Monthly,
		HorizonYears:   1,
	})
	require.NoError(t, err)
	assert.InEpsilon(t, 1050.0, s.Last().Nominal, 1e-9)
}

func TestSimulate_RealBalanceDeflatesFromPeriodZero(t *testing.T) {
	p := Params{
		InitialCapital:  1000,
		AnnualInflation: 0.02,
		PeriodsPerYear:  Monthly,
		HorizonYears:    10,
	}
	s, err := Simulate(p)
	require.NoError(t, err)

	last := s.Last()
	assert.Equal(t, 1000.0, last.Nominal)
	assert.InEpsilon(t, 1000/math.Pow(1.02, 10), last.Real, 1e-9)

	// Without inflation tracking the real value mirrors the nominal one.
	p.AnnualInflation = 0
	s, err = Simulate(p)
	require.NoError(t, err)
	for _, pt := range s {
		assert.Equal(t, pt.Nominal, pt.Real)
	}
}

func TestSimulate_Monotonic(t *testing.T) {
	s, err := Simulate(Params{
		InitialCapital:       500,
		PeriodicContribution: 20,
		AnnualRate:           0.06,
		AnnualInflation:      0.03,
		PeriodsPerYear:       Weekly,
		HorizonYears:         5,
	})
	require.NoError(t, err)
	for i := 1; i < len(s); i++ {
		assert.GreaterOrEqual(t, s[i].Nominal, s[i-1].Nominal)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	p := Params{
		InitialCapital:       1234.5,
		PeriodicContribution: 67.8,
		AnnualRate:           0.043,
		AnnualInflation:      0.021,
		PeriodsPerYear:       Monthly,
		HorizonYears:         30,
	}
	a, err := Simulate(p)
	require.NoError(t, err)
	b, err := Simulate(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulate_FractionalHorizon(t *testing.T) {
	s, err := Simulate(Params{PeriodicContribution: 10, PeriodsPerYear: Monthly, HorizonYears: 2.5})
	require.NoError(t, err)
	assert.Equal(t, 30, s.Len())
}

func TestSimulate_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		field string
	}{
		{"zero frequency", Params{HorizonYears: 1}, "periodsPerYear"},
		{"negative frequency", Params{PeriodsPerYear: -12, HorizonYears: 1}, "periodsPerYear"},
		{"zero horizon", Params{PeriodsPerYear: 12}, "horizonYears"},
		{"horizon rounds to zero periods", Params{PeriodsPerYear: 1, HorizonYears: 0.2}, "horizonYears"},
		{"negative capital", Params{InitialCapital: -1, PeriodsPerYear: 1, HorizonYears: 1}, "initialCapital"},
		{"negative contribution", Params{PeriodicContribution: -5, PeriodsPerYear: 1, HorizonYears: 1}, "periodicContribution"},
		{"rate at -100%", Params{AnnualRate: -1, PeriodsPerYear: 1, HorizonYears: 1}, "annualRate"},
		{"negative inflation", Params{AnnualInflation: -0.01, PeriodsPerYear: 1, HorizonYears: 1}, "annualInflation"},
		{"NaN horizon", Params{PeriodsPerYear: 1, HorizonYears: math.NaN()}, "horizonYears"},
		{"horizon past period cap", Params{InitialCapital: 1, PeriodsPerYear: Monthly, HorizonYears: 1e13}, "horizonYears"},
		{"huge frequency", Params{PeriodsPerYear: math.MaxInt, HorizonYears: 1}, "horizonYears"},
		{"balance overflows", Params{InitialCapital: 1000, AnnualRate: 10, PeriodsPerYear: Yearly, HorizonYears: 400}, "horizonYears"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Simulate(tt.p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var pe *ParamError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestSimulate_PeriodCap(t *testing.T) {
	s, err := Simulate(Params{PeriodicContribution: 1, PeriodsPerYear: 1, HorizonYears: MaxSimulatedPeriods})
	require.NoError(t, err)
	assert.Equal(t, MaxSimulatedPeriods, s.Len())

	_, err = Simulate(Params{PeriodicContribution: 1, PeriodsPerYear: 1, HorizonYears: MaxSimulatedPeriods + 1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPeriodRate(t *testing.T) {
	assert.Equal(t, 0.0, PeriodRate(0, 12))
	assert.Equal(t, 0.07, PeriodRate(0.07, 1))
	assert.InEpsilon(t, math.Pow(1.05, 1.0/12)-1, PeriodRate(0.05, 12), 1e-12)
	// Compound conversion is below naive division.
	assert.Less(t, PeriodRate(0.12, 12), 0.01)
}

func TestSeries_At(t *testing.T) {
	s, err := Simulate(Params{PeriodicContribution: 1, PeriodsPerYear: 1, HorizonYears: 3})
	require.NoError(t, err)

	pt, ok := s.At(2)
	require.True(t, ok)
	assert.Equal(t, 2.0, pt.Nominal)

	_, ok = s.At(0)
	assert.False(t, ok)
	_, ok = s.At(4)
	assert.False(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, s.Nominal())
}

func TestPoint_Year(t *testing.T) {
	assert.Equal(t, 1, Point{Period: 1}.Year(12))
	assert.Equal(t, 1, Point{Period: 12}.Year(12))
	assert.Equal(t, 2, Point{Period: 13}.Year(12))
	assert.Equal(t, 0, Point{Period: 13}.Year(0))
}
