package growth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureCost(t *testing.T) {
	got, err := FutureCost(10000, 0.02, 10)
	require.NoError(t, err)
	assert.InEpsilon(t, 10000*math.Pow(1.02, 10), got, 1e-12)

	got, err = FutureCost(10000, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, got)

	_, err = FutureCost(-1, 0.02, 10)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFutureCost_Overflow(t *testing.T) {
	_, err := FutureCost(1e300, 9, 1000)
	var pe *ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "horizonYears", pe.Field)

	_, _, err = InflationAdjustedContribution(1e300, 1000, 9, Monthly)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "horizonYears", pe.Field)
}

func TestInflationAdjustedContribution(t *testing.T) {
	plain, err := RequiredContribution(10000, 5, 0, Monthly)
	require.NoError(t, err)

	c, inflated, err := InflationAdjustedContribution(10000, 5, 0.03, Monthly)
	require.NoError(t, err)
	assert.Greater(t, inflated, 10000.0)
	assert.Greater(t, c, plain)
	assert.InEpsilon(t, inflated/60, c, 1e-12)
}

func TestInterestByYear(t *testing.T) {
	p := Params{
		PeriodicContribution: 100,
		AnnualRate:           0.06,
		PeriodsPerYear:       Monthly,
		HorizonYears:         3,
	}
	s, err := Simulate(p)
	require.NoError(t, err)

	years := InterestByYear(p, s)
	require.Len(t, years, 3)

	var interest, contributions float64
	for i, y := range years {
		assert.Equal(t, i+1, y.Year)
		assert.InDelta(t, 1200, y.Contributions, 1e-9)
		interest += y.Interest
		contributions += y.Contributions
	}
	assert.InEpsilon(t, s.Last().Nominal, interest+contributions, 1e-12)
	assert.Greater(t, years[2].Interest, years[0].Interest)
	assert.Equal(t, s.Last().Nominal, years[2].EndBalance)
}

func TestInterestByYear_PartialYear(t *testing.T) {
	p := Params{PeriodicContribution: 10, PeriodsPerYear: Monthly, HorizonYears: 1.5}
	s, err := Simulate(p)
	require.NoError(t, err)

	years := InterestByYear(p, s)
	require.Len(t, years, 2)
	assert.InDelta(t, 60, years[1].Contributions, 1e-9)
	assert.InDelta(t, 0, years[1].Interest, 1e-9)
}

func TestStartEarlier(t *testing.T) {
	c, err := StartEarlier(Params{
		PeriodicContribution: 100,
		AnnualRate:           0.06,
		PeriodsPerYear:       Monthly,
		HorizonYears:         20,
	}, 5)
	require.NoError(t, err)
	assert.Greater(t, c.Scenario.Nominal, c.Baseline.Nominal)
	assert.Equal(t, 300, c.Scenario.Period)
	assert.Greater(t, c.Difference(), 100.0*60)

	_, err = StartEarlier(Params{PeriodsPerYear: 1, HorizonYears: 1}, -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestKeepVersusInvest(t *testing.T) {
	c, err := KeepVersusInvest(Params{
		InitialCapital:  10000,
		AnnualRate:      0.05,
		AnnualInflation: 0.021,
		PeriodsPerYear:  Monthly,
		HorizonYears:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, 10000.0, c.Baseline.Nominal)
	assert.Less(t, c.Baseline.Real, 10000.0)
	assert.Greater(t, c.Scenario.Real, c.Baseline.Real)
	assert.InEpsilon(t, 10000*math.Pow(1.05, 10), c.Scenario.Nominal, 1e-9)
}

func TestLookupAsset(t *testing.T) {
	a, err := LookupAsset("Shares")
	require.NoError(t, err)
	assert.Equal(t, 0.06, a.AnnualReturn)
	assert.Equal(t, "Shares (6.0%/yr, high risk)", a.String())

	_, err = LookupAsset("crypto")
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Len(t, Assets(), 5)
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"monthly", 12},
		{" Yearly ", 1},
		{"annual", 1},
		{"weekly", 52},
		{"4", 4},
	}
	for _, tt := range tests {
		got, err := ParseFrequency(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"daily", "0", "-3", ""} {
		_, err := ParseFrequency(bad)
		assert.ErrorIs(t, err, ErrInvalidParameter, bad)
	}
	assert.Equal(t, "monthly", FrequencyName(12))
	assert.Equal(t, "4/yr", FrequencyName(4))
}
