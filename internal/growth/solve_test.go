package growth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredContribution_ZeroRate(t *testing.T) {
	c, err := RequiredContribution(12000, 2, 0, Monthly)
	require.NoError(t, err)
	assert.Equal(t, 500.0, c)
}

func TestRequiredContribution_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		years  float64
		rate   float64
		freq   int
	}{
		{"zero rate monthly", 15000, 3, 0, Monthly},
		{"zero rate weekly", 999.99, 1.5, 0, Weekly},
		{"positive rate monthly", 20000, 5, 0.05, Monthly},
		{"positive rate yearly", 100000, 20, 0.07, Yearly},
		{"negative rate", 5000, 4, -0.02, Monthly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := RequiredContribution(tt.target, tt.years, tt.rate, tt.freq)
			require.NoError(t, err)
			require.Greater(t, c, 0.0)

			s, err := Simulate(Params{
				PeriodicContribution: c,
				AnnualRate:           tt.rate,
				PeriodsPerYear:       tt.freq,
				HorizonYears:         tt.years,
			})
			require.NoError(t, err)
			assert.InEpsilon(t, tt.target, s.Last().Nominal, 1e-9)
		})
	}
}

func TestRequiredContribution_Invalid(t *testing.T) {
	_, err := RequiredContribution(-1, 1, 0, 12)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = RequiredContribution(100, 0, 0, 12)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = RequiredContribution(100, 1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestAnnuityPayment_ZeroDenominator(t *testing.T) {
	_, err := annuityPayment(1000, 1e-300, 1)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestPeriodsToTarget(t *testing.T) {
	tests := []struct {
		name         string
		initial      float64
		target       float64
		contribution float64
		rate         float64
		freq         int
		want         int
	}{
		{"exact multiple", 0, 500, 50, 0, Monthly, 10},
		{"rounds up", 0, 501, 50, 0, Monthly, 11},
		{"already reached", 1000, 500, 50, 0, Monthly, 0},
		{"initial capital helps", 200, 500, 50, 0, Monthly, 6},
		{"interest shortens the wait", 0, 1300, 100, 0.5, Monthly, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PeriodsToTargetFrom(tt.initial, tt.target, tt.contribution, tt.rate, tt.freq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodsToTarget_Unreachable(t *testing.T) {
	_, err := PeriodsToTarget(1_000_000, 1, 0, Monthly)
	assert.ErrorIs(t, err, ErrTargetUnreachable)

	_, err = PeriodsToTarget(100, 0, 0, Monthly)
	assert.ErrorIs(t, err, ErrTargetUnreachable)
}

func TestPeriodsToTarget_AgreesWithSimulate(t *testing.T) {
	n, err := PeriodsToTarget(10000, 150, 0.04, Monthly)
	require.NoError(t, err)

	s, err := Simulate(Params{PeriodicContribution: 150, AnnualRate: 0.04, PeriodsPerYear: Monthly, HorizonYears: float64(n) / Monthly})
	require.NoError(t, err)
	require.Equal(t, n, s.Len())
	assert.GreaterOrEqual(t, s.Last().Nominal, 10000.0)
	prev, _ := s.At(n - 1)
	assert.Less(t, prev.Nominal, 10000.0)
}

func TestPeriodsToTarget_Invalid(t *testing.T) {
	_, err := PeriodsToTarget(100, -1, 0, Monthly)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = PeriodsToTarget(100, 1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSplitPeriods(t *testing.T) {
	y, m := SplitPeriods(27, 12)
	assert.Equal(t, 2, y)
	assert.Equal(t, 3, m)
}
