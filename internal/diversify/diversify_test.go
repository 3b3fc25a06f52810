package diversify

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	up := Walk(100, 1, 4, rand.New(rand.NewPCG(1, 1)))
	assert.InDeltaSlice(t, []float64{100, 101, 102.01, 103.0301}, up, 1e-9)

	down := Walk(100, 0, 3, rand.New(rand.NewPCG(1, 1)))
	assert.InDeltaSlice(t, []float64{100, 99, 98.01}, down, 1e-9)

	assert.Nil(t, Walk(100, 0.5, 0, rand.New(rand.NewPCG(1, 1))))
}

func TestWalk_EveryStepIsOnePercent(t *testing.T) {
	prices := Walk(100, 0.501, 500, rand.New(rand.NewPCG(7, 7)))
	for i := 1; i < len(prices); i++ {
		ratio := prices[i] / prices[i-1]
		assert.True(t, almost(ratio, 1.01) || almost(ratio, 0.99), "step %d ratio %v", i, ratio)
	}
}

func almost(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestSimulate(t *testing.T) {
	cfg := DefaultConfig()
	res, err := Simulate(cfg, 11)
	require.NoError(t, err)

	require.Len(t, res.Series, cfg.Stocks+1)
	assert.Equal(t, AverageName, res.Series[len(res.Series)-1].Name)
	assert.Equal(t, "Stock 1", res.Choices()[0])

	for _, s := range res.Series {
		assert.Len(t, s.Prices, cfg.Steps)
		assert.InDelta(t, cfg.InitialPrice, s.Prices[0], 1e-9)
	}

	step := 1234
	sum := 0.0
	for _, s := range res.Series[:cfg.Stocks] {
		sum += s.Prices[step]
	}
	assert.InDelta(t, sum/float64(cfg.Stocks), res.Series[cfg.Stocks].Prices[step], 1e-9)
}

func TestSimulate_Deterministic(t *testing.T) {
	a, err := Simulate(DefaultConfig(), 5)
	require.NoError(t, err)
	b, err := Simulate(DefaultConfig(), 5)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Simulate(DefaultConfig(), 6)
	require.NoError(t, err)
	assert.NotEqual(t, a.Series[0].Prices, c.Series[0].Prices)
}

func TestSimulate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"no stocks", func(c *Config) { c.Stocks = 0 }},
		{"one step", func(c *Config) { c.Steps = 1 }},
		{"reveal everything", func(c *Config) { c.Reveal = c.Steps }},
		{"probability above one", func(c *Config) { c.UpProb = 1.5 }},
		{"zero price", func(c *Config) { c.InitialPrice = 0 }},
		{"negative investment", func(c *Config) { c.Investment = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			_, err := Simulate(cfg, 1)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestOutcome(t *testing.T) {
	cfg := Config{Stocks: 2, Steps: 4, Reveal: 2, UpProb: 1, InitialPrice: 100, Investment: 1000}
	res, err := Simulate(cfg, 1)
	require.NoError(t, err)

	o, err := res.Outcome("Stock 2")
	require.NoError(t, err)
	assert.InDelta(t, 101, o.Buy, 1e-9)
	assert.InDelta(t, 103.0301, o.Sell, 1e-9)
	assert.InDelta(t, 1020.1, o.Value, 1e-9)
	assert.InDelta(t, 20.1, o.Gain, 1e-9)

	avg, err := res.Outcome(AverageName)
	require.NoError(t, err)
	assert.InDelta(t, o.Value, avg.Value, 1e-9)

	_, err = res.Outcome("Stock 9")
	assert.ErrorIs(t, err, ErrUnknownChoice)

	assert.Len(t, res.Outcomes(), 3)
}

func TestRevealed(t *testing.T) {
	res, err := Simulate(DefaultConfig(), 2)
	require.NoError(t, err)
	for _, s := range res.Revealed() {
		assert.Len(t, s.Prices, 2000)
	}
}
