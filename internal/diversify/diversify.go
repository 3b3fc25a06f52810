// Package diversify simulates picking one stock against holding the average
// of all of them.
//
// Each stock follows a geometric random walk: every step it moves up 1% with
// probability UpProb and down 1% otherwise. The first Reveal steps are shown
// before the pick; the investment is bought at the last revealed step and
// held to the end.
package diversify

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidConfig is returned by Simulate for an unusable configuration.
	ErrInvalidConfig = errors.New("invalid diversification config")

	// ErrUnknownChoice is returned by Outcome for a name that is not a series.
	ErrUnknownChoice = errors.New("unknown choice")
)

// AverageName names the equal-weight average series.
const AverageName = "Average"

const (
	upFactor   = 1.01
	downFactor = 0.99
)

// Config sizes the simulation.
type Config struct {
	Stocks       int     `json:"stocks"`
	Steps        int     `json:"steps"`
	Reveal       int     `json:"reveal"`
	UpProb       float64 `json:"up_prob"`
	InitialPrice float64 `json:"initial_price"`
	Investment   float64 `json:"investment"`
}

// DefaultConfig returns six stocks over 4000 steps with the first half shown.
func DefaultConfig() Config {
	return Config{
		Stocks:       6,
		Steps:        4000,
		Reveal:       2000,
		UpProb:       0.501,
		InitialPrice: 100,
		Investment:   1000,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Stocks < 1:
		return fmt.Errorf("%w: need at least one stock, got %d", ErrInvalidConfig, c.Stocks)
	case c.Steps < 2:
		return fmt.Errorf("%w: need at least two steps, got %d", ErrInvalidConfig, c.Steps)
	case c.Reveal < 1 || c.Reveal >= c.Steps:
		return fmt.Errorf("%w: reveal must be in [1, %d), got %d", ErrInvalidConfig, c.Steps, c.Reveal)
	case !(c.UpProb >= 0 && c.UpProb <= 1):
		return fmt.Errorf("%w: up probability must be in [0, 1], got %v", ErrInvalidConfig, c.UpProb)
	case !(c.InitialPrice > 0):
		return fmt.Errorf("%w: initial price must be positive, got %v", ErrInvalidConfig, c.InitialPrice)
	case !(c.Investment > 0):
		return fmt.Errorf("%w: investment must be positive, got %v", ErrInvalidConfig, c.Investment)
	}
	return nil
}

// Walk returns steps prices starting at initial.
func Walk(initial, upProb float64, steps int, rng *rand.Rand) []float64 {
	if steps <= 0 {
		return nil
	}
	prices := make([]float64, steps)
	prices[0] = initial
	for i := 1; i < steps; i++ {
		if rng.Float64() < upProb {
			prices[i] = prices[i-1] * upFactor
		} else {
			prices[i] = prices[i-1] * downFactor
		}
	}
	return prices
}

// Series is one named price path.
type Series struct {
	Name   string    `json:"name"`
	Prices []float64 `json:"prices"`
}

// Result holds every stock path followed by the average path.
type Result struct {
	Config Config   `json:"config"`
	Series []Series `json:"series"`
}

// Simulate runs cfg.Stocks walks from seed and appends their average.
func Simulate(cfg Config, seed uint64) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xda942042e4dd58b5))

	res := Result{Config: cfg, Series: make([]Series, 0, cfg.Stocks+1)}
	avg := make([]float64, cfg.Steps)
	for i := 0; i < cfg.Stocks; i++ {
		prices := Walk(cfg.InitialPrice, cfg.UpProb, cfg.Steps, rng)
		for t, p := range prices {
			avg[t] += p / float64(cfg.Stocks)
		}
		res.Series = append(res.Series, Series{Name: fmt.Sprintf("Stock %d", i+1), Prices: prices})
	}
	res.Series = append(res.Series, Series{Name: AverageName, Prices: avg})
	return res, nil
}

// Choices returns the names that can be picked, the average last.
func (r Result) Choices() []string {
	names := make([]string, len(r.Series))
	for i, s := range r.Series {
		names[i] = s.Name
	}
	return names
}

// Revealed returns the part of every series shown before the pick.
func (r Result) Revealed() []Series {
	out := make([]Series, len(r.Series))
	for i, s := range r.Series {
		out[i] = Series{Name: s.Name, Prices: s.Prices[:r.Config.Reveal]}
	}
	return out
}

// Outcome is what the investment in one series turned into.
type Outcome struct {
	Choice string  `json:"choice"`
	Buy    float64 `json:"buy"`
	Sell   float64 `json:"sell"`
	Value  float64 `json:"value"`
	Gain   float64 `json:"gain"`
}

// Outcome buys cfg.Investment of choice at the last revealed step and sells
// it at the final step.
func (r Result) Outcome(choice string) (Outcome, error) {
	for _, s := range r.Series {
		if s.Name != choice {
			continue
		}
		buy := s.Prices[r.Config.Reveal-1]
		sell := s.Prices[len(s.Prices)-1]
		value := r.Config.Investment * sell / buy
		return Outcome{
			Choice: choice,
			Buy:    buy,
			Sell:   sell,
			Value:  value,
			Gain:   value - r.Config.Investment,
		}, nil
	}
	return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownChoice, choice)
}

// Outcomes returns the outcome of every choice in order.
func (r Result) Outcomes() []Outcome {
	out := make([]Outcome, 0, len(r.Series))
	for _, name := range r.Choices() {
		o, _ := r.Outcome(name)
		out = append(out, o)
	}
	return out
}
