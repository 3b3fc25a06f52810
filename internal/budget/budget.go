// Package budget implements the 50/30/20 planner and monthly spending review.
package budget

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidRule is returned when a rule's shares are negative or do not
	// add up to 100%.
	ErrInvalidRule = errors.New("invalid budget rule")

	// ErrInvalidAmount is returned for negative or non-finite money amounts.
	ErrInvalidAmount = errors.New("invalid amount")
)

const tolerance = 1e-9

// Rule splits income into needs, wants and savings, in percent.
type Rule struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// DefaultRule is the classic 50/30/20 split.
var DefaultRule = Rule{Needs: 50, Wants: 30, Savings: 20}

// RuleFromSpending fills in savings as whatever needs and wants leave over.
// The savings share is negative when spending exceeds 100%.
func RuleFromSpending(needs, wants float64) Rule {
	return Rule{Needs: needs, Wants: wants, Savings: 100 - needs - wants}
}

// Validate checks that every share is non-negative and that they sum to 100.
func (r Rule) Validate() error {
	for _, s := range []struct {
		name string
		v    float64
	}{{"needs", r.Needs}, {"wants", r.Wants}, {"savings", r.Savings}} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) || s.v < 0 {
			return fmt.Errorf("%w: %s share must be a non-negative number, got %v", ErrInvalidRule, s.name, s.v)
		}
	}
	if sum := r.Needs + r.Wants + r.Savings; math.Abs(sum-100) > tolerance {
		return fmt.Errorf("%w: shares add up to %v%%, want 100%%", ErrInvalidRule, sum)
	}
	return nil
}

// Warning flags a share that weighs too much on the budget.
type Warning string

const (
	WantsHeavy Warning = "wants above 40% of income"
	NeedsHeavy Warning = "needs above 60% of income"
)

// Warnings returns the rule's imbalance flags, wants first.
func (r Rule) Warnings() []Warning {
	var out []Warning
	if r.Wants > 40 {
		out = append(out, WantsHeavy)
	}
	if r.Needs > 60 {
		out = append(out, NeedsHeavy)
	}
	return out
}

// Allocation is income split by a rule.
type Allocation struct {
	Income  float64 `json:"income"`
	Rule    Rule    `json:"rule"`
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
	Health  Health  `json:"health"`
}

// Split allocates income according to rule.
func Split(income float64, rule Rule) (Allocation, error) {
	if err := checkAmount("income", income); err != nil {
		return Allocation{}, err
	}
	if err := rule.Validate(); err != nil {
		return Allocation{}, err
	}
	return Allocation{
		Income:  income,
		Rule:    rule,
		Needs:   income * rule.Needs / 100,
		Wants:   income * rule.Wants / 100,
		Savings: income * rule.Savings / 100,
		Health:  SavingsHealth(rule.Savings),
	}, nil
}

// Breakdown derives the percentage rule implied by actual amounts, each share
// rounded to one decimal.
func Breakdown(needs, wants, savings float64) (Rule, error) {
	for _, a := range []struct {
		name string
		v    float64
	}{{"needs", needs}, {"wants", wants}, {"savings", savings}} {
		if err := checkAmount(a.name, a.v); err != nil {
			return Rule{}, err
		}
	}
	total := needs + wants + savings
	if total == 0 {
		return Rule{}, fmt.Errorf("%w: amounts add up to zero", ErrInvalidAmount)
	}
	return Rule{
		Needs:   round1(needs / total * 100),
		Wants:   round1(wants / total * 100),
		Savings: round1(savings / total * 100),
	}, nil
}

// Health grades a savings share.
type Health int

const (
	Negative Health = iota
	Low
	Moderate
	Adequate
)

var healthNames = [...]string{"negative", "low", "moderate", "adequate"}

func (h Health) String() string {
	if h < Negative || h > Adequate {
		return fmt.Sprintf("Health(%d)", int(h))
	}
	return healthNames[h]
}

// MarshalText renders the health grade by name.
func (h Health) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// Advice returns a one-line recommendation for the grade.
func (h Health) Advice() string {
	switch h {
	case Negative:
		return "You are spending money you should be saving."
	case Low:
		return "Savings are low. Aim for at least 20%."
	case Moderate:
		return "Savings are moderate. A little more helps future goals."
	default:
		return "Savings are on track."
	}
}

// SavingsHealth grades a savings percentage: below 0 is negative, below 10
// low, below 20 moderate, otherwise adequate.
func SavingsHealth(savingsPct float64) Health {
	switch {
	case savingsPct < 0:
		return Negative
	case savingsPct < 10:
		return Low
	case savingsPct < 20:
		return Moderate
	default:
		return Adequate
	}
}

// SavingsRate returns what is left of income after spending, as an amount and
// as a percentage of income. The percentage is 0 when income is 0.
func SavingsRate(income, spending float64) (amount, pct float64) {
	amount = income - spending
	if income > 0 {
		pct = amount / income * 100
	}
	return amount, pct
}

func checkAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidAmount, name, v)
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sortedKeys returns m's keys in ascending order.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
