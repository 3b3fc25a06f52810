package budget

import (
	"fmt"
	"sort"
)

// Verdict summarizes how a month's spending compares to income.
type Verdict int

const (
	Healthy Verdict = iota
	Tight
	Critical
	Overspending
)

var verdictNames = [...]string{"healthy", "tight", "critical", "overspending"}

func (v Verdict) String() string {
	if v < Healthy || v > Overspending {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// MarshalText renders the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Expense is one spending category and its share of total expenses.
type Expense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Share    float64 `json:"share"`
}

// Review is the outcome of comparing income with categorized expenses.
type Review struct {
	Income        float64   `json:"income"`
	Expenses      float64   `json:"expenses"`
	Balance       float64   `json:"balance"`
	SpendingRatio float64   `json:"spending_ratio"`
	Verdict       Verdict   `json:"verdict"`
	Categories    []Expense `json:"categories"`
}

// Assess reviews a month: balance is income minus the summed expenses and the
// spending ratio is expenses over income (1 when there is no income).
// Categories are ordered by amount, largest first.
func Assess(income float64, expenses map[string]float64) (Review, error) {
	if err := checkAmount("income", income); err != nil {
		return Review{}, err
	}

	total := 0.0
	for _, k := range sortedKeys(expenses) {
		if err := checkAmount(k, expenses[k]); err != nil {
			return Review{}, err
		}
		total += expenses[k]
	}

	r := Review{
		Income:        income,
		Expenses:      total,
		Balance:       income - total,
		SpendingRatio: 1,
	}
	if income > 0 {
		r.SpendingRatio = total / income
	}
	r.Verdict = verdict(r.Balance, r.SpendingRatio)

	for _, k := range sortedKeys(expenses) {
		e := Expense{Category: k, Amount: expenses[k]}
		if total > 0 {
			e.Share = expenses[k] / total * 100
		}
		r.Categories = append(r.Categories, e)
	}
	sort.SliceStable(r.Categories, func(i, j int) bool {
		return r.Categories[i].Amount > r.Categories[j].Amount
	})
	return r, nil
}

func verdict(balance, ratio float64) Verdict {
	switch {
	case balance < 0:
		return Overspending
	case ratio > 0.9:
		return Critical
	case ratio > 0.8:
		return Tight
	default:
		return Healthy
	}
}
