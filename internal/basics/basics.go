// Package basics holds the arithmetic of the introductory lessons: what
// money is for, and how a price compares with what something is worth to you.
package basics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAmount is returned for negative or non-finite inputs.
var ErrInvalidAmount = errors.New("invalid amount")

// MaxMonths bounds LinearSavings.
const MaxMonths = 1200

func checkAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidAmount, name, v)
	}
	return nil
}

// BarterRatio returns how many units of a good priced goodPrice are worth
// one item priced itemPrice. goodPrice must be positive.
func BarterRatio(itemPrice, goodPrice float64) (float64, error) {
	if err := checkAmount("item price", itemPrice); err != nil {
		return 0, err
	}
	if err := checkAmount("good price", goodPrice); err != nil {
		return 0, err
	}
	if goodPrice == 0 {
		return 0, fmt.Errorf("%w: good price must be positive", ErrInvalidAmount)
	}
	return itemPrice / goodPrice, nil
}

// LinearSavings is initial + monthly × months, with no interest.
func LinearSavings(initial, monthly float64, months int) (float64, error) {
	if err := checkAmount("initial savings", initial); err != nil {
		return 0, err
	}
	if err := checkAmount("monthly savings", monthly); err != nil {
		return 0, err
	}
	if months < 1 || months > MaxMonths {
		return 0, fmt.Errorf("%w: months must be between 1 and %d, got %d", ErrInvalidAmount, MaxMonths, months)
	}
	return initial + monthly*float64(months), nil
}

// Product is a named price.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PriceComparison orders two products by price.
type PriceComparison struct {
	Dearer  Product `json:"dearer"`
	Cheaper Product `json:"cheaper"`
	Same    bool    `json:"same"`
}

// ComparePrices reports which of a and b costs more. When the prices are
// equal Same is set and Dearer is a.
func ComparePrices(a, b Product) (PriceComparison, error) {
	if err := checkAmount(a.Name+" price", a.Price); err != nil {
		return PriceComparison{}, err
	}
	if err := checkAmount(b.Name+" price", b.Price); err != nil {
		return PriceComparison{}, err
	}
	switch {
	case a.Price == b.Price:
		return PriceComparison{Dearer: a, Cheaper: b, Same: true}, nil
	case a.Price > b.Price:
		return PriceComparison{Dearer: a, Cheaper: b}, nil
	default:
		return PriceComparison{Dearer: b, Cheaper: a}, nil
	}
}
