// Package currency converts and formats amounts across a small fixed table
// of currencies quoted against the euro.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency is returned for a code missing from the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// Base is the currency every rate is quoted against.
const Base = "EUR"

// codes keeps the display order of the rate table.
var codes = []string{"EUR", "USD", "GBP", "JPY", "CHF"}

// perEuro is how many units of each currency one euro buys.
var perEuro = map[string]decimal.Decimal{
	"EUR": decimal.NewFromInt(1),
	"USD": decimal.RequireFromString("1.10"),
	"GBP": decimal.RequireFromString("0.88"),
	"JPY": decimal.NewFromInt(145),
	"CHF": decimal.RequireFromString("0.97"),
}

// Amount is a value in one currency.
type Amount struct {
	Code  string          `json:"code"`
	Value decimal.Decimal `json:"value"`
}

// String formats the amount with the currency's symbol.
func (a Amount) String() string { return FormatDecimal(a.Value, a.Code) }

// Codes returns the supported currency codes in display order.
func Codes() []string {
	return append([]string(nil), codes...)
}

// Rate returns how many units of code one euro buys.
func Rate(code string) (decimal.Decimal, error) {
	code = normalize(code)
	r, ok := perEuro[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return r, nil
}

// Supported reports whether code is in the rate table.
func Supported(code string) bool {
	_, ok := perEuro[normalize(code)]
	return ok
}

// Convert converts amount from one currency to another through the euro.
// The result is not rounded.
func Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, err := Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	if normalize(from) == normalize(to) {
		return amount, nil
	}
	return amount.Div(fromRate).Mul(toRate), nil
}

// Equivalents converts amount into every supported currency, rounded to each
// currency's minor unit.
func Equivalents(amount decimal.Decimal, from string) ([]Amount, error) {
	if _, err := Rate(from); err != nil {
		return nil, err
	}
	out := make([]Amount, 0, len(codes))
	for _, code := range codes {
		v, err := Convert(amount, from, code)
		if err != nil {
			return nil, err
		}
		out = append(out, Amount{Code: code, Value: Round(v, code)})
	}
	return out, nil
}

// Round rounds v to the minor unit of code (cents for most, whole yen).
func Round(v decimal.Decimal, code string) decimal.Decimal {
	return v.Round(fraction(code))
}

// Format renders a float amount with the currency's symbol and separators.
func Format(amount float64, code string) string {
	return FormatDecimal(decimal.NewFromFloat(amount), code)
}

// FormatDecimal renders amount with the currency's symbol and separators.
// Codes unknown to the formatter fall back to "1234.56 XYZ".
func FormatDecimal(amount decimal.Decimal, code string) string {
	code = normalize(code)
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func fraction(code string) int32 {
	if cur := money.GetCurrency(normalize(code)); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
