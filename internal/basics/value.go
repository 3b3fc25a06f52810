package basics

import "fmt"

// Verdict grades a price against what the buyer was willing to pay.
type Verdict int

const (
	Fair          Verdict = iota // price <= willing
	SlightlyAbove                // price <= willing × Tolerance
	Above
)

// Tolerance is how far above the willing amount a price still counts as
// slightly above.
const Tolerance = 1.2

func (v Verdict) String() string {
	switch v {
	case Fair:
		return "fair"
	case SlightlyAbove:
		return "slightly above"
	default:
		return "above"
	}
}

// MarshalText encodes the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Assess compares a price with the amount the buyer would pay.
func Assess(price, willing float64) (Verdict, error) {
	if err := checkAmount("price", price); err != nil {
		return 0, err
	}
	if err := checkAmount("willing to pay", willing); err != nil {
		return 0, err
	}
	switch {
	case price <= willing:
		return Fair, nil
	case price <= willing*Tolerance:
		return SlightlyAbove, nil
	default:
		return Above, nil
	}
}

// ValueCheck is a purchase weighed against its perceived value, rated 1 to 10.
type ValueCheck struct {
	Product string  `json:"product"`
	Price   float64 `json:"price"`
	Willing float64 `json:"willing"`
	Rating  int     `json:"rating"`
}

// Advice returns the verdict on c and a one-line explanation.
func (c ValueCheck) Advice() (Verdict, string, error) {
	if c.Rating < 1 || c.Rating > 10 {
		return 0, "", fmt.Errorf("%w: rating must be between 1 and 10, got %d", ErrInvalidAmount, c.Rating)
	}
	v, err := Assess(c.Price, c.Willing)
	if err != nil {
		return 0, "", err
	}
	name := c.Product
	if name == "" {
		name = "it"
	}
	switch v {
	case Fair:
		return v, fmt.Sprintf("%s is within what you consider fair. Good buy.", name), nil
	case SlightlyAbove:
		return v, fmt.Sprintf("%s costs a little more than you wanted to pay, but may be worth it if its value to you is high (%d/10).", name, c.Rating), nil
	default:
		return v, fmt.Sprintf("%s is above what you are willing to pay. The price may not match the value you give it.", name), nil
	}
}
