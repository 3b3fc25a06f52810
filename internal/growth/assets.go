package growth

import (
	"fmt"
	"strings"
)

// Asset is an investment class with its typical long-run annual return.
type Asset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AnnualReturn float64 `json:"annual_return"`
	Risk         string  `json:"risk"`
}

var assets = []Asset{
	{ID: "savings", Name: "Savings account", AnnualReturn: 0.015, Risk: "very low"},
	{ID: "bonds", Name: "Bonds", AnnualReturn: 0.025, Risk: "low"},
	{ID: "mixed", Name: "Mixed funds", AnnualReturn: 0.04, Risk: "medium"},
	{ID: "shares", Name: "Shares", AnnualReturn: 0.06, Risk: "high"},
	{ID: "property", Name: "Property", AnnualReturn: 0.05, Risk: "medium"},
}

// Assets returns the reference asset classes.
func Assets() []Asset {
	return append([]Asset(nil), assets...)
}

// LookupAsset finds an asset class by ID, case-insensitively.
func LookupAsset(id string) (Asset, error) {
	for _, a := range assets {
		if strings.EqualFold(a.ID, id) {
			return a, nil
		}
	}
	return Asset{}, invalid("asset", "unknown asset class %q", id)
}

func (a Asset) String() string {
	return fmt.Sprintf("%s (%.1f%%/yr, %s risk)", a.Name, a.AnnualReturn*100, a.Risk)
}
