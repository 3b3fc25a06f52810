package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssess_Verdicts(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expenses map[string]float64
		want     Verdict
	}{
		{"overspending", 100, map[string]float64{"food": 80, "fun": 40}, Overspending},
		{"critical above 90%", 100, map[string]float64{"food": 95}, Critical},
		{"exactly spent is critical", 100, map[string]float64{"food": 100}, Critical},
		{"tight above 80%", 100, map[string]float64{"food": 85}, Tight},
		{"80% is healthy", 100, map[string]float64{"food": 80}, Healthy},
		{"no expenses", 120, nil, Healthy},
		{"no income", 0, map[string]float64{"food": 0}, Critical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Assess(tt.income, tt.expenses)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Verdict)
		})
	}
}

func TestAssess_Totals(t *testing.T) {
	r, err := Assess(120, map[string]float64{
		"transport": 10,
		"food":      40,
		"leisure":   30,
	})
	require.NoError(t, err)

	assert.InDelta(t, 80, r.Expenses, 1e-9)
	assert.InDelta(t, 40, r.Balance, 1e-9)
	assert.InDelta(t, 80.0/120.0, r.SpendingRatio, 1e-9)
	require.Len(t, r.Categories, 3)
	assert.Equal(t, "food", r.Categories[0].Category)
	assert.InDelta(t, 50, r.Categories[0].Share, 1e-9)
	assert.Equal(t, "transport", r.Categories[2].Category)
}

func TestAssess_NegativeExpense(t *testing.T) {
	_, err := Assess(100, map[string]float64{"refund": -5})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "overspending", Overspending.String())
	assert.Equal(t, "Verdict(9)", Verdict(9).String())
}
