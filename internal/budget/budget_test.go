package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_DefaultRule(t *testing.T) {
	a, err := Split(1000, DefaultRule)
	require.NoError(t, err)
	assert.InDelta(t, 500, a.Needs, 1e-9)
	assert.InDelta(t, 300, a.Wants, 1e-9)
	assert.InDelta(t, 200, a.Savings, 1e-9)
	assert.Equal(t, Adequate, a.Health)
}

func TestSplit_Invalid(t *testing.T) {
	_, err := Split(1000, Rule{Needs: 50, Wants: 30, Savings: 10})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = Split(1000, Rule{Needs: 80, Wants: 30, Savings: -10})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = Split(-1, DefaultRule)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRuleFromSpending(t *testing.T) {
	r := RuleFromSpending(60, 30)
	assert.InDelta(t, 10, r.Savings, 1e-9)
	require.NoError(t, r.Validate())

	over := RuleFromSpending(70, 40)
	assert.InDelta(t, -10, over.Savings, 1e-9)
	assert.ErrorIs(t, over.Validate(), ErrInvalidRule)
	assert.Equal(t, Negative, SavingsHealth(over.Savings))
}

func TestRule_Warnings(t *testing.T) {
	assert.Empty(t, DefaultRule.Warnings())
	assert.Equal(t, []Warning{WantsHeavy}, Rule{Needs: 40, Wants: 45, Savings: 15}.Warnings())
	assert.Equal(t, []Warning{NeedsHeavy}, Rule{Needs: 65, Wants: 25, Savings: 10}.Warnings())
}

func TestSavingsHealth(t *testing.T) {
	tests := []struct {
		pct  float64
		want Health
	}{
		{-5, Negative},
		{0, Low},
		{9.9, Low},
		{10, Moderate},
		{19.9, Moderate},
		{20, Adequate},
		{55, Adequate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SavingsHealth(tt.pct), "pct %v", tt.pct)
	}
	assert.Equal(t, "moderate", Moderate.String())
	assert.NotEmpty(t, Low.Advice())
}

func TestBreakdown(t *testing.T) {
	r, err := Breakdown(600, 250, 150)
	require.NoError(t, err)
	assert.Equal(t, Rule{Needs: 60, Wants: 25, Savings: 15}, r)

	r, err = Breakdown(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 33.3, r.Needs)

	_, err = Breakdown(0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSavingsRate(t *testing.T) {
	amount, pct := SavingsRate(1500, 1200)
	assert.InDelta(t, 300, amount, 1e-9)
	assert.InDelta(t, 20, pct, 1e-9)

	amount, pct = SavingsRate(0, 50)
	assert.InDelta(t, -50, amount, 1e-9)
	assert.Zero(t, pct)
}
