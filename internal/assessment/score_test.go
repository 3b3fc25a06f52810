package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_AnswerKeyed(t *testing.T) {
	s := mustStart(t, keyedPool(5, 2), 2)
	n := 0
	s = answerAll(s, func(Item) string {
		n++
		if n%2 == 0 {
			return "wrong"
		}
		return "right"
	})

	r, err := Score(s)
	require.NoError(t, err)
	assert.False(t, r.Weighted)
	assert.Equal(t, 5, r.Correct)
	assert.Equal(t, 10, r.Total)
	assert.Equal(t, 50.0, r.Percentage)
	require.Len(t, r.Answers, 10)
	assert.True(t, r.Answers[0].Correct)
	assert.False(t, r.Answers[1].Correct)
}

func TestScore_Weighted(t *testing.T) {
	s, err := Start(weightedPool(), 1, Seed(5))
	require.NoError(t, err)
	s = answerAll(s, func(it Item) string {
		if it.ID == "w1" {
			return "save" // 2
		}
		return "dangerous" // 1
	})

	r, err := Score(s)
	require.NoError(t, err)
	assert.True(t, r.Weighted)
	assert.Equal(t, 3, r.Points)
	assert.Equal(t, 4, r.MaxPoints)
	assert.Equal(t, 75.0, r.Percentage)
	assert.Equal(t, 1, r.Correct)
}

func TestScore_Bounds(t *testing.T) {
	pools := []Pool{keyedPool(3, 3), weightedPool()}
	picks := []func(Item) string{
		func(it Item) string { return it.Options[0] },
		func(it Item) string { return it.Options[len(it.Options)-1] },
	}
	for _, pool := range pools {
		for _, pick := range picks {
			s, err := Start(pool, 1, nil)
			require.NoError(t, err)
			r, err := Score(answerAll(s, pick))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, r.Percentage, 0.0)
			assert.LessOrEqual(t, r.Percentage, 100.0)
		}
	}
}

func TestScore_InProgress(t *testing.T) {
	s := mustStart(t, keyedPool(2, 2), 1)
	_, err := Score(s)
	assert.ErrorIs(t, err, ErrNotCompleted)

	s, err = s.Submit("right")
	require.NoError(t, err)
	_, err = Score(s)
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestTiers_Classify(t *testing.T) {
	tiers, err := NewTiers(
		Tier{Min: 80, Label: "Master"},
		Tier{Min: 0, Label: "Beginner"},
		Tier{Min: 50, Label: "Balanced"},
	)
	require.NoError(t, err)

	tests := []struct {
		pct  float64
		want string
	}{
		{0, "Beginner"},
		{49.9, "Beginner"},
		{50, "Balanced"},
		{79.99, "Balanced"},
		{80, "Master"},
		{100, "Master"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tiers.Classify(tt.pct).Label, "pct=%v", tt.pct)
	}
}

func TestNewTiers_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		tiers []Tier
	}{
		{"empty", nil},
		{"no zero tier", []Tier{{Min: 10, Label: "a"}}},
		{"duplicate threshold", []Tier{{Min: 0, Label: "a"}, {Min: 50, Label: "b"}, {Min: 50, Label: "c"}}},
		{"above 100", []Tier{{Min: 0, Label: "a"}, {Min: 101, Label: "b"}}},
		{"missing label", []Tier{{Min: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTiers(tt.tiers...)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestResult_ByCategory(t *testing.T) {
	s := mustStart(t, keyedPool(3, 2), 2)
	s = answerAll(s, func(it Item) string {
		if it.Category == "theme-0" {
			return "right"
		}
		return "wrong"
	})
	r, err := Score(s)
	require.NoError(t, err)

	cats := r.ByCategory()
	require.Len(t, cats, 3)
	byName := make(map[string]CategoryScore)
	for _, c := range cats {
		byName[c.Category] = c
		assert.Equal(t, 2, c.Total)
	}
	assert.Equal(t, 100.0, byName["theme-0"].Percentage)
	assert.Equal(t, 0.0, byName["theme-1"].Percentage)
	assert.Equal(t, r.Answers[0].Item.Category, cats[0].Category)
}

func TestResult_ByCategoryWeighted(t *testing.T) {
	s, err := StartAll(weightedPool(), Seed(1))
	require.NoError(t, err)
	s = answerAll(s, func(it Item) string {
		if it.ID == "w1" {
			return "spend" // 1 of 2
		}
		return "a tool" // 2 of 2
	})
	r, err := Score(s)
	require.NoError(t, err)

	for _, c := range r.ByCategory() {
		switch c.Category {
		case "habits":
			assert.Equal(t, 50.0, c.Percentage)
		case "beliefs":
			assert.Equal(t, 100.0, c.Percentage)
		default:
			t.Fatalf("unexpected category %q", c.Category)
		}
	}
}
