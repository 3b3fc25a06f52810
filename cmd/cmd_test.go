package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoscontam/finlab/internal/config"
)

// run executes the command tree with a temporary database and the given
// stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvCurrency, config.EnvSeed, config.EnvAddr} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvDB, filepath.Join(t.TempDir(), "finlab.db"))

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSimulateCmd(t *testing.T) {
	out, err := run(t, "", "simulate", "--initial", "1000", "--rate", "5", "--years", "2",
		"--frequency", "yearly", "--by-year", "--currency", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,102.50")
	assert.Contains(t, out, "Interest earned")
	assert.Contains(t, out, "Year")
}

func TestSimulateCmd_Asset(t *testing.T) {
	out, err := run(t, "", "simulate", "--initial", "100", "--asset", "shares", "--years", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Shares")
	assert.Contains(t, out, "6.0%")
}

func TestSimulateCmd_Invalid(t *testing.T) {
	_, err := run(t, "", "simulate", "--initial", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialCapital")

	_, err = run(t, "", "simulate", "--frequency", "fortnightly")
	require.Error(t, err)
}

func TestContributionCmd(t *testing.T) {
	out, err := run(t, "", "contribution", "--target", "1200", "--years", "1", "--currency", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "$100.00")
}

func TestTargetCmd(t *testing.T) {
	out, err := run(t, "", "target", "--target", "1000", "--contribution", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "10 (monthly)")

	out, err = run(t, "", "target", "--target", "1000000", "--contribution", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "out of reach")
}

func TestInflationCmd(t *testing.T) {
	out, err := run(t, "", "inflation", "--amount", "1000", "--years", "1", "--inflation", "10", "--currency", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,100.00")
}

func TestCompareCmd(t *testing.T) {
	out, err := run(t, "", "compare", "invest", "--contribution", "100", "--rate", "5", "--years", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Keep as cash")
	assert.Contains(t, out, "Difference")

	out, err = run(t, "", "compare", "earlier", "--contribution", "100", "--rate", "5", "--extra-years", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Start 3 years earlier")
}

func TestBudgetCmds(t *testing.T) {
	out, err := run(t, "", "budget", "split", "--income", "2000", "--currency", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "50/30/20")
	assert.Contains(t, out, "$1,000.00")

	out, err = run(t, "", "budget", "split", "--income", "2000", "--needs", "50", "--wants", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "50/45/5")
	assert.Contains(t, out, "wants above 40% of income")

	out, err = run(t, "", "budget", "breakdown", "--needs", "500", "--wants", "300", "--savings", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "50.0%")

	out, err = run(t, "", "budget", "review", "--income", "1000", "--expense", "rent=600", "--expense", "food=500")
	require.NoError(t, err)
	assert.Contains(t, out, "overspending")

	_, err = run(t, "", "budget", "review", "--income", "1000", "--expense", "rent")
	require.Error(t, err)

	out, err = run(t, "", "budget", "rate", "--income", "1000", "--spending", "700")
	require.NoError(t, err)
	assert.Contains(t, out, "30.0%")
	assert.Contains(t, out, "adequate")
}

func TestParseExpenses(t *testing.T) {
	got, err := parseExpenses([]string{"rent=500", " food = 100", "food=50"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"rent": 500, "food": 150}, got)

	_, err = parseExpenses([]string{"=5"})
	assert.Error(t, err)
	_, err = parseExpenses([]string{"rent=abc"})
	assert.Error(t, err)
}

func TestConvertCmd(t *testing.T) {
	out, err := run(t, "", "convert", "100", "--from", "EUR")
	require.NoError(t, err)
	for _, code := range []string{"EUR", "USD", "GBP", "JPY", "CHF"} {
		assert.Contains(t, out, code)
	}

	_, err = run(t, "", "convert", "100", "--to", "XYZ")
	require.Error(t, err)
	_, err = run(t, "", "convert", "abc")
	require.Error(t, err)
}

func TestDiversifyCmd(t *testing.T) {
	args := []string{"diversify", "--seed", "7", "--stocks", "3", "--steps", "50", "--reveal", "20"}
	first, err := run(t, "2\n", args...)
	require.NoError(t, err)
	assert.Contains(t, first, "your pick")
	assert.Contains(t, first, "seed 7")

	second, err := run(t, "", append(args, "--pick", "2")...)
	require.NoError(t, err)
	assert.Equal(t, first[strings.LastIndex(first, "Series"):], second[strings.LastIndex(second, "Series"):])

	_, err = run(t, "", append(args, "--pick", "9")...)
	require.Error(t, err)
}

func TestResolveChoice(t *testing.T) {
	choices := []string{"Stock 1", "Stock 2", "Average"}
	for in, want := range map[string]string{"1": "Stock 1", "a": "Average", "average": "Average", "stock 2": "Stock 2"} {
		got, err := resolveChoice(choices, in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := resolveChoice(choices, "3")
	assert.Error(t, err)
}

func TestMoneyCmds(t *testing.T) {
	out, err := run(t, "", "money", "barter", "--item", "150", "--good", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "about 15.0 of the good")

	_, err = run(t, "", "money", "barter", "--good", "0")
	require.Error(t, err)

	out, err = run(t, "", "money", "save", "--initial", "50", "--monthly", "20", "--months", "12", "--currency", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "After 12 months")
	assert.Contains(t, out, "$290.00")

	out, err = run(t, "", "money", "compare", "--first", "Bike", "--first-price", "200", "--second", "Phone", "--second-price", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Phone costs more than Bike.")

	out, err = run(t, "", "money", "compare", "--first-price", "10", "--second-price", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Both cost the same.")
}

func TestValueCmd(t *testing.T) {
	tests := []struct {
		price, verdict string
	}{
		{"70", "fair"},
		{"90", "slightly above"},
		{"150", "above"},
	}
	for _, tt := range tests {
		out, err := run(t, "", "value", "--price", tt.price, "--willing", "80", "--rating", "7")
		require.NoError(t, err)
		assert.Regexp(t, `Verdict:\s+`+tt.verdict+`\n`, out)
	}

	_, err := run(t, "", "value", "--rating", "11")
	require.Error(t, err)
}

func TestQuizzesAndModules(t *testing.T) {
	out, err := run(t, "", "quizzes")
	require.NoError(t, err)
	assert.Contains(t, out, "budget-basics")
	assert.Contains(t, out, "final")

	out, err = run(t, "", "modules")
	require.NoError(t, err)
	assert.Contains(t, out, "finlab simulate")
}

func TestPlainQuiz_SavesAndShowsHistory(t *testing.T) {
	t.Setenv(config.EnvDB, "")
	db := filepath.Join(t.TempDir(), "quiz.db")

	// Option 1 for every question; blank and out-of-range lines are re-asked.
	stdin := "\n9\n" + strings.Repeat("1\n", 20)
	out, err := run(t, stdin, "quiz", "budget-basics", "--plain", "--seed", "3", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "[1/4]")
	assert.Contains(t, out, "Enter the number of an option.")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Saved as")

	out, err = run(t, "", "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "budget-basics")

	out, err = run(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "budget-basics")

	out, err = run(t, "n\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = run(t, "", "reset", "--yes", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 results.")

	out, err = run(t, "", "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No results yet")
}

func TestPlainQuiz_TryAgain(t *testing.T) {
	db := filepath.Join(t.TempDir(), "again.db")
	stdin := strings.Repeat("1\n", 4) + "y\n" + strings.Repeat("1\n", 4) + "n\n"
	out, err := run(t, stdin, "quiz", "budget-basics", "--plain", "--seed", "3", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "[1/4]"))
	assert.Equal(t, 2, strings.Count(out, "Saved as"))
	assert.Equal(t, 2, strings.Count(out, "Try again?"))

	out, err = run(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "budget-basics")
}

func TestPlainQuiz_Errors(t *testing.T) {
	_, err := run(t, "", "quiz", "--plain")
	require.Error(t, err)

	_, err = run(t, "", "quiz", "nope", "--plain")
	require.Error(t, err)

	// Input ends before the quiz does.
	_, err = run(t, "1\n", "quiz", "budget-basics", "--plain", "--no-save")
	require.Error(t, err)
}

func TestInvalidSettings(t *testing.T) {
	_, err := run(t, "", "version", "--currency", "XYZ")
	require.Error(t, err)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "finlab")
}
