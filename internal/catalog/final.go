package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/todoscontam/finlab/internal/assessment"
	"github.com/todoscontam/finlab/internal/currency"
	"github.com/todoscontam/finlab/internal/growth"
)

// FinalQuizID is the catalog ID of the generated final quiz.
const FinalQuizID = "final"

const finalCategory = "Final"

// finalInputs are the randomized figures the final quiz asks about. Rates
// are whole percentages.
type finalInputs struct {
	Capital   float64
	Rate      int
	Years     int
	Inflation int
	Return    int
}

func drawFinalInputs(rng *rand.Rand) finalInputs {
	pick := func(xs ...int) int { return xs[rng.IntN(len(xs))] }
	return finalInputs{
		Capital:   float64(1000 + rng.IntN(4001)),
		Rate:      pick(3, 5, 7),
		Years:     pick(3, 5, 10),
		Inflation: pick(2, 3, 4),
		Return:    pick(6, 8, 10),
	}
}

// FinalQuiz builds the course's closing quiz. Its figures are drawn from
// seed and the numeric answers come from the growth simulator, so the same
// seed always produces the same quiz.
func FinalQuiz(seed uint64) (Quiz, error) {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	return buildFinalQuiz(drawFinalInputs(rng), rng)
}

func buildFinalQuiz(in finalInputs, rng *rand.Rand) (Quiz, error) {
	compound, err := growth.Simulate(growth.Params{
		InitialCapital: in.Capital,
		AnnualRate:     float64(in.Rate) / 100,
		PeriodsPerYear: growth.Yearly,
		HorizonYears:   float64(in.Years),
	})
	if err != nil {
		return Quiz{}, err
	}
	mattress, err := growth.Simulate(growth.Params{
		InitialCapital:  1000,
		AnnualInflation: float64(in.Inflation) / 100,
		PeriodsPerYear:  growth.Yearly,
		HorizonYears:    5,
	})
	if err != nil {
		return Quiz{}, err
	}

	money := func(v float64) string { return currency.Format(v, currency.Base) }
	grown := compound.Last().Nominal
	linear := in.Capital * (1 + float64(in.Rate*in.Years)/100)
	power := mattress.Last().Real
	exactReal := ((1+float64(in.Return)/100)/(1+float64(in.Inflation)/100) - 1) * 100

	specs := []struct {
		prompt      string
		options     []string
		answer      string
		explanation string
	}{
		{
			prompt: fmt.Sprintf("You invest %s at %d%% a year for %d years. What happens to your money?",
				money(in.Capital), in.Rate, in.Years),
			options: []string{
				fmt.Sprintf("It grows to about %s, earning interest on interest", money(grown)),
				fmt.Sprintf("It grows to about %s, the same amount every year", money(linear)),
				"It loses value over time",
				"It stays the same",
			},
			answer: fmt.Sprintf("It grows to about %s, earning interest on interest", money(grown)),
			explanation: fmt.Sprintf("Compound growth adds each year's interest to the balance: %s becomes %s, not %s.",
				money(in.Capital), money(grown), money(linear)),
		},
		{
			prompt: fmt.Sprintf("Inflation averages %d%% a year. You keep %s under the mattress. "+
				"What is it worth in purchasing power five years from now?", in.Inflation, money(1000)),
			options: []string{
				fmt.Sprintf("More than %s", money(1000)),
				"About the same",
				fmt.Sprintf("Less, about %s", money(power)),
				"It depends on the bank's interest rate",
			},
			answer:      fmt.Sprintf("Less, about %s", money(power)),
			explanation: "Idle cash keeps its face value but buys less every year prices rise.",
		},
		{
			prompt: "Which option best describes the 50/30/20 rule?",
			options: []string{
				"50% leisure, 30% savings, 20% needs",
				"50% needs, 30% wants, 20% savings or investment",
				"30% needs, 50% wants, 20% investment",
				"20% needs, 30% wants, 50% savings",
			},
			answer:      "50% needs, 30% wants, 20% savings or investment",
			explanation: "Half of income covers needs, under a third goes to wants and a fifth is saved.",
		},
		{
			prompt: "Having an emergency fund means",
			options: []string{
				"Keeping money aside for holidays",
				"Investing in high-risk shares",
				"Having enough savings to cover 3 to 6 months of expenses",
				"Taking out a loan when an emergency happens",
			},
			answer:      "Having enough savings to cover 3 to 6 months of expenses",
			explanation: "An emergency fund covers essential expenses for several months without borrowing.",
		},
		{
			prompt: fmt.Sprintf("Inflation is %d%% and your investment returns %d%%. Your real gain is roughly",
				in.Inflation, in.Return),
			options: []string{
				fmt.Sprintf("%d%%", in.Return-in.Inflation),
				fmt.Sprintf("%d%%", in.Return+in.Inflation),
				fmt.Sprintf("%d%%", in.Inflation-in.Return),
				"It depends on the amount invested",
			},
			answer: fmt.Sprintf("%d%%", in.Return-in.Inflation),
			explanation: fmt.Sprintf("Real return is roughly the nominal return minus inflation. Precisely it is %.2f%%.",
				exactReal),
		},
		{
			prompt: "Which attitude shows financial intelligence?",
			options: []string{
				"Spending the whole salary, as long as there is no debt",
				"Keeping a budget and investing regularly",
				"Avoiding every kind of risk",
				"Waiting to earn a lot before starting to save",
			},
			answer:      "Keeping a budget and investing regularly",
			explanation: "Planning and consistency build wealth over time.",
		},
	}

	items := make([]assessment.Item, 0, len(specs))
	for i, s := range specs {
		opts := append([]string(nil), s.options...)
		rng.Shuffle(len(opts), func(a, b int) { opts[a], opts[b] = opts[b], opts[a] })
		items = append(items, assessment.Item{
			ID:          fmt.Sprintf("%s-%d", FinalQuizID, i+1),
			Category:    finalCategory,
			Prompt:      s.prompt,
			Options:     opts,
			Answer:      s.answer,
			Explanation: s.explanation,
		})
	}

	pool, err := assessment.NewPool(items...)
	if err != nil {
		return Quiz{}, err
	}
	tiers, err := assessment.NewTiers(
		assessment.Tier{Min: 0, Label: "Financial beginner",
			Message: "You are off to a good start. Keep exploring basics like budgeting and compound interest."},
		assessment.Tier{Min: 50, Label: "Balanced learner",
			Message: "You have good notions already. Inflation and real returns are worth another look."},
		assessment.Tier{Min: 80, Label: "Money master",
			Message: "Excellent. You show a solid, mature view of money and investing."},
	)
	if err != nil {
		return Quiz{}, err
	}

	return Quiz{
		ID:          FinalQuizID,
		Title:       "Final quiz",
		Description: "Test everything you learned, from compound interest to budgeting and a balanced money mindset.",
		Chapter:     "review",
		DrawAll:     true,
		Generated:   true,
		Tiers:       tiers,
		Pool:        pool,
	}, nil
}
