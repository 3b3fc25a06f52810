package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/diversify"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

func newDiversifyCmd() *cobra.Command {
	var (
		cfg  = diversify.DefaultConfig()
		pick string
	)
	cmd := &cobra.Command{
		Use:   "diversify",
		Short: "Pick one stock or hold them all, then see how it played out",
		Long: "Shows how several random stocks performed so far and asks you to pick one,\n" +
			"or the average of all of them. The rest of the run is then revealed.",
		Example: "  finlab diversify\n  finlab diversify --pick average --seed 7",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := rand.Uint64()
			if settings.Seed != nil {
				seed = *settings.Seed
			}
			res, err := diversify.Simulate(cfg, seed)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			heading(w, "Diversification")
			fmt.Fprintf(w, "%-4s  %-10s  %10s  %10s  %8s\n", "#", "Series", "Start", "Now", "Change")
			divider(w, 50)
			for i, s := range res.Revealed() {
				start, now := s.Prices[0], s.Prices[len(s.Prices)-1]
				fmt.Fprintf(w, "%-4s  %-10s  %10.2f  %10.2f  %8s\n",
					choiceKey(i, s.Name), s.Name, start, now, percent((now/start-1)*100))
			}

			if pick == "" {
				fmt.Fprintf(w, "\nInvest %s in which one? ", money(cfg.Investment))
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read choice: %w", err)
				}
				pick = line
			}
			choice, err := resolveChoice(res.Choices(), pick)
			if err != nil {
				return err
			}

			fmt.Fprintln(w)
			fmt.Fprintf(w, "%-10s  %12s  %12s\n", "Series", "Value", "Gain")
			divider(w, 38)
			for _, o := range res.Outcomes() {
				line := fmt.Sprintf("%-10s  %12s  %12s", o.Choice, money(o.Value), signedMoney(o.Gain))
				if o.Choice == choice {
					line = theme.Selected.Render(line + "  ◀ your pick")
				}
				fmt.Fprintln(w, line)
			}
			fmt.Fprintf(w, "\nseed %d\n", seed)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.Stocks, "stocks", cfg.Stocks, "Number of stocks")
	flags.IntVar(&cfg.Steps, "steps", cfg.Steps, "Price steps in the whole run")
	flags.IntVar(&cfg.Reveal, "reveal", cfg.Reveal, "Steps shown before the pick")
	flags.Float64Var(&cfg.UpProb, "up-prob", cfg.UpProb, "Probability of an up move per step")
	flags.Float64Var(&cfg.Investment, "investment", cfg.Investment, "Amount invested at the pick")
	flags.StringVar(&pick, "pick", "", "Choice without prompting: a stock number, its name, or 'average'")
	return cmd
}

func choiceKey(i int, name string) string {
	if name == diversify.AverageName {
		return "A"
	}
	return strconv.Itoa(i + 1)
}

// resolveChoice maps a typed answer onto a series name: a 1-based stock
// number, "a"/"average", or the series name itself.
func resolveChoice(choices []string, input string) (string, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "a") || strings.EqualFold(input, diversify.AverageName) {
		return diversify.AverageName, nil
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n < len(choices) {
		return choices[n-1], nil
	}
	for _, c := range choices {
		if strings.EqualFold(c, input) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", diversify.ErrUnknownChoice, input)
}
