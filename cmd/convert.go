package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/currency"
)

func newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert AMOUNT",
		Short: "Convert an amount between currencies",
		Example: "  finlab convert 100 --from EUR\n" +
			"  finlab convert 2500 --from JPY --to USD",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("amount %q: %w", args[0], err)
			}
			if amount.IsNegative() {
				return fmt.Errorf("amount must be non-negative, got %s", amount)
			}
			if from == "" {
				from = displayCurrency()
			}

			w := cmd.OutOrStdout()
			if to != "" {
				v, err := currency.Convert(amount, from, to)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s = %s\n", currency.FormatDecimal(amount, from), currency.FormatDecimal(v, to))
				return nil
			}

			eq, err := currency.Equivalents(amount, from)
			if err != nil {
				return err
			}
			heading(w, currency.FormatDecimal(amount, from)+" is worth")
			for _, a := range eq {
				fmt.Fprintf(w, "  %-4s %s\n", a.Code, a.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Currency of the amount (defaults to the display currency)")
	cmd.Flags().StringVar(&to, "to", "", "Target currency (omit to list every supported currency)")
	return cmd
}
