package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/basics"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

func newMoneyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "What money is for: trading, saving and comparing",
	}
	cmd.AddCommand(newBarterCmd(), newSaveCmd(), newPricesCmd())
	return cmd
}

func newBarterCmd() *cobra.Command {
	var item, good float64
	cmd := &cobra.Command{
		Use:     "barter",
		Short:   "How many chickens is a bike worth?",
		Example: "  finlab money barter --item 150 --good 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := basics.BarterRatio(item, good)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "Trading without money")
			field(w, "Item price", money(item))
			field(w, "Good price", money(good))
			fmt.Fprintln(w, theme.Gain.Render(fmt.Sprintf("You would need about %.1f of the good to get one item.", ratio)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&item, "item", 150, "Price of what you want (a bike)")
	cmd.Flags().Float64Var(&good, "good", 10, "Price of what you trade (a chicken)")
	return cmd
}

func newSaveCmd() *cobra.Command {
	var (
		initial, monthly float64
		months           int
	)
	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Put money aside every month",
		Example: "  finlab money save --initial 50 --monthly 20 --months 12",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := basics.LinearSavings(initial, monthly, months)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "Storing value")
			field(w, fmt.Sprintf("After %d months", months), theme.Gain.Render(money(total)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&initial, "initial", 50, "Savings you start with")
	cmd.Flags().Float64Var(&monthly, "monthly", 20, "Amount saved each month")
	cmd.Flags().IntVar(&months, "months", 12, "Number of months")
	return cmd
}

func newPricesCmd() *cobra.Command {
	var a, b basics.Product
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare the prices of two products",
		Example: `  finlab money compare --first Bike --first-price 200 --second Phone --second-price 300`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := basics.ComparePrices(a, b)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "Measuring value")
			field(w, a.Name, money(a.Price))
			field(w, b.Name, money(b.Price))
			if c.Same {
				fmt.Fprintln(w, "Both cost the same.")
				return nil
			}
			fmt.Fprintf(w, "%s costs more than %s.\n", c.Dearer.Name, c.Cheaper.Name)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&a.Name, "first", "Bike", "First product")
	flags.Float64Var(&a.Price, "first-price", 200, "Price of the first product")
	flags.StringVar(&b.Name, "second", "Phone", "Second product")
	flags.Float64Var(&b.Price, "second-price", 300, "Price of the second product")
	return cmd
}

func newValueCmd() *cobra.Command {
	var check basics.ValueCheck
	cmd := &cobra.Command{
		Use:     "value",
		Short:   "Is the price worth it to you?",
		Example: "  finlab value --product Bike --price 100 --willing 80 --rating 7",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verdict, advice, err := check.Advice()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "Price vs value")
			field(w, "Product", check.Product)
			field(w, "Price", money(check.Price))
			field(w, "Willing to pay", money(check.Willing))
			field(w, "Value to you", fmt.Sprintf("%d/10", check.Rating))
			field(w, "Verdict", verdict.String())

			style := theme.Gain
			switch verdict {
			case basics.SlightlyAbove:
				style = theme.Hint
			case basics.Above:
				style = theme.Loss
			}
			fmt.Fprintln(w, style.Render(advice))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&check.Product, "product", "Bike", "What you want to buy")
	flags.Float64Var(&check.Price, "price", 100, "Its price")
	flags.Float64Var(&check.Willing, "willing", 80, "What you would be willing to pay")
	flags.IntVar(&check.Rating, "rating", 5, "How much it is worth to you, 1 to 10")
	return cmd
}
