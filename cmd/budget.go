package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/budget"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

func newBudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budgeting planners",
	}
	cmd.AddCommand(newBudgetSplitCmd(), newBudgetBreakdownCmd(), newBudgetReviewCmd(), newBudgetRateCmd())
	return cmd
}

func newBudgetSplitCmd() *cobra.Command {
	var (
		income              float64
		needs, wants, saves float64
	)
	cmd := &cobra.Command{
		Use:     "split",
		Short:   "Split income with the 50/30/20 rule or your own percentages",
		Example: "  finlab budget split --income 2000\n  finlab budget split --income 2000 --needs 60 --wants 30",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := budget.DefaultRule
			flags := cmd.Flags()
			switch {
			case flags.Changed("savings"):
				rule = budget.Rule{Needs: needs, Wants: wants, Savings: saves}
			case flags.Changed("needs") || flags.Changed("wants"):
				rule = budget.RuleFromSpending(needs, wants)
			}
			alloc, err := budget.Split(income, rule)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			heading(w, fmt.Sprintf("The %g/%g/%g rule", rule.Needs, rule.Wants, rule.Savings))
			field(w, "Income", money(alloc.Income))
			field(w, "Needs", money(alloc.Needs))
			field(w, "Wants", money(alloc.Wants))
			field(w, "Savings", money(alloc.Savings))
			printHealth(cmd, alloc.Health, rule.Warnings())
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&income, "income", 0, "Monthly income")
	flags.Float64Var(&needs, "needs", budget.DefaultRule.Needs, "Percent of income for needs")
	flags.Float64Var(&wants, "wants", budget.DefaultRule.Wants, "Percent of income for wants")
	flags.Float64Var(&saves, "savings", budget.DefaultRule.Savings, "Percent of income saved (defaults to what is left)")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func newBudgetBreakdownCmd() *cobra.Command {
	var needs, wants, saves float64
	cmd := &cobra.Command{
		Use:     "breakdown",
		Short:   "Turn actual spending into percentages and check them against 50/30/20",
		Example: "  finlab budget breakdown --needs 1200 --wants 600 --savings 200",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := budget.Breakdown(needs, wants, saves)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "Your budget")
			fmt.Fprintf(w, "%-10s  %12s  %8s  %8s\n", "", "Amount", "Share", "Target")
			target := budget.DefaultRule
			divider(w, 44)
			fmt.Fprintf(w, "%-10s  %12s  %8s  %8s\n", "Needs", money(needs), percent(rule.Needs), percent(target.Needs))
			fmt.Fprintf(w, "%-10s  %12s  %8s  %8s\n", "Wants", money(wants), percent(rule.Wants), percent(target.Wants))
			fmt.Fprintf(w, "%-10s  %12s  %8s  %8s\n", "Savings", money(saves), percent(rule.Savings), percent(target.Savings))
			printHealth(cmd, budget.SavingsHealth(rule.Savings), rule.Warnings())
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&needs, "needs", 0, "Amount spent on needs")
	flags.Float64Var(&wants, "wants", 0, "Amount spent on wants")
	flags.Float64Var(&saves, "savings", 0, "Amount saved")
	return cmd
}

func newBudgetReviewCmd() *cobra.Command {
	var (
		income   float64
		expenses []string
	)
	cmd := &cobra.Command{
		Use:     "review",
		Short:   "Compare a month's income with its expenses",
		Example: "  finlab budget review --income 1800 --expense rent=800 --expense food=350 --expense fun=200",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseExpenses(expenses)
			if err != nil {
				return err
			}
			review, err := budget.Assess(income, parsed)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			heading(w, "Monthly review")
			fmt.Fprintf(w, "%-20s  %12s  %7s\n", "Category", "Amount", "Share")
			divider(w, 43)
			for _, e := range review.Categories {
				fmt.Fprintf(w, "%-20s  %12s  %7s\n", e.Category, money(e.Amount), percent(e.Share))
			}
			fmt.Fprintln(w)
			field(w, "Income", money(review.Income))
			field(w, "Expenses", money(review.Expenses))
			field(w, "Balance", signedMoney(review.Balance))
			field(w, "Spending ratio", percent(review.SpendingRatio*100))
			style := theme.Gain
			if review.Verdict != budget.Healthy {
				style = theme.Loss
			}
			field(w, "Verdict", style.Render(review.Verdict.String()))
			return nil
		},
	}
	cmd.Flags().Float64Var(&income, "income", 0, "Monthly income")
	cmd.Flags().StringArrayVar(&expenses, "expense", nil, "Expense as category=amount (repeatable)")
	return cmd
}

// parseExpenses reads category=amount pairs. Repeated categories add up.
func parseExpenses(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("expense %q: want category=amount", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("expense %q: %w", pair, err)
		}
		out[name] += v
	}
	return out, nil
}

func newBudgetRateCmd() *cobra.Command {
	var income, spending float64
	cmd := &cobra.Command{
		Use:     "rate",
		Short:   "Savings rate: what is left of income after spending",
		Example: "  finlab budget rate --income 3000 --spending 2400",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if income < 0 || spending < 0 {
				return fmt.Errorf("%w: income and spending must be non-negative", budget.ErrInvalidAmount)
			}
			amount, pct := budget.SavingsRate(income, spending)
			w := cmd.OutOrStdout()
			heading(w, "Savings rate")
			field(w, "Saved", signedMoney(amount))
			field(w, "Rate", percent(pct))
			printHealth(cmd, budget.SavingsHealth(pct), nil)
			return nil
		},
	}
	cmd.Flags().Float64Var(&income, "income", 0, "Monthly income")
	cmd.Flags().Float64Var(&spending, "spending", 0, "Monthly spending")
	return cmd
}

func printHealth(cmd *cobra.Command, h budget.Health, warnings []budget.Warning) {
	w := cmd.OutOrStdout()
	style := theme.Gain
	if h != budget.Adequate {
		style = theme.Loss
	}
	field(w, "Savings health", style.Render(h.String()))
	fmt.Fprintln(w, theme.Hint.Render(h.Advice()))
	for _, warn := range warnings {
		fmt.Fprintln(w, theme.Loss.Render("! "+string(warn)))
	}
}
