package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/growth"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

// planFlags are the inputs shared by the growth commands. Rates on the
// command line are percentages.
type planFlags struct {
	initial      float64
	contribution float64
	rate         float64
	inflation    float64
	years        float64
	frequency    string
	asset        string
}

func (f *planFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&f.initial, "initial", 0, "Initial capital")
	flags.Float64Var(&f.contribution, "contribution", 0, "Contribution paid every period")
	flags.Float64Var(&f.rate, "rate", 0, "Annual interest rate in percent")
	flags.Float64Var(&f.inflation, "inflation", 0, "Annual inflation in percent")
	flags.Float64Var(&f.years, "years", 10, "Horizon in years")
	flags.StringVar(&f.frequency, "frequency", "monthly", "Periods per year: yearly, monthly, weekly or a number")
	flags.StringVar(&f.asset, "asset", "", "Use an asset class's typical return as the rate (see 'finlab assets')")
}

// annualRate resolves --rate and --asset into a decimal fraction. An explicit
// --rate wins over --asset.
func (f *planFlags) annualRate(cmd *cobra.Command) (float64, *growth.Asset, error) {
	if f.asset == "" || cmd.Flags().Changed("rate") {
		return f.rate / 100, nil, nil
	}
	a, err := growth.LookupAsset(f.asset)
	if err != nil {
		return 0, nil, err
	}
	return a.AnnualReturn, &a, nil
}

func (f *planFlags) params(cmd *cobra.Command) (growth.Params, *growth.Asset, error) {
	ppy, err := growth.ParseFrequency(f.frequency)
	if err != nil {
		return growth.Params{}, nil, err
	}
	rate, asset, err := f.annualRate(cmd)
	if err != nil {
		return growth.Params{}, nil, err
	}
	return growth.Params{
		InitialCapital:       f.initial,
		PeriodicContribution: f.contribution,
		AnnualRate:           rate,
		AnnualInflation:      f.inflation / 100,
		PeriodsPerYear:       ppy,
		HorizonYears:         f.years,
	}, asset, nil
}

func newSimulateCmd() *cobra.Command {
	var (
		plan   planFlags
		byYear bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project a balance with compound interest and contributions",
		Example: "  finlab simulate --initial 1000 --contribution 100 --rate 5 --years 10\n" +
			"  finlab simulate --contribution 50 --asset shares --years 30 --by-year",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, asset, err := plan.params(cmd)
			if err != nil {
				return err
			}
			series, err := growth.Simulate(p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			heading(w, "Compound interest")
			if asset != nil {
				field(w, "Asset", asset.String())
			}
			final := series.Last()
			contributed := p.InitialCapital + p.PeriodicContribution*float64(series.Len())
			field(w, "Annual rate", percent(p.AnnualRate*100))
			field(w, "Periods", fmt.Sprintf("%d (%s)", series.Len(), growth.FrequencyName(p.PeriodsPerYear)))
			field(w, "Contributed", money(contributed))
			field(w, "Interest earned", signedMoney(final.Nominal-contributed))
			field(w, "Final balance", theme.Gain.Render(money(final.Nominal)))
			if p.AnnualInflation > 0 {
				field(w, "In today's money", money(final.Real))
			}

			if byYear {
				fmt.Fprintln(w)
				fmt.Fprintf(w, "%5s  %16s  %16s  %16s\n", "Year", "Contributions", "Interest", "Balance")
				divider(w, 59)
				for _, y := range growth.InterestByYear(p, series) {
					fmt.Fprintf(w, "%5d  %16s  %16s  %16s\n",
						y.Year, money(y.Contributions), money(y.Interest), money(y.EndBalance))
				}
			}
			return nil
		},
	}
	plan.register(cmd)
	cmd.Flags().BoolVar(&byYear, "by-year", false, "Show interest earned each year")
	return cmd
}

func newContributionCmd() *cobra.Command {
	var (
		target    float64
		years     float64
		rate      float64
		frequency string
		asset     string
	)
	cmd := &cobra.Command{
		Use:     "contribution",
		Short:   "How much to save each period to reach a target",
		Example: "  finlab contribution --target 10000 --years 5 --rate 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := planFlags{rate: rate, asset: asset, frequency: frequency}
			ppy, err := growth.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			annual, _, err := plan.annualRate(cmd)
			if err != nil {
				return err
			}
			c, err := growth.RequiredContribution(target, years, annual, ppy)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			heading(w, "Required saving")
			field(w, "Target", money(target))
			field(w, "Horizon", fmt.Sprintf("%g years", years))
			field(w, "Annual rate", percent(annual*100))
			field(w, "Save each period", theme.Gain.Render(money(c))+" "+growth.FrequencyName(ppy))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&target, "target", 0, "Amount to reach")
	flags.Float64Var(&years, "years", 5, "Horizon in years")
	flags.Float64Var(&rate, "rate", 0, "Annual interest rate in percent")
	flags.StringVar(&frequency, "frequency", "monthly", "Periods per year: yearly, monthly, weekly or a number")
	flags.StringVar(&asset, "asset", "", "Use an asset class's typical return as the rate")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newTargetCmd() *cobra.Command {
	var (
		plan   planFlags
		target float64
	)
	cmd := &cobra.Command{
		Use:     "target",
		Short:   "How long until savings reach a target",
		Example: "  finlab target --target 5000 --contribution 200 --rate 2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := plan.params(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "Savings challenge")
			n, err := growth.PeriodsToTargetFrom(p.InitialCapital, target, p.PeriodicContribution, p.AnnualRate, p.PeriodsPerYear)
			if errors.Is(err, growth.ErrTargetUnreachable) {
				fmt.Fprintf(w, "%s is out of reach within %d periods. Save more each period or raise the rate.\n",
					money(target), growth.MaxPeriods)
				return nil
			}
			if err != nil {
				return err
			}
			years, rest := growth.SplitPeriods(n, p.PeriodsPerYear)
			field(w, "Target", money(target))
			field(w, "Periods needed", fmt.Sprintf("%d (%s)", n, growth.FrequencyName(p.PeriodsPerYear)))
			field(w, "That is", fmt.Sprintf("%d years and %d periods", years, rest))
			return nil
		},
	}
	plan.register(cmd)
	cmd.Flags().Float64Var(&target, "target", 0, "Amount to reach")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newInflationCmd() *cobra.Command {
	var (
		amount    float64
		years     float64
		inflation float64
		frequency string
	)
	cmd := &cobra.Command{
		Use:     "inflation",
		Short:   "What a purchase will cost later and how much to set aside for it",
		Example: "  finlab inflation --amount 1000 --years 5 --inflation 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ppy, err := growth.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			c, future, err := growth.InflationAdjustedContribution(amount, years, inflation/100, ppy)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "Inflation")
			field(w, "Costs today", money(amount))
			field(w, fmt.Sprintf("Costs in %g years", years), theme.Loss.Render(money(future)))
			field(w, "Save each period", money(c)+" "+growth.FrequencyName(ppy))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&amount, "amount", 0, "Price today")
	flags.Float64Var(&years, "years", 5, "Years until the purchase")
	flags.Float64Var(&inflation, "inflation", 2, "Annual inflation in percent")
	flags.StringVar(&frequency, "frequency", "monthly", "Periods per year: yearly, monthly, weekly or a number")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two versions of a savings plan",
	}

	var earlierPlan planFlags
	var extra float64
	earlier := &cobra.Command{
		Use:     "earlier",
		Short:   "Starting earlier against starting now",
		Example: "  finlab compare earlier --contribution 100 --rate 5 --years 20 --extra-years 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := earlierPlan.params(cmd)
			if err != nil {
				return err
			}
			c, err := growth.StartEarlier(p, extra)
			if err != nil {
				return err
			}
			printComparison(cmd, "Time is money",
				fmt.Sprintf("Start now (%g years)", p.HorizonYears),
				fmt.Sprintf("Start %g years earlier", extra), c)
			return nil
		},
	}
	earlierPlan.register(earlier)
	earlier.Flags().Float64Var(&extra, "extra-years", 5, "How many years earlier the second plan starts")

	var investPlan planFlags
	invest := &cobra.Command{
		Use:     "invest",
		Short:   "Keeping cash against investing it",
		Example: "  finlab compare invest --initial 10000 --asset shares --inflation 2 --years 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := investPlan.params(cmd)
			if err != nil {
				return err
			}
			c, err := growth.KeepVersusInvest(p)
			if err != nil {
				return err
			}
			printComparison(cmd, "Investing against inflation", "Keep as cash",
				fmt.Sprintf("Invest at %s", percent(p.AnnualRate*100)), c)
			return nil
		},
	}
	investPlan.register(invest)

	cmd.AddCommand(earlier, invest)
	return cmd
}

func printComparison(cmd *cobra.Command, title, baseline, scenario string, c growth.Comparison) {
	w := cmd.OutOrStdout()
	heading(w, title)
	fmt.Fprintf(w, "%-28s  %16s  %16s\n", "", "Nominal", "Today's money")
	divider(w, 64)
	fmt.Fprintf(w, "%-28s  %16s  %16s\n", baseline, money(c.Baseline.Nominal), money(c.Baseline.Real))
	fmt.Fprintf(w, "%-28s  %16s  %16s\n", scenario, money(c.Scenario.Nominal), money(c.Scenario.Real))
	fmt.Fprintln(w)
	field(w, "Difference", signedMoney(c.Difference()))
}

func newAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the reference asset classes and their typical returns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-10s  %-18s  %8s  %s\n", "ID", "Name", "Return", "Risk")
			divider(w, 52)
			for _, a := range growth.Assets() {
				fmt.Fprintf(w, "%-10s  %-18s  %8s  %s\n", a.ID, a.Name, percent(a.AnnualReturn*100), a.Risk)
			}
			return nil
		},
	}
}
