package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/store"
)

func newHistoryCmd() *cobra.Command {
	var (
		quiz  string
		limit int
		since time.Duration
		show  string
	)
	cmd := &cobra.Command{
		Use:     "history",
		Short:   "List past quiz results",
		Example: "  finlab history --quiz final --since 720h\n  finlab history --show <result-id>",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			if show != "" {
				res, err := st.Results().Get(ctx, show)
				if err != nil {
					return err
				}
				printStoredResult(cmd, res)
				return nil
			}

			filter := store.ResultFilter{QuizID: quiz, Limit: limit}
			if since > 0 {
				filter.Since = time.Now().Add(-since)
			}
			results, err := st.Results().List(ctx, filter)
			if err != nil {
				return fmt.Errorf("query results: %w", err)
			}
			if len(results) == 0 {
				fmt.Fprintln(w, "No results yet. Take a quiz with 'finlab quiz'.")
				return nil
			}

			fmt.Fprintf(w, "%-36s  %-16s  %-20s  %7s  %s\n", "ID", "When", "Quiz", "Score", "Tier")
			divider(w, 110)
			for _, r := range results {
				fmt.Fprintf(w, "%-36s  %-16s  %-20s  %7s  %s\n",
					r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.QuizID, percent(r.Percentage), r.Tier)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&quiz, "quiz", "", "Only results of this quiz")
	flags.IntVar(&limit, "limit", 20, "Maximum number of results")
	flags.DurationVar(&since, "since", 0, "Only results newer than this (e.g. 168h)")
	flags.StringVar(&show, "show", "", "Show one result with its answers")
	return cmd
}

func printStoredResult(cmd *cobra.Command, r *store.Result) {
	w := cmd.OutOrStdout()
	heading(w, r.QuizID+" · "+r.CreatedAt.Local().Format("2006-01-02 15:04"))
	if r.Weighted {
		field(w, "Score", fmt.Sprintf("%d of %d points (%s)", r.Points, r.MaxPoints, percent(r.Percentage)))
	} else {
		field(w, "Score", fmt.Sprintf("%d of %d correct (%s)", r.Correct, r.Total, percent(r.Percentage)))
	}
	field(w, "Tier", r.Tier)
	field(w, "Seed", fmt.Sprint(r.Seed))
	fmt.Fprintln(w)
	for _, a := range r.Answers {
		mark := "✓"
		switch {
		case r.Weighted:
			mark = fmt.Sprintf("+%d", a.Points)
		case !a.Correct:
			mark = "✗"
		}
		fmt.Fprintf(w, "%3d. %-3s %s\n      %s\n", a.Position, mark, a.Prompt, a.Answer)
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show attempts and best scores per quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.Results().Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("query stats: %w", err)
			}
			w := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(w, "No results yet.")
				return nil
			}
			fmt.Fprintf(w, "%-20s  %8s  %7s  %7s  %s\n", "Quiz", "Attempts", "Best", "Average", "Last")
			divider(w, 66)
			for _, s := range stats {
				fmt.Fprintf(w, "%-20s  %8d  %7s  %7s  %s\n",
					s.QuizID, s.Attempts, percent(s.Best), percent(s.Average), s.Last.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var (
		quiz string
		yes  bool
	)
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete saved quiz results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if !yes {
				what := "every saved result"
				if quiz != "" {
					what = "the results of " + quiz
				}
				fmt.Fprintf(w, "Delete %s? [y/N] ", what)
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
					fmt.Fprintln(w, "Aborted.")
					return nil
				}
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Results().Reset(cmd.Context(), quiz)
			if err != nil {
				return fmt.Errorf("reset results: %w", err)
			}
			fmt.Fprintf(w, "Deleted %d results.\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&quiz, "quiz", "", "Only delete results of this quiz")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
