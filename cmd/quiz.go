package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/assessment"
	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/logger"
	"github.com/todoscontam/finlab/internal/store"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

func newQuizCmd() *cobra.Command {
	var plain, noSave bool
	cmd := &cobra.Command{
		Use:   "quiz [ID]",
		Short: "Take a quiz",
		Long: "Opens a quiz in the interactive interface, or the quiz menu when no ID is\n" +
			"given. --plain asks the questions line by line instead.",
		Example: "  finlab quiz budget-basics\n  finlab quiz final --plain --seed 42",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			cat, err := catalog.Load()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return cat.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			if !plain {
				return runApp(cmd, id)
			}
			if id == "" {
				return errors.New("--plain needs a quiz ID (see 'finlab quizzes')")
			}

			cat, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("load quizzes: %w", err)
			}
			var results store.ResultRepo
			if !noSave {
				st, err := openStore(cmd)
				if err != nil {
					return err
				}
				defer st.Close()
				results = st.Results()
			}
			return runPlainQuiz(cmd, cat, id, results)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Ask the questions line by line without the full-screen interface")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not store the result (plain mode)")
	return cmd
}

// runPlainQuiz runs a quiz over the command's stdin and stdout.
func runPlainQuiz(cmd *cobra.Command, cat *catalog.Catalog, id string, results store.ResultRepo) error {
	log := logger.FromContext(cmd.Context()).WithPrefix("quiz")

	seed := rand.Uint64()
	if settings.Seed != nil {
		seed = *settings.Seed
	}
	q, err := cat.Get(id, seed)
	if err != nil {
		return err
	}
	sess, err := q.Start(&seed)
	if err != nil {
		return err
	}
	if sess.Total() == 0 {
		return fmt.Errorf("quiz %q has no questions", id)
	}

	w := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())
	heading(w, q.Title)
	if q.Description != "" {
		fmt.Fprintln(w, theme.Hint.Render(strings.TrimSpace(q.Description)))
	}

	for {
		if err := playSession(cmd, in, q, sess, results); err != nil {
			return err
		}
		if !askYes(w, in, "Try again? [y/N]: ") {
			return nil
		}
		if sess, err = sess.Reset(); err != nil {
			return err
		}
		log.Debug("restarted %s with seed %d", q.ID, sess.Seed())
	}
}

// playSession asks every question of sess, prints the outcome and stores it
// when results is set.
func playSession(cmd *cobra.Command, in *bufio.Reader, q catalog.Quiz, sess assessment.Session, results store.ResultRepo) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	for sess.State() == assessment.InProgress {
		item, _ := sess.Current()
		fmt.Fprintf(w, "\n%s %s\n", theme.Subtitle.Render(fmt.Sprintf("[%d/%d]", sess.Index()+1, sess.Total())), item.Prompt)
		for i, o := range item.Options {
			fmt.Fprintf(w, "  %d) %s\n", i+1, o)
		}

		answer, err := askOption(w, in, item.Options)
		if err != nil {
			return err
		}
		if sess, err = sess.Submit(answer); err != nil {
			return err
		}
		printFeedback(w, item, answer)
	}

	result, err := assessment.Score(sess)
	if err != nil {
		return err
	}
	tier := q.Tiers.Classify(result.Percentage)
	printResult(w, result, tier)

	if results != nil {
		saved := store.NewResult(q.ID, sess.Seed(), tier.Label, result)
		if err := results.Save(ctx, saved); err != nil {
			logger.FromContext(ctx).WithPrefix("quiz").Error("failed to save result: %v", err)
			fmt.Fprintln(w, theme.Loss.Render("Result could not be saved."))
		} else {
			fmt.Fprintln(w, theme.Hint.Render("Saved as "+saved.ID))
		}
	}
	return nil
}

// askYes reports whether the next line starts with y. End of input is a no.
func askYes(w io.Writer, in *bufio.Reader, prompt string) bool {
	fmt.Fprint(w, prompt)
	line, _ := in.ReadString('\n')
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}

// askOption reads until the user enters a valid option number.
func askOption(w io.Writer, in *bufio.Reader, options []string) (string, error) {
	for {
		fmt.Fprintf(w, "Answer (1-%d): ", len(options))
		line, err := in.ReadString('\n')
		if n, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		fmt.Fprintln(w, theme.Hint.Render("Enter the number of an option."))
	}
}

func printFeedback(w io.Writer, item assessment.Item, answer string) {
	switch {
	case item.Weighted():
		fmt.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("%s: +%d of %d", item.Category, item.Points(answer), item.MaxWeight())))
	case item.IsCorrect(answer):
		fmt.Fprintln(w, theme.Correct.Render("Correct!"))
	default:
		fmt.Fprintln(w, theme.Incorrect.Render("Not quite. The answer is: "+item.Answer))
	}
	if item.Explanation != "" {
		fmt.Fprintln(w, theme.Hint.Render(item.Explanation))
	}
}

func printResult(w io.Writer, r assessment.Result, tier assessment.Tier) {
	fmt.Fprintln(w)
	if r.Weighted {
		field(w, "Score", fmt.Sprintf("%d of %d points (%s)", r.Points, r.MaxPoints, percent(r.Percentage)))
	} else {
		field(w, "Score", fmt.Sprintf("%d of %d correct (%s)", r.Correct, r.Total, percent(r.Percentage)))
	}
	fmt.Fprintln(w, theme.Tier.Render(tier.Label))
	if tier.Message != "" {
		fmt.Fprintln(w, tier.Message)
	}

	cats := r.ByCategory()
	if len(cats) < 2 {
		return
	}
	fmt.Fprintln(w)
	for _, c := range cats {
		fmt.Fprintf(w, "  %-28s %s\n", c.Category, percent(c.Percentage))
	}
}

func newQuizzesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quizzes",
		Short: "List the available quizzes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("load quizzes: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-20s  %-32s  %9s  %s\n", "ID", "Title", "Questions", "Chapter")
			divider(w, 80)
			for _, s := range cat.List() {
				fmt.Fprintf(w, "%-20s  %-32s  %9d  %s\n", s.ID, truncate(s.Title, 32), s.Questions, s.Chapter)
			}
			return nil
		},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
