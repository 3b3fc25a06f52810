package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/config"
	"github.com/todoscontam/finlab/internal/currency"
	"github.com/todoscontam/finlab/internal/logger"
	"github.com/todoscontam/finlab/internal/store"
)

// Execute runs the finlab command tree until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finlab",
		Short: "Personal finance simulators and quizzes",
		Long: "finlab teaches personal finance in the terminal: compound growth and savings\n" +
			"simulators, budgeting planners and quizzes with saved results.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, "")
		},
	}

	flags := root.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides FINLAB_DB env var)")
	flags.String("log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (overrides FINLAB_LOG_LEVEL)")
	flags.String("currency", "", "Display currency (overrides FINLAB_CURRENCY)")
	flags.Uint64("seed", 0, "Fix quiz draws and simulations (overrides FINLAB_SEED)")

	root.AddCommand(
		newSimulateCmd(),
		newContributionCmd(),
		newTargetCmd(),
		newInflationCmd(),
		newCompareCmd(),
		newAssetsCmd(),
		newBudgetCmd(),
		newMoneyCmd(),
		newValueCmd(),
		newConvertCmd(),
		newDiversifyCmd(),
		newQuizCmd(),
		newQuizzesCmd(),
		newHistoryCmd(),
		newStatsCmd(),
		newResetCmd(),
		newModulesCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

// settings is the resolved configuration for one invocation.
var settings config.Config

// loadSettings merges .env, FINLAB_* variables and persistent flags, in
// increasing priority, and configures the default logger.
func loadSettings(cmd *cobra.Command) error {
	cfg := config.Load()
	flags := cmd.Flags()

	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = strings.ToUpper(v)
	}
	if v, _ := flags.GetString("currency"); v != "" {
		cfg.Currency = strings.ToUpper(v)
	}
	if flags.Changed("seed") {
		v, _ := flags.GetUint64("seed")
		cfg.Seed = &v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetDefault(logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	))
	settings = cfg
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FINLAB_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = settings.DBPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func displayCurrency() string {
	if settings.Currency == "" {
		return currency.Base
	}
	return settings.Currency
}
