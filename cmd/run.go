package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/app"
	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/logger"
)

// runApp opens the store, loads the quiz catalog and launches the TUI. When
// quizID is set the quiz opens straight away.
func runApp(cmd *cobra.Command, quizID string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load quizzes: %w", err)
	}
	if quizID != "" {
		if _, err := cat.Get(quizID, 0); err != nil {
			return err
		}
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// Log lines would tear the alt screen.
	logger.SetDefault(logger.Discard())

	return app.Run(cmd.Context(), app.Options{
		Catalog:  cat,
		Results:  st.Results(),
		Seed:     settings.Seed,
		Currency: displayCurrency(),
		Quiz:     quizID,
	})
}
