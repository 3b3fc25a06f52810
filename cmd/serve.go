package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/api"
	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/logger"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulators and quizzes as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = settings.Addr
			}
			cat, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("load quizzes: %w", err)
			}
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := &api.Server{
				Catalog: cat,
				Results: st.Results(),
				Seed:    settings.Seed,
				Log:     logger.Default().WithPrefix("api"),
			}
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides FINLAB_ADDR)")
	return cmd
}
