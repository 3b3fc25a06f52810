package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todoscontam/finlab/internal/registry"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

func newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the course chapters and how to run each module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, ch := range registry.Chapters() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, theme.Tier.Render(ch.Title))
				for _, m := range ch.Modules {
					fmt.Fprintf(w, "  %-36s %-10s %s\n", m.Title, m.Kind, theme.Hint.Render(m.Command))
				}
			}
			return nil
		},
	}
}
