package cli

import (
	"fmt"
	"sort"

	"uiplay/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the embedded documentation topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				sort.Strings(topics)
				for _, topic := range topics {
					fmt.Fprintln(cmd.OutOrStdout(), topic)
				}
				return nil
			}

			body, ok := docs.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown docs topic: %q (run `uiplay docs` to list topics)", args[0])
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}

			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				// Fall back to raw markdown when the terminal probe fails.
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}
			out, err := r.Render(body)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	return cmd
}
