package cli

import (
	"fmt"
	"math"
	"strings"

	"uiplay/internal/interact"

	"github.com/spf13/cobra"
)

// newAddCmd exposes the Add helper for scripts: same coercion rules as
// the demo page, NaN and all.
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two values with input-field coercion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := interact.Add(args[0], args[1])
			if math.IsNaN(sum) {
				fmt.Fprintln(cmd.OutOrStdout(), "NaN")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(sum))
			return nil
		},
	}
}

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting (default name: guest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), interact.Greet(name))
			return nil
		},
	}
}

func formatFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	// %g prints integers without a decimal point already; keep as-is.
	return strings.TrimSpace(s)
}
