package cli

import (
	"fmt"
	"text/tabwriter"

	"uiplay/internal/store"

	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded demo sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			sessions, err := store.Sessions(cmd.Context(), cfg.RecordPath())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recorded sessions")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SESSION\tSTARTED\tEVENTS")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), s.Events)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the events of one recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			events, err := store.Events(cmd.Context(), cfg.RecordPath(), args[0])
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no events for session", args[0])
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SEQ\tAT\tKIND\tTARGET\tDETAIL")
			for _, ev := range events {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					ev.Seq, ev.At.Format("15:04:05.000"), ev.Kind, ev.Target, ev.Detail)
			}
			return w.Flush()
		},
	})

	return cmd
}
