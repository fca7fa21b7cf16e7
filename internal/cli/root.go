// Package cli wires the command-line surface. A bare invocation starts
// the interactive demo; subcommands cover the scriptable pieces.
package cli

import (
	"os"
	"strings"

	"uiplay/internal/config"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Record     bool
	RecordPath string
	DebugLog   string
	Theme      string
}

// loadConfig builds the effective config from file/env plus the app's
// flag overrides.
func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	if a.Record {
		cfg.Record.Enabled = true
	}
	if a.RecordPath != "" {
		cfg.Record.Path = a.RecordPath
	}
	if a.DebugLog != "" {
		cfg.DebugLog = a.DebugLog
	}
	if a.Theme != "" {
		cfg.Theme = a.Theme
	}
	return cfg, nil
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "uiplay",
		Short:        "Interaction playground (TUI demo + scriptable helpers)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive demo
  uiplay

  # Record the run into the session log
  uiplay --record

  # Scriptable helpers
  uiplay add 2 3
  uiplay greet Ada

  # Inspect recorded sessions
  uiplay sessions
  uiplay sessions show sess-abc123`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("UIPLAY_CONFIG", ""), "Path to config file (default: user config dir)")
	cmd.PersistentFlags().BoolVar(&app.Record, "record", false, "Record this run into the session log")
	cmd.PersistentFlags().StringVar(&app.RecordPath, "record-path", "", "Session log sqlite path (overrides config)")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr("UIPLAY_DEBUG_LOG", ""), "Write debug logs to this file")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Force TUI theme (light|dark)")

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newGreetCmd())
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newSessionsCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
