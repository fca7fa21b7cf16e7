package cli

import (
	"context"
	"fmt"
	"os"

	"uiplay/internal/logging"
	"uiplay/internal/model"
	"uiplay/internal/sched"
	"uiplay/internal/store"
	"uiplay/internal/tui"
	"uiplay/internal/wire"

	"go.uber.org/zap"
)

func runTUI(app *App) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var observer wire.Observer
	if cfg.Record.Enabled {
		rec, err := store.Open(context.Background(), cfg.RecordPath())
		if err != nil {
			return fmt.Errorf("open session recorder: %w", err)
		}
		defer rec.Close()
		log.Info("recording session", zap.String("session", rec.SessionID()), zap.String("path", cfg.RecordPath()))
		observer = func(kind model.EventKind, target, detail string) {
			if err := rec.Append(context.Background(), kind, target, detail); err != nil {
				log.Warn("record failed", zap.Error(err))
			}
		}
	}

	doc := wire.NewDemoDocument()
	s := sched.New()
	defer s.Shutdown()

	_, warns := wire.Init(doc, s, wire.Options{
		Classes:  cfg.Classes,
		PulseDur: cfg.PulseDuration(),
		Observer: observer,
		Log:      log,
	})
	for _, w := range warns {
		fmt.Fprintln(os.Stderr, w.String())
	}

	return tui.Run(doc, cfg, warns)
}
