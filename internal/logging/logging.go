// Package logging builds the optional debug logger. The TUI owns the
// terminal, so logs never go to stderr: either a file path is configured
// and we log there, or logging is a no-op.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to path, or a nop logger when path is "".
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open debug log %s: %w", path, err)
	}
	return log, nil
}
