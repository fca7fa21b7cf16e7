// Package config loads demo configuration. Values are layered:
// built-in defaults, then an optional YAML file, then UIPLAY_* environment
// variables (highest priority).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ClassConfig names the CSS-style classes the renderer treats as contracts.
// They exist so a stylesheet-equivalent theme can rename them without
// touching the wiring.
type ClassConfig struct {
	Spin  string `yaml:"spin"`  // spinner visible while present
	Flip  string `yaml:"flip"`  // card shows its back face while present
	Pulse string `yaml:"pulse"` // one-shot pop animation
}

// RecordConfig controls the optional sqlite session recorder.
type RecordConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // sqlite file; default ~/.local/share/uiplay/sessions.sqlite
}

// Config is the root configuration.
type Config struct {
	Classes ClassConfig `yaml:"classes"`

	// PulseMillis is the one-shot animation duration in milliseconds.
	PulseMillis int `yaml:"pulse_millis"`

	// Theme forces the TUI palette: "light", "dark" or "" (detect).
	Theme string `yaml:"theme"`

	Record RecordConfig `yaml:"record"`

	// DebugLog, when set, enables the zap debug logger writing to this path.
	DebugLog string `yaml:"debug_log"`
}

func Default() *Config {
	return &Config{
		Classes: ClassConfig{
			Spin:  "spinning",
			Flip:  "flipped",
			Pulse: "anim-pop",
		},
		PulseMillis: 700,
	}
}

// PulseDuration returns the pulse duration, guarding against zero/negative
// configured values.
func (c *Config) PulseDuration() time.Duration {
	if c.PulseMillis <= 0 {
		return 700 * time.Millisecond
	}
	return time.Duration(c.PulseMillis) * time.Millisecond
}

// DefaultPath returns the user-level config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "uiplay", "config.yaml")
}

// Load builds the effective configuration. path == "" means the default
// location; a missing file at the default location is fine, a missing file
// at an explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// No user config; defaults apply.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("UIPLAY_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("UIPLAY_PULSE_MILLIS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PulseMillis = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("UIPLAY_RECORD")); v != "" {
		cfg.Record.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := strings.TrimSpace(os.Getenv("UIPLAY_RECORD_PATH")); v != "" {
		cfg.Record.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("UIPLAY_DEBUG_LOG")); v != "" {
		cfg.DebugLog = v
	}
}

func (c *Config) validate() error {
	switch c.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want light, dark or empty)", c.Theme)
	}
	for _, cl := range []string{c.Classes.Spin, c.Classes.Flip, c.Classes.Pulse} {
		if strings.ContainsAny(cl, " \t\n") || cl == "" {
			return fmt.Errorf("invalid class name %q", cl)
		}
	}
	return nil
}

// RecordPath resolves the session-recorder sqlite location.
func (c *Config) RecordPath() string {
	if c.Record.Path != "" {
		return c.Record.Path
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "sessions.sqlite"
	}
	return filepath.Join(dir, ".local", "share", "uiplay", "sessions.sqlite")
}
