package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/inkwell"
	"github.com/aretw0/inkwell/internal/config"
	"github.com/aretw0/inkwell/internal/keymap"
	"github.com/aretw0/inkwell/internal/logging"
	"github.com/aretw0/inkwell/internal/metrics"
	"github.com/aretw0/inkwell/pkg/domain"
)

// session bundles what a CLI command needs to drive one editor.
type session struct {
	editor    *inkwell.Editor
	keys      *keymap.Keymap
	collector *metrics.Collector
	logger    *slog.Logger
}

// createSession initializes an editor with standard CLI conventions.
func createSession(cfg config.Config, withMetrics bool) (*session, error) {
	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	keys, err := keymap.New(cfg.Hotkeys)
	if err != nil {
		return nil, fmt.Errorf("invalid hotkeys: %w", err)
	}

	s := &session{keys: keys, logger: logger}

	hooks := domain.LifecycleHooks{}
	if cfg.LogLevel == "debug" {
		hooks = hooks.Merge(logging.Hooks(logger))
	}
	if withMetrics {
		s.collector = metrics.New()
		hooks = hooks.Merge(s.collector.Hooks())
	}

	edOpts := []inkwell.Option{
		inkwell.WithLogger(logger),
		inkwell.WithLifecycleHooks(hooks),
		inkwell.WithStrict(cfg.Strict),
	}
	if cfg.Seed != "" {
		value, err := config.LoadSeed(cfg.Seed)
		if err != nil {
			return nil, err
		}
		edOpts = append(edOpts, inkwell.WithValue(value))
	}

	s.editor, err = inkwell.New(edOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing editor: %w", err)
	}
	return s, nil
}

// createLogger configures the application logger.
// Below debug level nothing is logged unless asked for: stdout carries the document.
func createLogger(level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}
