package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/inkwell/internal/config"
)

// RunOptions contains all the configuration shared by the CLI commands.
type RunOptions struct {
	ConfigPath string
	SeedPath   string
	Debug      bool
	Headless   bool
	Metrics    bool

	Input  io.Reader
	Output io.Writer
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(opts RunOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.SeedPath != "" {
		cfg.Seed = opts.SeedPath
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func (o RunOptions) in() io.Reader {
	if o.Input != nil {
		return o.Input
	}
	return os.Stdin
}

func (o RunOptions) out() io.Writer {
	if o.Output != nil {
		return o.Output
	}
	return os.Stdout
}

// Execute handles the 'run' command: an interactive prompt, or a script when
// stdin is not a terminal or --headless is set.
func Execute(opts RunOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return RunSession(opts, cfg)
}
