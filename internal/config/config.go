// Package config loads the inkwell configuration file and seed documents.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "inkwell.yaml"

// Config is the decoded configuration file.
type Config struct {
	LogLevel string            `mapstructure:"log_level" yaml:"log_level"`
	Seed     string            `mapstructure:"seed" yaml:"seed"`
	Hotkeys  map[string]string `mapstructure:"hotkeys" yaml:"hotkeys"`
	Strict   bool              `mapstructure:"strict" yaml:"strict"`
	Theme    string            `mapstructure:"theme" yaml:"theme"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		Strict:   true,
	}
}

// Load reads a YAML (or JSON) configuration file. A missing file yields the
// defaults; keys present in the file override them. A relative seed path is
// resolved against the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if cfg.Seed != "" && !filepath.IsAbs(cfg.Seed) {
		cfg.Seed = filepath.Join(filepath.Dir(path), cfg.Seed)
	}
	return cfg, nil
}

// Decode merges YAML data into cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	return decode(raw, cfg, true)
}

func decode(input, result any, strict bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
