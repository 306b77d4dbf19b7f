// Package config loads the harness settings stored in forgecheck.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the config file expected at the harness root.
const FileName = "forgecheck.toml"

// Config captures the user editable harness settings.
type Config struct {
	// Tool is the argv prefix of the wrapped tool. Usually just ["forge"],
	// but it may carry a launcher in front. Token 0 resolves via PATH.
	Tool []string `toml:"tool"`

	// RefsDir holds the reference transcripts, relative to the harness root.
	RefsDir string `toml:"refs_dir"`
}

// ErrEmptyTool indicates config.tool was set to an empty list.
var ErrEmptyTool = errors.New("config.tool must name at least the tool binary")

// Default returns the baseline configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Tool == nil {
		c.Tool = []string{"forge"}
	}
	if c.RefsDir == "" {
		c.RefsDir = "refs"
	}
}

// Validate ensures the configuration can drive a harness run.
func (c Config) Validate() error {
	if len(c.Tool) == 0 {
		return ErrEmptyTool
	}
	return nil
}

// Load reads configuration from disk. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
