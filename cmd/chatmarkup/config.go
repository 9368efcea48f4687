// Copyright 2024-2026 Aiku AI

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"

	"github.com/aiku/chatmarkup/pkg/connector"
)

// Config is the command's YAML config. The markup keys of
// [connector.Config] live in the same file.
type Config struct {
	Format  string            `yaml:"format"`
	Logging zeroconfig.Config `yaml:"logging"`

	Markup connector.Config `yaml:"-"`
}

// loadConfig reads the config at path. An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	cfg := &Config{Format: formatHTML}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	markup, err := connector.LoadConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.Markup = markup
	if !isKnownFormat(cfg.Format) {
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return cfg, nil
}

// logger builds the configured logger, falling back to human-readable
// output on stderr when no writers are configured.
func (c *Config) logger(stderr io.Writer) (zerolog.Logger, error) {
	if len(c.Logging.Writers) == 0 {
		return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger(), nil
	}
	log, err := c.Logging.Compile()
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("failed to compile logging config: %w", err)
	}
	return *log, nil
}
