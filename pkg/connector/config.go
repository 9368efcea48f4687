// Copyright 2024-2026 Aiku AI

package connector

import (
	_ "embed"
	"fmt"

	up "go.mau.fi/util/configupgrade"
	"gopkg.in/yaml.v3"

	"github.com/aiku/chatmarkup/pkg/connector/matrixfmt"
)

//go:embed example-config.yaml
var ExampleConfig string

const defaultCacheMaxEntries = 1024

// Config holds the chat markup connector configuration.
type Config struct {
	// BulletGlyph replaces the `-` and `*` markers of bullet lines in the
	// Matrix HTML body. Defaults to "•".
	BulletGlyph string `yaml:"bullet_glyph"`
	// HTMLEnabled controls whether converted messages carry an HTML body.
	// When false only the plain body is sent.
	HTMLEnabled bool `yaml:"html_enabled"`
	// CacheMaxEntries bounds the per-message parse cache. Zero disables
	// caching.
	CacheMaxEntries int `yaml:"cache_max_entries"`
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() Config {
	return Config{
		BulletGlyph:     matrixfmt.DefaultBulletGlyph,
		HTMLEnabled:     true,
		CacheMaxEntries: defaultCacheMaxEntries,
	}
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig Config
	return node.Decode((*rawConfig)(c))
}

func (c *Config) PostProcess() error {
	if c.BulletGlyph == "" {
		c.BulletGlyph = matrixfmt.DefaultBulletGlyph
	}
	if c.CacheMaxEntries < 0 {
		return fmt.Errorf("cache_max_entries must not be negative, got %d", c.CacheMaxEntries)
	}
	return nil
}

// LoadConfig reads a YAML config, carrying its values over the example config
// so that missing keys keep their example defaults. Unknown keys are ignored.
func LoadConfig(data []byte) (Config, error) {
	var base, user yaml.Node
	if err := yaml.Unmarshal([]byte(ExampleConfig), &base); err != nil {
		return Config{}, fmt.Errorf("failed to parse example config: %w", err)
	}
	if err := yaml.Unmarshal(data, &user); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(user.Content) > 0 {
		upgradeConfig(up.NewHelper(&base, &user))
	}

	var cfg Config
	if err := base.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.PostProcess(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) renderOptions() matrixfmt.Options {
	return matrixfmt.Options{BulletGlyph: c.BulletGlyph}
}

func upgradeConfig(helper up.Helper) {
	helper.Copy(up.Str, "bullet_glyph")
	helper.Copy(up.Bool, "html_enabled")
	helper.Copy(up.Int, "cache_max_entries")
}

// GetConfig returns the example config, the config struct to decode into
// and the upgrader that carries user values over to newer config layouts.
func (cv *Converter) GetConfig() (example string, data any, upgrader up.Upgrader) {
	return ExampleConfig, &cv.Config, &up.StructUpgrader{
		SimpleUpgrader: up.SimpleUpgrader(upgradeConfig),
		Blocks:         nil,
		Base:           ExampleConfig,
	}
}
