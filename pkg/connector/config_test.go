// Copyright 2024-2026 Aiku AI

package connector

import (
	"testing"

	up "go.mau.fi/util/configupgrade"
	"gopkg.in/yaml.v3"
)

func TestConfigUnmarshalYAML(t *testing.T) {
	t.Parallel()
	input := `
bullet_glyph: "-"
html_enabled: true
cache_max_entries: 10
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(input), &cfg); err != nil {
		t.Fatalf("UnmarshalYAML: %v", err)
	}
	if cfg.BulletGlyph != "-" {
		t.Errorf("BulletGlyph: got %q, want %q", cfg.BulletGlyph, "-")
	}
	if !cfg.HTMLEnabled {
		t.Error("HTMLEnabled: got false, want true")
	}
	if cfg.CacheMaxEntries != 10 {
		t.Errorf("CacheMaxEntries: got %d, want 10", cfg.CacheMaxEntries)
	}
}

func TestConfigPostProcess(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	if err := cfg.PostProcess(); err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	if cfg.BulletGlyph != "•" {
		t.Errorf("BulletGlyph should default to •, got %q", cfg.BulletGlyph)
	}
}

func TestConfigPostProcessNegativeCache(t *testing.T) {
	t.Parallel()
	cfg := &Config{CacheMaxEntries: -1}
	if err := cfg.PostProcess(); err == nil {
		t.Error("PostProcess should return error for negative cache_max_entries")
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	if !cfg.HTMLEnabled {
		t.Error("HTMLEnabled should default to true")
	}
	if cfg.CacheMaxEntries != defaultCacheMaxEntries {
		t.Errorf("CacheMaxEntries: got %d, want %d", cfg.CacheMaxEntries, defaultCacheMaxEntries)
	}
}

func TestUpgradeConfig(t *testing.T) {
	t.Parallel()
	var baseNode yaml.Node
	if err := yaml.Unmarshal([]byte(ExampleConfig), &baseNode); err != nil {
		t.Fatalf("failed to parse base config: %v", err)
	}

	userCfg := `
bullet_glyph: "→"
cache_max_entries: 5
`
	var cfgNode yaml.Node
	if err := yaml.Unmarshal([]byte(userCfg), &cfgNode); err != nil {
		t.Fatalf("failed to parse user config: %v", err)
	}

	helper := up.NewHelper(&baseNode, &cfgNode)
	upgradeConfig(helper)

	if val, ok := helper.Get(up.Str, "bullet_glyph"); !ok || val != "→" {
		t.Errorf("bullet_glyph after upgrade: got %q, ok=%v", val, ok)
	}
	if val, ok := helper.Get(up.Int, "cache_max_entries"); !ok || val != "5" {
		t.Errorf("cache_max_entries after upgrade: got %q, ok=%v", val, ok)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig([]byte("html_enabled: false\nunknown_key: 1\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTMLEnabled {
		t.Error("HTMLEnabled: got true, want false")
	}
	if cfg.BulletGlyph != "•" {
		t.Errorf("BulletGlyph should keep example default, got %q", cfg.BulletGlyph)
	}
	if cfg.CacheMaxEntries != 1024 {
		t.Errorf("CacheMaxEntries should keep example default, got %d", cfg.CacheMaxEntries)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty config: got %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Parallel()
	if _, err := LoadConfig([]byte("cache_max_entries: [")); err == nil {
		t.Error("LoadConfig should fail on malformed YAML")
	}
	if _, err := LoadConfig([]byte("cache_max_entries: -3")); err == nil {
		t.Error("LoadConfig should fail on negative cache_max_entries")
	}
}

func TestGetConfig(t *testing.T) {
	t.Parallel()
	cv, err := NewConverter(DefaultConfig(), nopLogger())
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	example, data, upgrader := cv.GetConfig()
	if example != ExampleConfig {
		t.Error("GetConfig should return the embedded example config")
	}
	if data != &cv.Config {
		t.Error("GetConfig should return a pointer to the converter config")
	}
	if _, ok := upgrader.(*up.StructUpgrader); !ok {
		t.Errorf("upgrader: got %T, want *up.StructUpgrader", upgrader)
	}
}

func TestExampleConfigNotEmpty(t *testing.T) {
	t.Parallel()
	if ExampleConfig == "" {
		t.Error("ExampleConfig should not be empty (embedded from example-config.yaml)")
	}
}
