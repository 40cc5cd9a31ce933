// Package config handles badgegen configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/layout"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Columns models.Columns
	Layout  layout.Config
	Font    badgegen.FontSpec
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Columns: models.DefaultColumns(),
		Layout:  layout.DefaultConfig(),
		Font:    badgegen.DefaultFontSpec(),
	}
}

// Load loads configuration from a file. Keys that are missing keep their
// defaults; keys with malformed or out-of-range values keep their defaults
// and are reported with a warning. Only an unreadable file or invalid YAML
// is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg := Default()
	sections := topLevel(&root)
	cfg.applyColumns(sections["columns"])
	cfg.applyLayout(sections["layout"])
	cfg.applyFont(sections["font"])
	for name := range sections {
		switch name {
		case "columns", "layout", "font":
		default:
			warnf("unknown section %q ignored", name)
		}
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Apply copies the configuration into generation options.
func (c *Config) Apply(opts *badgegen.Options) {
	opts.Columns = c.Columns
	opts.Layout = c.Layout
	opts.Font = c.Font
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c.file())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists
	}
	return Default().Save(path)
}
