package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mediacat/mtkit/internal/logging"
	"github.com/mediacat/mtkit/util"
)

// Config represents the mtkit configuration file.
type Config struct {
	Store StoreConfig    `yaml:"store"`
	Log   logging.Config `yaml:"log"`
	ID    IDConfig       `yaml:"id"`
}

// StoreConfig contains blob store settings
type StoreConfig struct {
	Root       string `yaml:"root"`       // Directory holding the object store
	Extensions string `yaml:"extensions"` // Comma separated extensions accepted by put; empty accepts all
}

// IDConfig contains identifier generator settings
type IDConfig struct {
	Seed int64 `yaml:"seed"` // Random source seed; 0 seeds from process start time
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return &Config{
		Store: StoreConfig{
			Root: filepath.Join(home, ".mtkit", "store"),
		},
		Log: logging.DefaultConfig(),
	}
}

// Load reads configuration from a file. Values missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := util.ReadWholeFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Store.Root = util.TrimString(cfg.Store.Root)
	return cfg, nil
}

// Save writes configuration to a file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := util.WriteWholeFile(path, data); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := util.RequireString(c.Store.Root); err != nil {
		return fmt.Errorf("store.root is required: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// ExtensionList returns the configured extensions, trimmed, lowercased
// and without a leading dot.
func (c *Config) ExtensionList() []string {
	var exts []string
	for _, tok := range util.SplitString(c.Store.Extensions, ',') {
		ext := strings.ToLower(strings.TrimPrefix(util.TrimString(tok), "."))
		if util.StringOK(ext) {
			exts = append(exts, ext)
		}
	}
	return exts
}

// AllowsExtension reports whether a file name passes the extension filter.
func (c *Config) AllowsExtension(name string) bool {
	exts := c.ExtensionList()
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
