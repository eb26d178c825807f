// Package config provides configuration management for mdpub.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/mdpub/pkg/md"
)

// Defaults applied to unset fields.
const (
	DefaultSourceDir = "md"
	DefaultOutputDir = "public"
	DefaultExtension = ".html"
)

// Config holds the mdpub configuration.
type Config struct {
	SourceDir    string `yaml:"source_dir,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty"`
	Extension    string `yaml:"extension,omitempty"`
	Engine       string `yaml:"engine,omitempty"`
	SkipAssets   bool   `yaml:"skip_assets,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
}

// ApplyDefaults fills empty fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.SourceDir == "" {
		c.SourceDir = DefaultSourceDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Engine == "" {
		c.Engine = string(md.EngineLine)
	}
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("source_dir is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	if !isPlainName(c.SourceDir) {
		return errors.New("source_dir must be a directory name, not a path")
	}
	if !filepath.IsAbs(c.OutputDir) && !isPlainName(c.OutputDir) {
		return errors.New("output_dir must be a directory name or an absolute path")
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return errors.New("extension must start with a dot")
	}
	if _, err := md.ParseEngine(c.Engine); err != nil {
		return err
	}

	return nil
}

// isPlainName reports whether s names a single directory entry.
func isPlainName(s string) bool {
	if s == "." || s == ".." {
		return false
	}
	return !strings.ContainsRune(s, filepath.Separator) && !strings.Contains(s, "/")
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("MDPUB_SOURCE_DIR"); v != "" {
		c.SourceDir = v
	}
	if v := os.Getenv("MDPUB_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("MDPUB_EXTENSION"); v != "" {
		c.Extension = v
	}
	if v := os.Getenv("MDPUB_ENGINE"); v != "" {
		c.Engine = v
	}
	if v := os.Getenv("MDPUB_SKIP_ASSETS"); v != "" {
		if skip, err := strconv.ParseBool(v); err == nil {
			c.SkipAssets = skip
		}
	}
}

// EnvVars lists the environment variables read by LoadFromEnv.
var EnvVars = []string{
	"MDPUB_SOURCE_DIR",
	"MDPUB_OUTPUT_DIR",
	"MDPUB_EXTENSION",
	"MDPUB_ENGINE",
	"MDPUB_SKIP_ASSETS",
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mdpub", "config.yml")
	}

	// Fall back to ~/.config/mdpub/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mdpub", "config.yml")
	}

	return filepath.Join(home, ".config", "mdpub", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file, overrides it with environment
// variables and fills in defaults. A missing file is not an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}
