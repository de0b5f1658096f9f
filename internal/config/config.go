// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. RESUME_REVIEW_STRICT=true.
const EnvPrefix = "RESUME_REVIEW"

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume      string `mapstructure:"resume"`      // Path to the résumé document
	Suggestions string `mapstructure:"suggestions"` // Path to the suggestion registry

	// Behavior
	Strict   bool   `mapstructure:"strict"`    // Reject suggestions that target the same path
	Validate bool   `mapstructure:"validate"`  // Schema-check inputs before reviewing
	Verbose  bool   `mapstructure:"verbose"`   // Print detailed debug information
	LogLevel string `mapstructure:"log_level"` // debug, info, warn or error
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Validate: true,
		LogLevel: "warn",
	}
}

// LoadConfig loads configuration from a file, with RESUME_REVIEW_* environment
// variables taking precedence over file values.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv builds a configuration from defaults and environment variables only.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// every key needs a default for AutomaticEnv to reach it during Unmarshal
	d := Defaults()
	v.SetDefault("resume", d.Resume)
	v.SetDefault("suggestions", d.Suggestions)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("validate", d.Validate)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("log_level", d.LogLevel)
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.LogLevel != "" && !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("config error: 'log_level' must be one of debug, info, warn, error")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Suggestions != "" {
		if _, err := os.Stat(c.Suggestions); os.IsNotExist(err) {
			return fmt.Errorf("config error: suggestions file not found: %s", c.Suggestions)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Suggestions == "" {
		result.Suggestions = defaults.Suggestions
	}
	if result.LogLevel == "" {
		if defaults.LogLevel != "" {
			result.LogLevel = defaults.LogLevel
		} else {
			result.LogLevel = "warn"
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
