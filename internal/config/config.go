// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/i18n"
)

// Config represents the CLI configuration. Values come from an optional JSON file,
// are overridden by CV_* environment variables, and fall back to Defaults.
type Config struct {
	// Output
	Locale    string `json:"locale,omitempty" env:"CV_LOCALE"`         // Language of labels and messages ("es", "en")
	OutputDir string `json:"output_dir,omitempty" env:"CV_OUTPUT_DIR"` // Directory for generated documents
	Template  string `json:"template,omitempty" env:"CV_TEMPLATE"`     // Path to a template overriding the embedded one

	// Export
	Converter     string `json:"converter,omitempty" env:"CV_CONVERTER"`           // "chrome" or "latex"
	ChromeTimeout string `json:"chrome_timeout,omitempty" env:"CV_CHROME_TIMEOUT"` // Conversion timeout, e.g. "30s"
	ShareDir      string `json:"share_dir,omitempty" env:"CV_SHARE_DIR"`           // Directory documents are shared into
	Viewer        string `json:"viewer,omitempty" env:"CV_VIEWER"`                 // Command used to open documents

	// Behavior
	Verbose bool `json:"verbose,omitempty" env:"CV_VERBOSE"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Locale:        i18n.DefaultLocale,
		OutputDir:     "output",
		Converter:     export.ConverterChrome,
		ChromeTimeout: export.DefaultChromeTimeout.String(),
		ShareDir:      filepath.Join("output", "shared"),
		Viewer:        export.DefaultViewer,
	}
}

// Load builds the effective configuration: the file at path (skipped when path is
// empty), then environment overrides, then defaults. The result is validated.
func Load(path string) (*Config, error) {
	file := &Config{}
	if path != "" {
		var err error
		if file, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}

	fromEnv, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	merged := fromEnv.MergeWithDefaults(*file)
	merged.Verbose = fromEnv.Verbose || file.Verbose
	merged = merged.MergeWithDefaults(Defaults())

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadEnv reads the CV_* environment variables. Unset variables stay empty.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Locale != "" && !i18n.Supported(c.Locale) {
		return fmt.Errorf("config error: unsupported locale %q", c.Locale)
	}

	switch c.Converter {
	case "", export.ConverterChrome, export.ConverterLaTeX:
	default:
		return fmt.Errorf("config error: 'converter' must be %q or %q", export.ConverterChrome, export.ConverterLaTeX)
	}

	if c.ChromeTimeout != "" {
		d, err := time.ParseDuration(c.ChromeTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'chrome_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'chrome_timeout' must be positive")
		}
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// Timeout returns the conversion timeout, or the default when unset or invalid.
func (c *Config) Timeout() time.Duration {
	if d, err := time.ParseDuration(c.ChromeTimeout); err == nil && d > 0 {
		return d
	}
	return export.DefaultChromeTimeout
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Converter == "" {
		result.Converter = defaults.Converter
	}
	if result.ChromeTimeout == "" {
		result.ChromeTimeout = defaults.ChromeTimeout
	}
	if result.ShareDir == "" {
		result.ShareDir = defaults.ShareDir
	}
	if result.Viewer == "" {
		result.Viewer = defaults.Viewer
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
