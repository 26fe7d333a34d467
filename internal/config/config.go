// Package config loads the converter configuration from a YAML file,
// applying defaults so the tool also runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docfxmd/internal/identifier"
)

// Config represents the application configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Sanitize SanitizeConfig `yaml:"sanitize"`
	Watch    WatchConfig    `yaml:"watch"`
}

// InputConfig locates the DocFX YAML pages.
type InputConfig struct {
	Directory string `yaml:"directory"`
	Extension string `yaml:"extension,omitempty"` // recognized page extension, default ".yml"
}

// OutputConfig controls the generated documents.
type OutputConfig struct {
	Directory     string `yaml:"directory"`
	Extension     string `yaml:"extension,omitempty"`      // document extension, default ".md"
	FenceLanguage string `yaml:"fence_language,omitempty"` // syntax section code fence language
	Verify        bool   `yaml:"verify,omitempty"`         // parse generated bodies before writing
}

// SanitizeConfig bounds derived identifiers. Zero values take the defaults
// (100 / 80).
type SanitizeConfig struct {
	MaxLength  int `yaml:"max_length,omitempty"`
	TruncateAt int `yaml:"truncate_at,omitempty"`
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"` // Go duration string, e.g. "2s"
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. A missing file is not an
// error: the defaults apply, so the tool works out of the box.
func Load(configPath string) (*Config, error) {
	// Load .env files if present; existing environment wins.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Input.Directory == "" {
		c.Input.Directory = "docfx/api"
	}
	if c.Input.Extension == "" {
		c.Input.Extension = ".yml"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "docs/api"
	}
	if c.Output.Extension == "" {
		c.Output.Extension = ".md"
	}
	if c.Output.FenceLanguage == "" {
		c.Output.FenceLanguage = "csharp"
	}
	if c.Sanitize.MaxLength == 0 {
		c.Sanitize.MaxLength = identifier.DefaultPolicy().MaxLength
	}
	if c.Sanitize.TruncateAt == 0 {
		c.Sanitize.TruncateAt = identifier.DefaultPolicy().TruncateAt
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = "2s"
	}
}

func (c *Config) validate() error {
	if c.Sanitize.TruncateAt >= c.Sanitize.MaxLength {
		return fmt.Errorf("sanitize.truncate_at (%d) must be below sanitize.max_length (%d)",
			c.Sanitize.TruncateAt, c.Sanitize.MaxLength)
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("watch.debounce is not a valid duration: %w", err)
	}
	return nil
}

// DebounceDuration returns the parsed watch debounce interval.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Policy returns the identifier length policy configured here.
func (c *Config) Policy() identifier.Policy {
	return identifier.Policy{MaxLength: c.Sanitize.MaxLength, TruncateAt: c.Sanitize.TruncateAt}
}
