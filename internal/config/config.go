// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all configuration for the worksheet server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Export  ExportConfig  `yaml:"export"`
	Cache   CacheConfig   `yaml:"cache"`
	Grid    GridConfig    `yaml:"grid"`
	Contact ContactConfig `yaml:"contact"`
	LogMode string        `yaml:"logMode" env:"LOG_MODE"`
}

// ServerConfig defines HTTP listener options.
type ServerConfig struct {
	Addr        string   `yaml:"addr" env:"ADDR"`
	CORSOrigins []string `yaml:"corsOrigins" env:"CORS_ORIGINS" envSeparator:","`
	Prewarm     bool     `yaml:"prewarm" env:"PREWARM"`
}

// OpenAIConfig defines the generative text service client.
type OpenAIConfig struct {
	APIKey  string        `yaml:"apiKey" env:"OPENAI_API_KEY"`
	BaseURL string        `yaml:"baseURL" env:"OPENAI_BASE_URL"`
	Model   string        `yaml:"model" env:"OPENAI_MODEL"`
	Timeout time.Duration `yaml:"timeout" env:"OPENAI_TIMEOUT"`
}

// ExportConfig bounds the rendering engine.
type ExportConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"EXPORT_TIMEOUT"`
}

// CacheConfig defines the render cache.
type CacheConfig struct {
	TTL        time.Duration `yaml:"ttl" env:"CACHE_TTL"`
	MaxEntries int           `yaml:"maxEntries" env:"CACHE_MAX_ENTRIES"`
}

// GridConfig defines word-search grid generation.
type GridConfig struct {
	Size int `yaml:"size" env:"GRID_SIZE"`
}

// ContactConfig defines the outbound mail relay for the contact form.
type ContactConfig struct {
	SMTPHost string `yaml:"smtpHost" env:"SMTP_HOST"`
	SMTPPort int    `yaml:"smtpPort" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
	To       string `yaml:"to" env:"CONTACT_TO"`
}

// Default returns the configuration used when no file or env overrides are
// present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":4000",
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o-mini",
			Timeout: 8 * time.Second,
		},
		Export:  ExportConfig{Timeout: 30 * time.Second},
		Cache:   CacheConfig{TTL: 5 * time.Minute, MaxEntries: 256},
		Grid:    GridConfig{Size: 15},
		Contact: ContactConfig{SMTPPort: 587},
		LogMode: "development",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variable overrides. A non-empty path
// that does not exist is an error, never a silent fallback.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the rest of the server assumes.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr: cannot be empty")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl: cannot be negative, got %s", c.Cache.TTL)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.maxEntries: cannot be negative, got %d", c.Cache.MaxEntries)
	}
	if c.Grid.Size < 0 {
		return fmt.Errorf("grid.size: cannot be negative, got %d", c.Grid.Size)
	}
	if c.Contact.SMTPPort < 0 || c.Contact.SMTPPort > 65535 {
		return fmt.Errorf("contact.smtpPort: out of range, got %d", c.Contact.SMTPPort)
	}
	return nil
}

// ContactConfigured reports whether the mail relay has enough settings to
// attempt delivery.
func (c *Config) ContactConfigured() bool {
	return c.Contact.SMTPHost != "" && c.Contact.To != "" && c.Contact.From != ""
}
