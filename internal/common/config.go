// Package common provides shared utilities for tickerview
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for tickerview
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	WebRoot string `toml:"web_root"` // Directory served at "/" when present
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
}

// GeminiConfig holds Gemini API configuration.
// APIKey is never logged or rendered in the banner.
type GeminiConfig struct {
	BaseURL    string `toml:"base_url"`
	APIVersion string `toml:"api_version"`
	APIKey     string `toml:"api_key"`
	Model      string `toml:"model"`
	Timeout    string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// HasAPIKey reports whether a credential has been configured.
func (c *GeminiConfig) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    5000,
			WebRoot: "web",
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				BaseURL:    "https://generativelanguage.googleapis.com/",
				APIVersion: "v1beta",
				Model:      "gemini-2.5-flash-lite",
				Timeout:    "30s",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is loaded first; variables already
// present in the environment win over it.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	_ = godotenv.Load()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TICKERVIEW_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("TICKERVIEW_HOST"); host != "" {
		config.Server.Host = host
	}

	// PORT is honoured for platform deployments; TICKERVIEW_PORT wins when both are set
	for _, name := range []string{"PORT", "TICKERVIEW_PORT"} {
		if port := os.Getenv(name); port != "" {
			if p, err := strconv.Atoi(port); err == nil {
				config.Server.Port = p
			}
		}
	}

	if root := os.Getenv("TICKERVIEW_WEB_ROOT"); root != "" {
		config.Server.WebRoot = root
	}

	if level := os.Getenv("TICKERVIEW_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("TICKERVIEW_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	if v := os.Getenv("TICKERVIEW_GEMINI_BASE_URL"); v != "" {
		config.Clients.Gemini.BaseURL = v
	}
	if v := os.Getenv("TICKERVIEW_GEMINI_API_VERSION"); v != "" {
		config.Clients.Gemini.APIVersion = v
	}
	if v := os.Getenv("TICKERVIEW_GEMINI_MODEL"); v != "" {
		config.Clients.Gemini.Model = v
	}
	if v := os.Getenv("TICKERVIEW_GEMINI_TIMEOUT"); v != "" {
		config.Clients.Gemini.Timeout = v
	}

	if key := ResolveAPIKey(config.Clients.Gemini.APIKey); key != "" {
		config.Clients.Gemini.APIKey = key
	}
}

// ResolveAPIKey resolves the Gemini API key from the environment, falling back
// to the configured value. Returns an empty string when nothing is set.
func ResolveAPIKey(fallback string) string {
	for _, name := range []string{"GEMINI_API_KEY", "TICKERVIEW_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return strings.TrimSpace(fallback)
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
