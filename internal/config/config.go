package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig      `toml:"api"`
	Fallback FallbackConfig `toml:"fallback"`
	Stub     StubConfig     `toml:"stub"`
}

// APIConfig holds settings for the remote catalog and recommendation
// services.
type APIConfig struct {
	BaseURL string `toml:"base_url"`

	// RecommendationsURL overrides where recommendations are fetched from.
	// Empty means the catalog base URL.
	RecommendationsURL string `toml:"recommendations_url"`

	TimeoutSeconds int     `toml:"timeout_seconds"`
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
}

// FallbackConfig holds fallback policy settings.
type FallbackConfig struct {
	// DeletePolicy is "best-effort" (a failed delete is reported as
	// completed) or "strict" (the failure propagates).
	DeletePolicy string `toml:"delete_policy"`
}

// StubConfig holds settings for the local stub catalog server.
type StubConfig struct {
	Port    int    `toml:"port"`
	DataDir string `toml:"data_dir"`
}

const defaultConfigContent = `[api]
base_url = "http://localhost:3000/api"   # Catalog service base URL
recommendations_url = ""                 # Empty: same as base_url
timeout_seconds = 15
rate_limit_rps = 10.0

[fallback]
delete_policy = "best-effort"            # "best-effort" or "strict"

[stub]
port = 3000
data_dir = "./data"
`

// Load reads and parses the TOML config from the given path. If the file
// does not exist, it creates a default config file at that path.
// Environment variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "timeout_seconds = 0" is an error rather than
	// silently being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Timeout returns the configured request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// RecommendationsBase returns the base URL for the recommendation endpoint,
// defaulting to the catalog base URL.
func (c *Config) RecommendationsBase() string {
	if c.API.RecommendationsURL != "" {
		return c.API.RecommendationsURL
	}
	return c.API.BaseURL
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("api", "timeout_seconds") {
		if cfg.API.TimeoutSeconds < 1 {
			return fmt.Errorf("invalid api.timeout_seconds %d: must be >= 1", cfg.API.TimeoutSeconds)
		}
	}
	if md.IsDefined("stub", "port") {
		if cfg.Stub.Port < 1 || cfg.Stub.Port > 65535 {
			return fmt.Errorf("invalid stub.port %d: must be between 1 and 65535", cfg.Stub.Port)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:3000/api"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 15
	}
	if cfg.API.RateLimitRPS == 0 {
		cfg.API.RateLimitRPS = 10
	}
	if cfg.Fallback.DeletePolicy == "" {
		cfg.Fallback.DeletePolicy = "best-effort"
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = 3000
	}
	if cfg.Stub.DataDir == "" {
		cfg.Stub.DataDir = "./data"
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BOOKDEN_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("BOOKDEN_RECOMMENDATIONS_URL"); v != "" {
		cfg.API.RecommendationsURL = v
	}
	if v := os.Getenv("BOOKDEN_DELETE_POLICY"); v != "" {
		cfg.Fallback.DeletePolicy = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	switch cfg.Fallback.DeletePolicy {
	case "best-effort", "strict":
		// valid
	default:
		return fmt.Errorf("invalid fallback.delete_policy %q: must be \"best-effort\" or \"strict\"", cfg.Fallback.DeletePolicy)
	}

	if cfg.API.TimeoutSeconds < 1 {
		return fmt.Errorf("invalid api.timeout_seconds %d: must be >= 1", cfg.API.TimeoutSeconds)
	}
	if cfg.API.RateLimitRPS <= 0 {
		return fmt.Errorf("invalid api.rate_limit_rps %v: must be > 0", cfg.API.RateLimitRPS)
	}
	if cfg.Stub.Port < 1 || cfg.Stub.Port > 65535 {
		return fmt.Errorf("invalid stub.port %d: must be between 1 and 65535", cfg.Stub.Port)
	}

	return nil
}
