package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"azure-cost-planner/internal/estimate"
)

// Price source identifiers.
const (
	SourceStatic = "static"
	SourceRetail = "retail"
)

// Config captures the runtime settings for the planner.
type Config struct {
	ListenAddr             string        `yaml:"listenAddr"`
	LogLevel               string        `yaml:"logLevel"`
	Currency               string        `yaml:"currency"`
	DefaultHours           int           `yaml:"defaultHours"`
	PriceSource            string        `yaml:"priceSource"`
	ShutdownTimeoutSeconds int           `yaml:"shutdownTimeoutSeconds"`
	Session                SessionConfig `yaml:"session"`
}

// SessionConfig controls the cookie that remembers a user's last inputs.
type SessionConfig struct {
	Secret        string `yaml:"secret"`
	CookieName    string `yaml:"cookieName"`
	MaxAgeSeconds int    `yaml:"maxAgeSeconds"`
}

// DefaultConfig returns sane defaults for the planner.
func DefaultConfig() Config {
	return Config{
		ListenAddr:             ":8080",
		LogLevel:               "info",
		Currency:               estimate.DefaultCurrency,
		DefaultHours:           estimate.DefaultHoursPerMonth,
		PriceSource:            SourceStatic,
		ShutdownTimeoutSeconds: 10,
		Session: SessionConfig{
			CookieName:    "planner-session",
			MaxAgeSeconds: 86400,
		},
	}
}

// ShutdownTimeout returns the graceful shutdown budget.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Load builds the configuration by merging defaults, the optional file, and environment.
// An empty path falls back to PLANNER_CONFIG_FILE.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = envOrDefault("PLANNER_CONFIG_FILE", "")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Validate checks the merged configuration. Call it after flag overrides are applied.
func (c Config) Validate() error {
	if _, err := estimate.ParseCurrency(c.Currency); err != nil {
		return fmt.Errorf("currency: %w", err)
	}
	if err := estimate.ValidateHours(c.DefaultHours); err != nil {
		return fmt.Errorf("defaultHours: %w", err)
	}
	switch c.PriceSource {
	case SourceStatic, SourceRetail:
	default:
		return fmt.Errorf("priceSource must be %q or %q, got %q", SourceStatic, SourceRetail, c.PriceSource)
	}
	if c.ListenAddr == "" {
		return errors.New("listenAddr must not be empty")
	}
	if c.Session.MaxAgeSeconds < 0 {
		return errors.New("session maxAgeSeconds must be non-negative")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path provided by the operator
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	type fileConfig Config
	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	mergeConfigs(cfg, Config(fileCfg))
	return nil
}

func mergeConfigs(base *Config, override Config) {
	if override.ListenAddr != "" {
		base.ListenAddr = override.ListenAddr
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.Currency != "" {
		base.Currency = override.Currency
	}
	if override.DefaultHours != 0 {
		base.DefaultHours = override.DefaultHours
	}
	if override.PriceSource != "" {
		base.PriceSource = override.PriceSource
	}
	if override.ShutdownTimeoutSeconds != 0 {
		base.ShutdownTimeoutSeconds = override.ShutdownTimeoutSeconds
	}
	if override.Session.Secret != "" {
		base.Session.Secret = override.Session.Secret
	}
	if override.Session.CookieName != "" {
		base.Session.CookieName = override.Session.CookieName
	}
	if override.Session.MaxAgeSeconds != 0 {
		base.Session.MaxAgeSeconds = override.Session.MaxAgeSeconds
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLANNER_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("PLANNER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PLANNER_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("PLANNER_DEFAULT_HOURS"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			cfg.DefaultHours = iv
		}
	}
	if v := os.Getenv("PLANNER_PRICE_SOURCE"); v != "" {
		cfg.PriceSource = v
	}
	if v := os.Getenv("PLANNER_SHUTDOWN_TIMEOUT"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			cfg.ShutdownTimeoutSeconds = iv
		}
	}
	if v := os.Getenv("PLANNER_SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
	if v := os.Getenv("PLANNER_SESSION_COOKIE"); v != "" {
		cfg.Session.CookieName = v
	}
	if v := os.Getenv("PLANNER_SESSION_MAX_AGE"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			cfg.Session.MaxAgeSeconds = iv
		}
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
