package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Data providers.
const (
	ProviderYahoo   = "yahoo"
	ProviderAlpaca  = "alpaca"
	ProviderPolygon = "polygon"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider  string `yaml:"provider" validate:"oneof=yahoo alpaca polygon"`
		BaseURL   string `yaml:"base_url" validate:"omitempty,url"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"data_source"`
	Alpaca struct {
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
		Feed      string `yaml:"feed" validate:"omitempty,oneof=iex sip otc delayed_sip"`
	} `yaml:"alpaca"`
	Polygon struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"polygon"`
	Log struct {
		Level string `yaml:"level" validate:"oneof=debug info warn error"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy" validate:"omitempty,url"`
}

// Path returns the config file location, honoring CONFIG_PATH.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// Variables already set in the environment take precedence over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.Alpaca.APIKey = v
	}
	if v := os.Getenv("ALPACA_SECRET_KEY"); v != "" {
		cfg.Alpaca.APISecret = v
	}
	if v := os.Getenv("ALPACA_FEED"); v != "" {
		cfg.Alpaca.Feed = v
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.Polygon.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	cfg.DataSource.Provider = strings.ToLower(strings.TrimSpace(cfg.DataSource.Provider))
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = ProviderYahoo
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}

	return cfg, nil
}

// Validate checks field formats and that the selected provider has its credentials.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.DataSource.Provider {
	case ProviderAlpaca:
		if c.Alpaca.APIKey == "" || c.Alpaca.APISecret == "" {
			return fmt.Errorf("alpaca.api_key and alpaca.api_secret are required for the alpaca provider")
		}
	case ProviderPolygon:
		if c.Polygon.APIKey == "" {
			return fmt.Errorf("polygon.api_key is required for the polygon provider")
		}
	}
	return nil
}
