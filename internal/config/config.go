package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Port     string `mapstructure:"PORT"`
	GinMode  string `mapstructure:"GIN_MODE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogFormat is "json" or "console".
	LogFormat string `mapstructure:"LOG_FORMAT"`

	PostgresURL string `mapstructure:"POSTGRES_URL"`
	SeedCatalog bool   `mapstructure:"SEED_CATALOG"`
	RedisURL    string `mapstructure:"REDIS_URL"`

	CatalogCacheTTL      time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	CatalogLookupTimeout time.Duration `mapstructure:"CATALOG_LOOKUP_TIMEOUT"`

	MapboxAccessToken        string  `mapstructure:"MAPBOX_ACCESS_TOKEN"`
	MapboxBaseURL            string  `mapstructure:"MAPBOX_BASE_URL"`
	MapboxRatePerSecond      float64 `mapstructure:"MAPBOX_RATE_PER_SECOND"`
	MapboxResultsPerCategory int     `mapstructure:"MAPBOX_RESULTS_PER_CATEGORY"`

	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var defaults = map[string]any{
	"PORT":                        "8000",
	"GIN_MODE":                    "release",
	"LOG_LEVEL":                   "info",
	"LOG_FORMAT":                  "json",
	"POSTGRES_URL":                "",
	"SEED_CATALOG":                true,
	"REDIS_URL":                   "",
	"CATALOG_CACHE_TTL":           "1h",
	"CATALOG_LOOKUP_TIMEOUT":      "8s",
	"MAPBOX_ACCESS_TOKEN":         "",
	"MAPBOX_BASE_URL":             "https://api.mapbox.com",
	"MAPBOX_RATE_PER_SECOND":      5.0,
	"MAPBOX_RESULTS_PER_CATEGORY": 5,
	"OPENAI_API_KEY":              "",
	"OPENAI_BASE_URL":             "",
	"OPENAI_MODEL":                "gpt-4o-mini",
	"CORS_ALLOWED_ORIGINS":        "*",
}

// Load reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.CatalogCacheTTL <= 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must be positive, got %s", c.CatalogCacheTTL)
	}
	if c.CatalogLookupTimeout <= 0 {
		return fmt.Errorf("CATALOG_LOOKUP_TIMEOUT must be positive, got %s", c.CatalogLookupTimeout)
	}
	if c.MapboxRatePerSecond <= 0 {
		return fmt.Errorf("MAPBOX_RATE_PER_SECOND must be positive, got %v", c.MapboxRatePerSecond)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}
