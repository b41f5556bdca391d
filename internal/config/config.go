// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Amadeus  AmadeusConfig
	Cache    CacheConfig
	Sessions SessionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds timeout settings for flight search operations.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"15s"`
	PerSource    time.Duration `env:"TIMEOUT_PER_SOURCE" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone is used for provider timestamps that carry no UTC offset
	Timezone string `env:"APP_TIMEZONE" envDefault:"Local"`
}

// AmadeusConfig holds the flight offers API settings. Without credentials
// the service answers searches from FixturePath.
type AmadeusConfig struct {
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	ClientID     string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET"`
	MaxResults   int           `env:"AMADEUS_MAX_RESULTS" envDefault:"50"`
	Currency     string        `env:"AMADEUS_CURRENCY" envDefault:"USD"`
	RateLimit    float64       `env:"AMADEUS_RATE_LIMIT_RPS" envDefault:"10"`
	RateBurst    int           `env:"AMADEUS_RATE_LIMIT_BURST" envDefault:"1"`
	Timeout      time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"8s"`
	FixturePath  string        `env:"AMADEUS_FIXTURE_PATH" envDefault:"data/flight_offers.json"`
}

// HasCredentials reports whether the live API can be used.
func (c AmadeusConfig) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// CacheConfig holds the Redis search cache settings.
type CacheConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// SessionConfig holds the search session lifetime settings.
type SessionConfig struct {
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.GlobalSearch <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_SEARCH must be positive")
	}
	if cfg.Timeouts.PerSource <= 0 {
		return fmt.Errorf("TIMEOUT_PER_SOURCE must be positive")
	}

	// Validate per-source timeout is less than global timeout
	if cfg.Timeouts.PerSource >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_PER_SOURCE (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.PerSource, cfg.Timeouts.GlobalSearch)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	// One credential without the other is a misconfiguration, not fixture mode
	if (cfg.Amadeus.ClientID == "") != (cfg.Amadeus.ClientSecret == "") {
		return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET must be set together")
	}
	if cfg.Amadeus.HasCredentials() && cfg.Amadeus.BaseURL == "" {
		return fmt.Errorf("AMADEUS_BASE_URL is required when credentials are set")
	}
	if !cfg.Amadeus.HasCredentials() && cfg.Amadeus.FixturePath == "" {
		return fmt.Errorf("AMADEUS_FIXTURE_PATH is required when no credentials are set")
	}
	if cfg.Amadeus.MaxResults < 1 || cfg.Amadeus.MaxResults > 250 {
		return fmt.Errorf("AMADEUS_MAX_RESULTS must be between 1 and 250, got %d", cfg.Amadeus.MaxResults)
	}
	if cfg.Amadeus.RateLimit < 0 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT_RPS must not be negative")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_ENABLED is true")
		}
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive")
		}
	}

	if cfg.Sessions.IdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be positive")
	}
	if cfg.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
