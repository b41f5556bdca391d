package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Timeout defaults
	assert.Equal(t, "15s", cfg.Timeouts.GlobalSearch.String(), "default global search timeout")
	assert.Equal(t, "10s", cfg.Timeouts.PerSource.String(), "default per-source timeout")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.False(t, cfg.Logging.Caller)

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Equal(t, "Local", cfg.App.Timezone)

	// Amadeus defaults run from the fixture file
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.False(t, cfg.Amadeus.HasCredentials())
	assert.Equal(t, 50, cfg.Amadeus.MaxResults)
	assert.Equal(t, "USD", cfg.Amadeus.Currency)
	assert.Equal(t, 10.0, cfg.Amadeus.RateLimit)
	assert.Equal(t, 1, cfg.Amadeus.RateBurst)
	assert.Equal(t, "8s", cfg.Amadeus.Timeout.String())
	assert.Equal(t, "data/flight_offers.json", cfg.Amadeus.FixturePath)

	// Cache defaults
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, 0, cfg.Cache.DB)
	assert.Equal(t, "5m0s", cfg.Cache.TTL.String())

	// Session defaults
	assert.Equal(t, "30m0s", cfg.Sessions.IdleTTL.String())
	assert.Equal(t, "1m0s", cfg.Sessions.SweepInterval.String())
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":            "3000",
		"SERVER_READ_TIMEOUT":    "30s",
		"SERVER_WRITE_TIMEOUT":   "45s",
		"TIMEOUT_GLOBAL_SEARCH":  "20s",
		"TIMEOUT_PER_SOURCE":     "12s",
		"LOG_LEVEL":              "debug",
		"LOG_FORMAT":             "console",
		"LOG_CALLER":             "true",
		"APP_ENV":                "production",
		"APP_TIMEZONE":           "America/New_York",
		"AMADEUS_CLIENT_ID":      "id",
		"AMADEUS_CLIENT_SECRET":  "secret",
		"AMADEUS_MAX_RESULTS":    "20",
		"AMADEUS_CURRENCY":       "EUR",
		"CACHE_ENABLED":          "true",
		"REDIS_ADDR":             "redis:6379",
		"REDIS_DB":               "2",
		"CACHE_TTL":              "90s",
		"SESSION_IDLE_TTL":       "1h",
		"SESSION_SWEEP_INTERVAL": "30s",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "45s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "20s", cfg.Timeouts.GlobalSearch.String())
	assert.Equal(t, "12s", cfg.Timeouts.PerSource.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Caller)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "America/New_York", cfg.App.Timezone)
	assert.True(t, cfg.Amadeus.HasCredentials())
	assert.Equal(t, 20, cfg.Amadeus.MaxResults)
	assert.Equal(t, "EUR", cfg.Amadeus.Currency)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis:6379", cfg.Cache.Addr)
	assert.Equal(t, 2, cfg.Cache.DB)
	assert.Equal(t, "1m30s", cfg.Cache.TTL.String())
	assert.Equal(t, "1h0m0s", cfg.Sessions.IdleTTL.String())
	assert.Equal(t, "30s", cfg.Sessions.SweepInterval.String())
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	// Only override port
	setEnvVars(t, map[string]string{
		"SERVER_PORT": "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port, "overridden port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_Errors tests the per-setting validation rules.
func TestLoad_Validation_Errors(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		errMsg string
	}{
		{"zero read timeout", map[string]string{"SERVER_READ_TIMEOUT": "0s"}, "SERVER_READ_TIMEOUT must be positive"},
		{"negative write timeout", map[string]string{"SERVER_WRITE_TIMEOUT": "-1s"}, "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero global search timeout", map[string]string{"TIMEOUT_GLOBAL_SEARCH": "0s"}, "TIMEOUT_GLOBAL_SEARCH must be positive"},
		{"zero per-source timeout", map[string]string{"TIMEOUT_PER_SOURCE": "0s"}, "TIMEOUT_PER_SOURCE must be positive"},
		{
			"per-source equal to global",
			map[string]string{"TIMEOUT_GLOBAL_SEARCH": "5s", "TIMEOUT_PER_SOURCE": "5s"},
			"should be less than",
		},
		{
			"per-source above global",
			map[string]string{"TIMEOUT_GLOBAL_SEARCH": "5s", "TIMEOUT_PER_SOURCE": "10s"},
			"should be less than",
		},
		{"client id without secret", map[string]string{"AMADEUS_CLIENT_ID": "id"}, "must be set together"},
		{"secret without client id", map[string]string{"AMADEUS_CLIENT_SECRET": "secret"}, "must be set together"},
		{"max results too high", map[string]string{"AMADEUS_MAX_RESULTS": "251"}, "AMADEUS_MAX_RESULTS must be between 1 and 250"},
		{"max results zero", map[string]string{"AMADEUS_MAX_RESULTS": "0"}, "AMADEUS_MAX_RESULTS must be between 1 and 250"},
		{"negative rate limit", map[string]string{"AMADEUS_RATE_LIMIT_RPS": "-1"}, "AMADEUS_RATE_LIMIT_RPS must not be negative"},
		{"zero amadeus timeout", map[string]string{"AMADEUS_TIMEOUT": "0s"}, "AMADEUS_TIMEOUT must be positive"},
		{"zero cache ttl", map[string]string{"CACHE_ENABLED": "true", "CACHE_TTL": "0s"}, "CACHE_TTL must be positive"},
		{"zero session ttl", map[string]string{"SESSION_IDLE_TTL": "0s"}, "SESSION_IDLE_TTL must be positive"},
		{"zero sweep interval", map[string]string{"SESSION_SWEEP_INTERVAL": "0s"}, "SESSION_SWEEP_INTERVAL must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_CacheTTLIgnoredWhenDisabled tests that cache settings
// are only checked when the cache is on.
func TestLoad_Validation_CacheTTLIgnoredWhenDisabled(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"CACHE_TTL": "0s"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Cache.Enabled)
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid fatal", "fatal", true},
		// Note: empty string uses default value "info" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", "json", false},
		{"valid console", "console", false},
		{"invalid text", "text", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_READ_TIMEOUT":   "1m30s",
		"SERVER_WRITE_TIMEOUT":  "2m",
		"TIMEOUT_GLOBAL_SEARCH": "500ms",
		"TIMEOUT_PER_SOURCE":    "100ms",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1m30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "2m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "500ms", cfg.Timeouts.GlobalSearch.String())
	assert.Equal(t, "100ms", cfg.Timeouts.PerSource.String())
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_Environment tests the IsDevelopment and IsProduction helpers.
func TestConfig_Environment(t *testing.T) {
	tests := []struct {
		env    string
		isDev  bool
		isProd bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.isDev, cfg.IsDevelopment())
			assert.Equal(t, tt.isProd, cfg.IsProduction())
		})
	}
}

// Helper functions

var configEnvVars = []string{
	"SERVER_PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"TIMEOUT_GLOBAL_SEARCH",
	"TIMEOUT_PER_SOURCE",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"LOG_CALLER",
	"APP_ENV",
	"APP_TIMEZONE",
	"AMADEUS_BASE_URL",
	"AMADEUS_CLIENT_ID",
	"AMADEUS_CLIENT_SECRET",
	"AMADEUS_MAX_RESULTS",
	"AMADEUS_CURRENCY",
	"AMADEUS_RATE_LIMIT_RPS",
	"AMADEUS_RATE_LIMIT_BURST",
	"AMADEUS_TIMEOUT",
	"AMADEUS_FIXTURE_PATH",
	"CACHE_ENABLED",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"REDIS_DB",
	"CACHE_TTL",
	"SESSION_IDLE_TTL",
	"SESSION_SWEEP_INTERVAL",
}

// clearEnvVars unsets all config-related environment variables for the
// duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		// t.Setenv restores the previous value on cleanup
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
