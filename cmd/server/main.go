// Package main is the entry point for the flight result engine service.
//
//	@title						Flight Result Engine API
//	@version					1.0.0
//	@description				Flight search sessions over the Amadeus flight offers API: filter, sort and chart the results of a search.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-result-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-result-engine/docs"

	// Application layers
	"github.com/flight-search/flight-result-engine/internal/adapter/airport"
	flighthttp "github.com/flight-search/flight-result-engine/internal/adapter/http"
	"github.com/flight-search/flight-result-engine/internal/adapter/http/middleware"
	"github.com/flight-search/flight-result-engine/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-result-engine/internal/cache"
	"github.com/flight-search/flight-result-engine/internal/config"
	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-result-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-result-engine/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("live_source", cfg.Amadeus.HasCredentials()).
		Bool("cache", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	loc, err := timeutil.ResolveLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("Invalid APP_TIMEZONE")
	}

	airports, err := airport.LoadDefault()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load airport directory")
	}

	searchCache := setupCache(ctx, cfg, appLog)
	defer func() {
		if err := searchCache.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing search cache")
		}
	}()

	// Sessions are swept in the background until shutdown
	sessions := usecase.NewSessionManager(timeutil.Real, appLog)
	go sessions.Run(ctx, cfg.Sessions.SweepInterval, cfg.Sessions.IdleTTL)

	flightUseCase := usecase.NewFlightSearchUseCase(
		[]domain.FlightSource{setupSource(cfg, loc, appLog)},
		sessions,
		searchCache,
		appLog,
		&usecase.Config{
			GlobalTimeout: cfg.Timeouts.GlobalSearch,
			SourceTimeout: cfg.Timeouts.PerSource,
		},
	)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithConfig(e, appLog, middleware.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	})

	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(flightUseCase, airports))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Int("airports", airports.Len()).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, stop)
}

// setupLogger builds the application logger from config and installs it as
// the global zerolog logger.
func setupLogger(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	l := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  "flight-result-engine",
	})
	logger.SetGlobal(l)
	return l
}

// setupSource picks the live Amadeus API when credentials are configured
// and the fixture file otherwise.
func setupSource(cfg *config.Config, loc *time.Location, l zerolog.Logger) domain.FlightSource {
	if !cfg.Amadeus.HasCredentials() {
		log.Warn().Str("path", cfg.Amadeus.FixturePath).Msg("No Amadeus credentials, serving searches from fixture file")
		return amadeus.NewFileSource(cfg.Amadeus.FixturePath, loc, l)
	}

	return amadeus.NewClient(amadeus.Config{
		BaseURL:           cfg.Amadeus.BaseURL,
		ClientID:          cfg.Amadeus.ClientID,
		ClientSecret:      cfg.Amadeus.ClientSecret,
		MaxResults:        cfg.Amadeus.MaxResults,
		Currency:          cfg.Amadeus.Currency,
		RequestsPerSecond: cfg.Amadeus.RateLimit,
		Burst:             cfg.Amadeus.RateBurst,
		Timeout:           cfg.Amadeus.Timeout,
		Location:          loc,
	}, l)
}

// setupCache connects the Redis search cache. An unreachable Redis disables
// caching instead of stopping the service.
func setupCache(ctx context.Context, cfg *config.Config, l zerolog.Logger) cache.SearchCache {
	if !cfg.Cache.Enabled {
		return cache.NewNoOpCache()
	}

	redisCache, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL,
	})
	if err != nil {
		l.Warn().Err(err).Msg("Search cache unavailable, continuing without cache")
		return cache.NewNoOpCache()
	}

	l.Info().Str("addr", cfg.Cache.Addr).Dur("ttl", cfg.Cache.TTL).Msg("Search cache connected")
	return redisCache
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, stopBackground context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
