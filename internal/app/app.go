// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/statsguru/internal/config"
	"github.com/law-makers/statsguru/internal/engine"
	"github.com/law-makers/statsguru/internal/fetcher"
	"github.com/law-makers/statsguru/internal/output"
	"github.com/law-makers/statsguru/internal/ratelimit"
	"github.com/law-makers/statsguru/internal/statsguru"
	"github.com/law-makers/statsguru/pkg/models"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to release idle connections on shutdown.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	RateLimiter ratelimit.RateLimiter
	HTTPClient  *http.Client
	Fetcher     *fetcher.Fetcher
	Parser      *statsguru.Parser
	startTime   time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Creates the pacer that spaces page requests
//   - Initializes the HTTP client (optional proxy and timeout)
//   - Creates the page fetcher and parser
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := ConfigureLogging(cfg, os.Stderr)

	rateLimiter := ratelimit.NewHostLimiter(cfg.PageDelay)
	logger.Debug().
		Dur("delay", cfg.PageDelay).
		Msg("Rate limiter initialized")

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: transport,
	}
	logger.Debug().
		Dur("timeout", cfg.HTTPTimeout).
		Str("proxy", cfg.Proxy).
		Msg("HTTP client initialized")

	pageFetcher := fetcher.New(rateLimiter, httpClient, cfg.URLTemplate, cfg.UserAgent, cfg.Headers)

	app := &Application{
		Config:      cfg,
		Logger:      &logger,
		RateLimiter: rateLimiter,
		HTTPClient:  httpClient,
		Fetcher:     pageFetcher,
		Parser:      statsguru.NewParser(),
		startTime:   time.Now(),
	}

	logger.Debug().Msg("Application initialized successfully")
	return app, nil
}

// ConfigureLogging sets the global zerolog level and writer from cfg and returns
// the resulting logger. The default level is warn, so per-page info logs
// only show with --verbose.
func ConfigureLogging(cfg *config.Config, w io.Writer) zerolog.Logger {
	var logLevel zerolog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if cfg.JSONLog {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	}

	log.Logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	return log.Logger
}

// Scrape creates the output file and walks every results page into it.
// progress may be nil to disable the spinner.
func (a *Application) Scrape(ctx context.Context, progress io.Writer) (models.Summary, error) {
	sink, err := output.Create(a.Config.OutputPath)
	if err != nil {
		return models.Summary{}, engine.NewError(engine.ErrCodeOutput, "cannot prepare output", err)
	}

	var opts []engine.Option
	if progress != nil {
		opts = append(opts, engine.WithProgress(progress))
	}

	runner := engine.NewRunner(a.Fetcher, a.Parser, sink, opts...)
	return runner.Run(ctx)
}

// Close gracefully shuts down the application and all its resources.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Debug().Msg("Shutting down application")

	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
