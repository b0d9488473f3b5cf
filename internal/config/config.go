package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	headersutil "github.com/law-makers/statsguru/internal/utils/headers"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
	Proxy       string
	Headers     map[string]string

	// Scrape
	URLTemplate string
	OutputPath  string
	PageDelay   time.Duration
}

// Default returns a Config populated with the default constants
func Default() *Config {
	return &Config{
		LogLevel:    DefaultLogLevel,
		JSONLog:     DefaultJSONLog,
		HTTPTimeout: DefaultHTTPTimeout,
		UserAgent:   DefaultUserAgent,
		Headers:     map[string]string{},
		URLTemplate: DefaultURLTemplate,
		OutputPath:  DefaultOutputPath,
		PageDelay:   DefaultPageDelay,
	}
}

// Load builds a Config by combining defaults, environment variables, and CLI flags.
// Caller should pass the executing *cobra.Command so both persistent and local flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Default()

	if v := os.Getenv("STATSGURU_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("STATSGURU_PROXY"); v != "" {
		cfg.Proxy = v
	}

	if cmd != nil {
		flags := cmd.Flags()
		if f := flags.Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.UserAgent = s
			}
		}
		if f := flags.Lookup("proxy"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Proxy = s
			}
		}
		if f := flags.Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				d, err := time.ParseDuration(s)
				if err != nil {
					return nil, fmt.Errorf("invalid timeout %q: %w", s, err)
				}
				cfg.HTTPTimeout = d
			}
		}
		if h, err := flags.GetStringArray("header"); err == nil {
			cfg.Headers = headersutil.ParseHeaders(h)
		}
		if f := flags.Lookup("json"); f != nil && f.Value.String() == "true" {
			cfg.JSONLog = true
		}
		if f := flags.Lookup("quiet"); f != nil && f.Value.String() == "true" {
			cfg.LogLevel = "error"
		}
		if f := flags.Lookup("verbose"); f != nil && f.Value.String() == "true" {
			cfg.LogLevel = "debug"
		}
		if s, err := flags.GetString("output"); err == nil && s != "" {
			cfg.OutputPath = s
		}
		if s, err := flags.GetString("url-template"); err == nil && s != "" {
			cfg.URLTemplate = s
		}
		if d, err := flags.GetDuration("delay"); err == nil {
			cfg.PageDelay = d
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
