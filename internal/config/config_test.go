package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newCmd(args ...string) *cobra.Command {
	root := &cobra.Command{Use: "statsguru"}
	RegisterFlags(root)
	scrape := &cobra.Command{Use: "scrape", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	RegisterScrapeFlags(scrape)
	root.AddCommand(scrape)

	root.SetArgs(append([]string{"scrape"}, args...))
	cmd, err := root.ExecuteC()
	if err != nil {
		panic(err)
	}
	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STATSGURU_USER_AGENT", "")
	t.Setenv("STATSGURU_PROXY", "")

	cfg, err := Load(newCmd())
	require.NoError(t, err)
	require.Equal(t, DefaultURLTemplate, cfg.URLTemplate)
	require.Equal(t, DefaultOutputPath, cfg.OutputPath)
	require.Equal(t, DefaultPageDelay, cfg.PageDelay)
	require.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	require.Equal(t, DefaultUserAgent, cfg.UserAgent)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Empty(t, cfg.Headers)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(newCmd(
		"-o", "odi.csv",
		"--url-template", "https://stats.example.com/?class=2;page=%d",
		"--delay", "250ms",
		"--timeout", "15s",
		"-H", "Accept-Language: en-GB",
		"--json",
		"-v",
	))
	require.NoError(t, err)
	require.Equal(t, "odi.csv", cfg.OutputPath)
	require.Equal(t, "https://stats.example.com/?class=2;page=%d", cfg.URLTemplate)
	require.Equal(t, 250*time.Millisecond, cfg.PageDelay)
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	require.Equal(t, map[string]string{"Accept-Language": "en-GB"}, cfg.Headers)
	require.True(t, cfg.JSONLog)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STATSGURU_USER_AGENT", "EnvAgent/2.0")
	t.Setenv("STATSGURU_PROXY", "http://127.0.0.1:8080")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "EnvAgent/2.0", cfg.UserAgent)
	require.Equal(t, "http://127.0.0.1:8080", cfg.Proxy)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"negative delay":   func(c *Config) { c.PageDelay = -time.Second },
		"negative timeout": func(c *Config) { c.HTTPTimeout = -time.Second },
		"no page verb":     func(c *Config) { c.URLTemplate = "http://stats.example.com/?page=1" },
		"two page verbs":   func(c *Config) { c.URLTemplate = "http://stats.example.com/?page=%d;p=%d" },
		"bad scheme":       func(c *Config) { c.URLTemplate = "ftp://stats.example.com/?page=%d" },
		"empty output":     func(c *Config) { c.OutputPath = "" },
		"bad proxy":        func(c *Config) { c.Proxy = "gopher://proxy" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			require.Error(t, validate(cfg))
		})
	}

	require.NoError(t, validate(Default()))
}
