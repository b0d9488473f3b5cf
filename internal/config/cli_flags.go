package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().Bool("json", false, "Log in JSON format")
	cmd.PersistentFlags().String("proxy", "", "Set HTTP/SOCKS5 proxy (e.g., http://localhost:8080)")
	cmd.PersistentFlags().String("timeout", DefaultHTTPTimeout.String(), "Hard timeout per request (0 disables)")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().StringArrayP("header", "H", []string{}, "Custom headers (e.g., -H \"Accept-Language: en-GB\")")
}

// RegisterScrapeFlags registers the flags of the scrape command
func RegisterScrapeFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.Flags().StringP("output", "o", DefaultOutputPath, "CSV file to write (truncated at start)")
	cmd.Flags().String("url-template", DefaultURLTemplate, "Results URL with a single %d for the page index")
	cmd.Flags().Duration("delay", DefaultPageDelay, "Minimum delay between page requests")
}
