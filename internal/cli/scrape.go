// internal/cli/scrape.go
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/statsguru/internal/config"
	"github.com/law-makers/statsguru/internal/ui"
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Download every innings page into a CSV file",
	Long: `Fetches results pages 1, 2, 3, ... of the innings view and appends one row per
innings to the output file until the site reports that no records remain.

Pages are requested one at a time with a fixed delay between requests. Any
network error, bad status or unrecognised row stops the run; rows already
written stay in the file.`,
	Example: `  # Export all Test innings to all_test_innings.csv
  statsguru scrape

  # Write somewhere else with debug logging
  statsguru scrape -o data/tests.csv -v

  # Export ODI innings instead (class=2)
  statsguru scrape --url-template "http://stats.espncricinfo.com/ci/engine/stats/index.html?class=2;orderby=start;page=%d;template=results;type=team;view=innings" -o all_odi_innings.csv`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	config.RegisterScrapeFlags(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	var progress io.Writer
	if a.Config.LogLevel != "error" && !a.Config.JSONLog {
		progress = os.Stderr
	}

	log.Info().
		Str("output", a.Config.OutputPath).
		Dur("delay", a.Config.PageDelay).
		Msg("Starting scrape")

	summary, err := a.Scrape(cmd.Context(), progress)
	if err != nil {
		log.Error().
			Err(err).
			Int("pages", summary.Pages).
			Int("records", summary.Records).
			Msg("Scrape aborted")
		return err
	}

	if a.Config.LogLevel != "error" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d innings from %d pages written to %s\n",
			ui.Success("✓"), summary.Records, summary.Pages, ui.Bold(a.Config.OutputPath))
	}
	return nil
}
