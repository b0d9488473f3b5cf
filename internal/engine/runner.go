// internal/engine/runner.go
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/law-makers/statsguru/pkg/models"
)

// State of the page loop
type State int

const (
	StateScanning State = iota
	StateDone
)

func (s State) String() string {
	if s == StateDone {
		return "done"
	}
	return "scanning"
}

// Runner walks the results pages from page 1 until the parser reports that no
// data remains. There is no page cap: a source that never serves the sentinel
// keeps the loop running.
type Runner struct {
	fetcher  PageFetcher
	parser   PageParser
	sink     RecordSink
	progress io.Writer
	state    State
	page     int
}

// Option configures a Runner
type Option func(*Runner)

// WithProgress renders a page spinner to w
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progress = w
	}
}

// NewRunner creates a Runner in the scanning state
func NewRunner(f PageFetcher, p PageParser, s RecordSink, opts ...Option) *Runner {
	r := &Runner{
		fetcher: f,
		parser:  p,
		sink:    s,
		state:   StateScanning,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current loop state
func (r *Runner) State() State {
	return r.state
}

// Run fetches, parses and writes pages sequentially. Any error stops the run.
func (r *Runner) Run(ctx context.Context) (models.Summary, error) {
	start := time.Now()
	summary := models.Summary{}

	var bar *progressbar.ProgressBar
	if r.progress != nil {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription("Scraping pages"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
	}

	log.Debug().Str("fetcher", r.fetcher.Name()).Msg("Starting page loop")

	for r.state == StateScanning {
		r.page++

		doc, err := r.fetcher.Fetch(ctx, r.page)
		if err != nil {
			summary.Elapsed = time.Since(start).Milliseconds()
			return summary, fmt.Errorf("page %d: %w", r.page, err)
		}
		summary.Pages++

		records, hasMore, err := r.parser.Parse(doc)
		for _, rec := range records {
			if werr := r.sink.Append(rec); werr != nil {
				summary.Elapsed = time.Since(start).Milliseconds()
				return summary, NewError(ErrCodeOutput, fmt.Sprintf("page %d", r.page), werr)
			}
			summary.Records++
		}
		if err != nil {
			summary.Elapsed = time.Since(start).Milliseconds()
			return summary, fmt.Errorf("page %d: %w", r.page, err)
		}

		log.Info().
			Int("page", r.page).
			Int("records", len(records)).
			Bool("has_more", hasMore).
			Msg("Scraped page")

		if bar != nil {
			bar.Add(1)
		}

		if !hasMore {
			r.state = StateDone
		}
	}

	summary.Elapsed = time.Since(start).Milliseconds()
	log.Info().
		Int("pages", summary.Pages).
		Int("records", summary.Records).
		Int64("elapsed_ms", summary.Elapsed).
		Msg("All done")

	return summary, nil
}
