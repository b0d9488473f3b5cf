// Package fetcher downloads Statsguru result pages and parses them into goquery documents.
package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"

	"github.com/law-makers/statsguru/internal/engine"
	"github.com/law-makers/statsguru/internal/ratelimit"
	"github.com/law-makers/statsguru/internal/reqctx"
)

// Fetcher retrieves one results page per call. It never retries.
type Fetcher struct {
	limiter     ratelimit.RateLimiter
	client      *http.Client
	urlTemplate string
	userAgent   string
	headers     map[string]string
}

// New creates a Fetcher. urlTemplate must contain a single %d verb for the page index.
func New(lim ratelimit.RateLimiter, client *http.Client, urlTemplate, ua string, headers map[string]string) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if lim == nil {
		lim = ratelimit.NewHostLimiter(0)
	}
	return &Fetcher{
		limiter:     lim,
		client:      client,
		urlTemplate: urlTemplate,
		userAgent:   ua,
		headers:     headers,
	}
}

// Name returns the name of this fetcher
func (f *Fetcher) Name() string {
	return "StatsguruFetcher"
}

// URL returns the request target for the given page index
func (f *Fetcher) URL(page int) string {
	return fmt.Sprintf(f.urlTemplate, page)
}

// Fetch waits for the pacer, downloads the page and parses it.
func (f *Fetcher) Fetch(ctx context.Context, page int) (*goquery.Document, error) {
	if page < 1 {
		return nil, engine.NewError(engine.ErrCodeValidation, fmt.Sprintf("page %d", page), engine.ErrInvalidPage)
	}

	ctx = reqctx.WithRequestContext(ctx, page)
	rc := reqctx.GetRequestContext(ctx)
	target := f.URL(page)

	if err := f.limiter.Wait(ctx, target); err != nil {
		return nil, engine.NewError(engine.ErrCodeNetworkError, "rate limiter wait aborted", reqctx.NewRequestError(ctx, err))
	}

	log.Debug().
		Str("request_id", rc.RequestID).
		Int("page", page).
		Str("url", target).
		Str("fetcher", f.Name()).
		Msg("Starting fetch")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, engine.NewError(engine.ErrCodeValidation, "failed to create request", reqctx.NewRequestError(ctx, err)).
			WithDetail("url", target)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, engine.NewError(engine.ErrCodeNetworkError, "failed to fetch page",
			reqctx.NewRequestError(ctx, fmt.Errorf("%w: %w", engine.ErrNetworkError, err))).
			WithDetail("url", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: target}
		return nil, engine.NewError(engine.ErrCodeHTTPStatus, "unexpected response status",
			reqctx.NewRequestError(ctx, statusErr)).
			WithDetail("status", resp.StatusCode)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, engine.NewError(engine.ErrCodeParseError, "failed to decode response body",
			reqctx.NewRequestError(ctx, fmt.Errorf("%w: %w", engine.ErrParseError, err)))
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, engine.NewError(engine.ErrCodeParseError, "failed to parse HTML",
			reqctx.NewRequestError(ctx, fmt.Errorf("%w: %w", engine.ErrParseError, err)))
	}

	log.Debug().
		Str("request_id", rc.RequestID).
		Int("page", page).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", time.Since(rc.StartTime).Milliseconds()).
		Msg("Fetch completed")

	return doc, nil
}
