package engine

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/law-makers/statsguru/pkg/models"
)

// PageFetcher retrieves one results page
type PageFetcher interface {
	// Fetch downloads and parses the page with the given 1-based index
	Fetch(ctx context.Context, page int) (*goquery.Document, error)

	// Name returns the name of the fetcher implementation
	Name() string
}

// PageParser turns a results page into records. hasMore is false once the
// source has no further data.
type PageParser interface {
	Parse(doc *goquery.Document) (records []models.InningsRecord, hasMore bool, err error)
}

// RecordSink receives records in the order they were produced
type RecordSink interface {
	Append(rec models.InningsRecord) error
}
