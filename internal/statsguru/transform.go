package statsguru

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/statsguru/pkg/models"
)

// Transform converts the raw rows of one page into records.
//
// Rows are processed in order. The sentinel row stops processing immediately and
// reports hasMore=false, keeping the records already built from earlier rows.
// A malformed row aborts the page with an error.
func Transform(rows [][]string) (records []models.InningsRecord, hasMore bool, err error) {
	for i, raw := range rows {
		if IsSentinel(raw) {
			log.Debug().Int("row", i).Msg("No-records sentinel reached")
			return records, false, nil
		}

		rec, err := BuildRecord(raw)
		if err != nil {
			return records, false, err
		}
		records = append(records, rec)
	}
	return records, true, nil
}

// Parser extracts innings records from a fetched results page
type Parser struct{}

// NewParser creates a Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse locates the innings table in doc and transforms its data rows.
// A page without the innings table is treated as exhausted.
func (p *Parser) Parse(doc *goquery.Document) ([]models.InningsRecord, bool, error) {
	rows, found := Rows(doc)
	if !found {
		log.Warn().Msg("Innings table not found, treating page as exhausted")
		return nil, false, nil
	}

	log.Debug().Int("rows", len(rows)).Msg("Innings table located")
	return Transform(rows)
}
