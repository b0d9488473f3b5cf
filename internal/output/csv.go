// Package output writes innings records to the CSV export.
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/statsguru/pkg/models"
)

// CSVSink appends records to a CSV file, reopening it for every record so that
// everything written survives an abrupt end of the run.
type CSVSink struct {
	path    string
	written int
}

// Create truncates (or creates) path and writes the header line.
func Create(path string) (*CSVSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(models.Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	log.Debug().Str("file", path).Msg("Output file created")
	return &CSVSink{path: path}, nil
}

// Append writes one record as a single CSV line.
func (s *CSVSink) Append(rec models.InningsRecord) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalWithoutHeaders([]models.InningsRecord{rec}, file); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	s.written++
	return nil
}

// Path returns the file the sink writes to
func (s *CSVSink) Path() string {
	return s.path
}

// Written returns how many records have been appended
func (s *CSVSink) Written() int {
	return s.written
}
