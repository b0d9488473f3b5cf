package fetcher

import "fmt"

// StatusError is returned when the stats engine answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Status, e.URL)
}

// GetStatusCode returns the HTTP status code
func (e *StatusError) GetStatusCode() int {
	return e.StatusCode
}
