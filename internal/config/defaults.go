package config

import "time"

// Default constants for application configuration. Running with no flags
// reproduces the fixed Test-innings export.
const (
	DefaultLogLevel    = "warn"
	DefaultJSONLog     = false
	DefaultUserAgent   = "Statsguru/1.0 (https://github.com/law-makers/statsguru)"
	DefaultURLTemplate = "http://stats.espncricinfo.com/ci/engine/stats/index.html?class=1;orderby=start;page=%d;template=results;type=team;view=innings"
	DefaultOutputPath  = "all_test_innings.csv"
	DefaultPageDelay   = 1 * time.Second
	// No timeout: a hung transport hangs the run.
	DefaultHTTPTimeout = 0 * time.Second
)
