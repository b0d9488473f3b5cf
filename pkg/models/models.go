package models

import "strconv"

// Header is the fixed column order of the innings CSV export.
var Header = []string{
	"team", "score", "runs", "overs", "balls_per_over", "rpo", "lead",
	"innings", "result", "opposition", "ground", "start_date",
	"all_out_flag", "declared_flag",
}

// InningsRecord is one normalized row of the "Innings by innings list" table
type InningsRecord struct {
	Team         string `csv:"team"`
	Score        string `csv:"score"`
	Runs         string `csv:"runs"`
	Overs        string `csv:"overs"`
	BallsPerOver string `csv:"balls_per_over"`
	RPO          string `csv:"rpo"`
	Lead         string `csv:"lead"`
	Innings      string `csv:"innings"`
	Result       string `csv:"result"`
	Opposition   string `csv:"opposition"`
	Ground       string `csv:"ground"`
	StartDate    string `csv:"start_date"`
	AllOut       int    `csv:"all_out_flag"`
	Declared     int    `csv:"declared_flag"`
}

// Fields returns the record as a slice in Header order.
func (r InningsRecord) Fields() []string {
	return []string{
		r.Team, r.Score, r.Runs, r.Overs, r.BallsPerOver, r.RPO, r.Lead,
		r.Innings, r.Result, r.Opposition, r.Ground, r.StartDate,
		strconv.Itoa(r.AllOut), strconv.Itoa(r.Declared),
	}
}

// Summary describes a completed scrape run
type Summary struct {
	Pages   int   `json:"pages"`
	Records int   `json:"records"`
	Elapsed int64 `json:"elapsed_ms"`
}
