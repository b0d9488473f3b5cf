// Package statsguru turns Statsguru "innings" result pages into normalized innings records.
package statsguru

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// InningsCaption identifies the results table; the page also carries summary tables.
	InningsCaption = "Innings by innings list"

	// NoRecordsSentinel is the only cell of the row served past the last page.
	NoRecordsSentinel = "No records available to match this query"

	dataRowSelector = "tr.data1"
)

// FindInningsTable returns the table captioned InningsCaption, if present.
func FindInningsTable(doc *goquery.Document) (*goquery.Selection, bool) {
	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.ChildrenFiltered("caption").Text()) == InningsCaption {
			table = sel
			return false
		}
		return true
	})
	return table, table != nil
}

// Rows returns the trimmed cell texts of every data row of the innings table.
// found is false when the page has no innings table at all.
func Rows(doc *goquery.Document) (rows [][]string, found bool) {
	table, ok := FindInningsTable(doc)
	if !ok {
		return nil, false
	}

	table.Find(dataRowSelector).Each(func(i int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		values := make([]string, 0, cells.Length())
		cells.Each(func(j int, cell *goquery.Selection) {
			values = append(values, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, values)
	})

	return rows, true
}

// IsSentinel reports whether a raw row is the end-of-data marker: exactly one
// non-empty cell reading NoRecordsSentinel, with or without a trailing period.
func IsSentinel(raw []string) bool {
	meaningful := ""
	count := 0
	for _, v := range raw {
		if v == "" {
			continue
		}
		count++
		meaningful = v
	}
	if count != 1 {
		return false
	}
	return strings.TrimSuffix(meaningful, ".") == NoRecordsSentinel
}
