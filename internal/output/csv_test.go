package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/law-makers/statsguru/pkg/models"
)

const header = "team,score,runs,overs,balls_per_over,rpo,lead,innings,result,opposition,ground,start_date,all_out_flag,declared_flag"

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestCreate_WritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "innings.csv")

	sink, err := Create(path)
	require.NoError(t, err)
	require.Equal(t, path, sink.Path())
	require.Equal(t, []string{header}, readLines(t, path))
}

func TestCreate_TruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "innings.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale\nrows\n"), 0644))

	_, err := Create(path)
	require.NoError(t, err)
	require.Equal(t, []string{header}, readLines(t, path))
}

func TestAppend_WritesRecordsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "innings.csv")
	sink, err := Create(path)
	require.NoError(t, err)

	first := models.InningsRecord{
		Team: "India", Score: "250/4d", Runs: "250", Overs: "50.0", BallsPerOver: "6",
		RPO: "4.50", Lead: "120", Innings: "1", Result: "won", Opposition: "v Australia",
		Ground: "Lord's", StartDate: "1 Jan 2020", AllOut: 0, Declared: 1,
	}
	second := models.InningsRecord{
		Team: "Australia", Score: "180", Runs: "180", Overs: "45.2", BallsPerOver: "8",
		RPO: "3.97", Lead: "-75", Innings: "2", Result: "drawn", Opposition: "v England",
		Ground: "Melbourne, Victoria", StartDate: "31 Dec 1936", AllOut: 1, Declared: 0,
	}

	require.NoError(t, sink.Append(first))
	require.NoError(t, sink.Append(second))
	require.Equal(t, 2, sink.Written())

	lines := readLines(t, path)
	require.Equal(t, []string{
		header,
		"India,250/4d,250,50.0,6,4.50,120,1,won,v Australia,Lord's,1 Jan 2020,0,1",
		`Australia,180,180,45.2,8,3.97,-75,2,drawn,v England,"Melbourne, Victoria",31 Dec 1936,1,0`,
	}, lines)
}

func TestAppend_MissingFile(t *testing.T) {
	sink := &CSVSink{path: filepath.Join(t.TempDir(), "missing", "innings.csv")}
	require.Error(t, sink.Append(models.InningsRecord{}))
}

func TestHeaderMatchesRecordTags(t *testing.T) {
	require.Equal(t, header, strings.Join(models.Header, ","))
}
