package statsguru

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/law-makers/statsguru/internal/engine"
	"github.com/law-makers/statsguru/pkg/models"
)

const (
	// cleanedFieldCount is the number of non-empty cells in a well-formed data row:
	// team, score, overs, rpo, lead, innings, result, opposition, ground, start date.
	cleanedFieldCount = 10

	didNotBat           = "DNB"
	defaultBallsPerOver = "6"
)

// BuildRecord converts one raw data row into an InningsRecord.
//
// The cleaned field list is mutated in a fixed order: overs is split in place and
// balls_per_over inserted after it, then runs is inserted before overs, then the
// all-out and declared flags are appended. Both flags are derived from the score
// text exactly as served, including any "/" or trailing "d".
func BuildRecord(raw []string) (models.InningsRecord, error) {
	fields := make([]string, 0, len(raw)+4)
	for _, v := range raw {
		if v != "" {
			fields = append(fields, v)
		}
	}
	if len(fields) != cleanedFieldCount {
		return models.InningsRecord{}, malformed(raw, fmt.Sprintf("expected %d non-empty cells, got %d", cleanedFieldCount, len(fields)))
	}

	score := fields[1]

	overs, ballsPerOver, err := splitOvers(fields[2])
	if err != nil {
		return models.InningsRecord{}, malformed(raw, err.Error())
	}
	fields[2] = overs
	fields = slices.Insert(fields, 3, ballsPerOver)

	fields = slices.Insert(fields, 2, runsFromScore(score))

	fields = append(fields, strconv.Itoa(allOutFlag(score)), strconv.Itoa(declaredFlag(score)))

	return recordFromFields(fields)
}

// splitOvers splits "<overs>" or "<overs>x<balls_per_over>".
func splitOvers(text string) (overs, ballsPerOver string, err error) {
	parts := strings.Split(text, "x")
	switch len(parts) {
	case 1:
		return parts[0], defaultBallsPerOver, nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("unrecognised overs %q", text)
	}
}

func runsFromScore(score string) string {
	runs, _, _ := strings.Cut(score, "/")
	if runs == didNotBat {
		return "0"
	}
	return runs
}

func allOutFlag(score string) int {
	if strings.Contains(score, "/") || score == didNotBat {
		return 0
	}
	return 1
}

func declaredFlag(score string) int {
	if strings.HasSuffix(score, "d") {
		return 1
	}
	return 0
}

func recordFromFields(f []string) (models.InningsRecord, error) {
	if len(f) != len(models.Header) {
		return models.InningsRecord{}, malformed(f, fmt.Sprintf("expected %d columns, got %d", len(models.Header), len(f)))
	}

	allOut, _ := strconv.Atoi(f[12])
	declared, _ := strconv.Atoi(f[13])

	return models.InningsRecord{
		Team:         f[0],
		Score:        f[1],
		Runs:         f[2],
		Overs:        f[3],
		BallsPerOver: f[4],
		RPO:          f[5],
		Lead:         f[6],
		Innings:      f[7],
		Result:       f[8],
		Opposition:   f[9],
		Ground:       f[10],
		StartDate:    f[11],
		AllOut:       allOut,
		Declared:     declared,
	}, nil
}

func malformed(row []string, reason string) error {
	return engine.NewError(engine.ErrCodeMalformedRow, reason, engine.ErrMalformedRow).
		WithDetail("row", row)
}
