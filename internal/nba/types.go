package nba

import (
	"fmt"
	"strconv"
)

// Game status codes as reported by the scoreboard endpoint.
const (
	StatusScheduled = 1
	StatusLive      = 2
	StatusFinal     = 3
)

// Game is one row of the scoreboard's GameHeader set.
type Game struct {
	HomeTeamID string
	AwayTeamID string
	StatusID   int
	StatusText string
}

// LineScore is one team's cumulative points in a game. Scheduled games have
// no points yet.
type LineScore struct {
	TeamID string
	Points int
}

// response is the envelope every stats.nba.com endpoint returns: a list of
// named tables, each a header row plus untyped value rows.
type response struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func (r *response) table(name string) (*resultSet, error) {
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("result set %q not found", name)
}

// rows returns the row set after verifying every row carries at least as
// many cells as the header declares, so column indexes resolved from the
// header row can't run past the end of a short row.
func (rs *resultSet) rows() ([][]any, error) {
	for i, row := range rs.RowSet {
		if len(row) < len(rs.Headers) {
			return nil, fmt.Errorf("result set %q row %d has %d cells, want %d", rs.Name, i, len(row), len(rs.Headers))
		}
	}
	return rs.RowSet, nil
}

// column returns the index of a named column, so rows survive the provider
// reordering its tables.
func (rs *resultSet) column(name string) (int, error) {
	for i, header := range rs.Headers {
		if header == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in result set %q", name, rs.Name)
}

// asString renders an untyped cell as a string. Numeric ids come back as
// JSON numbers, so they are formatted without a decimal part.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// asInt renders an untyped cell as an int, treating null as 0.
func asInt(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		n, _ := strconv.Atoi(val)
		return n
	default:
		return 0
	}
}
