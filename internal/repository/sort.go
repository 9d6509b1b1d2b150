package repository

import (
	"strings"

	"matchodds/internal/apperr"
)

var matchSortColumns = map[string]string{
	"id":          "id",
	"description": "description",
	"matchDate":   "match_date",
	"match_date":  "match_date",
	"matchTime":   "match_time",
	"match_time":  "match_time",
	"teamA":       "team_a",
	"team_a":      "team_a",
	"teamB":       "team_b",
	"team_b":      "team_b",
	"sport":       "sport",
}

var oddsSortColumns = map[string]string{
	"id":        "id",
	"specifier": "specifier",
	"odd":       "odd",
}

// MatchSortExpr translates a "field,asc|desc" sort parameter into an ORDER BY
// expression over the matches table. Unknown fields are rejected rather than
// passed through to SQL.
func MatchSortExpr(sort string) (string, error) {
	return sortExpr(sort, matchSortColumns)
}

// OddsSortExpr is the odds-table counterpart of MatchSortExpr.
func OddsSortExpr(sort string) (string, error) {
	return sortExpr(sort, oddsSortColumns)
}

func sortExpr(sort string, columns map[string]string) (string, error) {
	if strings.TrimSpace(sort) == "" {
		return "id ASC", nil
	}
	parts := strings.SplitN(sort, ",", 2)
	field := strings.TrimSpace(parts[0])
	column, ok := columns[field]
	if !ok {
		return "", apperr.Validation("unknown sort field: %s", field)
	}
	direction := "ASC"
	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "", "asc":
		case "desc":
			direction = "DESC"
		default:
			return "", apperr.Validation("invalid sort direction: %s", strings.TrimSpace(parts[1]))
		}
	}
	if column == "id" {
		return column + " " + direction, nil
	}
	// secondary id key keeps page boundaries stable under equal sort values
	return column + " " + direction + ", id ASC", nil
}
