package dto

import (
	"matchodds/internal/model"

	"github.com/shopspring/decimal"
)

type MatchOddsResponse struct {
	ID        uint64          `json:"id"`
	MatchID   uint64          `json:"matchId"`
	Specifier string          `json:"specifier"`
	Odd       decimal.Decimal `json:"odd"`
}

// MatchResponse carries a match and, when they were requested, its odds
// sorted ascending by id. Odds stays nil when odds were not requested, which
// drops the field from the JSON entirely; an empty collection serializes as [].
type MatchResponse struct {
	ID          uint64               `json:"id"`
	Description string               `json:"description"`
	MatchDate   string               `json:"matchDate"`
	MatchTime   string               `json:"matchTime"`
	TeamA       string               `json:"teamA"`
	TeamB       string               `json:"teamB"`
	Sport       model.Sport          `json:"sport"`
	Odds        *[]MatchOddsResponse `json:"odds,omitempty"`
}

type MatchPage struct {
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int64           `json:"total"`
	Items    []MatchResponse `json:"items"`
}

type MatchOddsPage struct {
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Total    int64               `json:"total"`
	Items    []MatchOddsResponse `json:"items"`
}
