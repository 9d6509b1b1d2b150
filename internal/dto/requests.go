package dto

import (
	"strings"
	"time"

	"matchodds/internal/apperr"
	"matchodds/internal/model"

	"github.com/shopspring/decimal"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	timeLayoutLong  = "15:04:05"
	maxOddIntegers  = 3
	maxOddFraction  = 3
	maxSpecifierLen = 16
)

// MatchRequest creates or fully replaces a match. Odds is tri-state: nil
// leaves the existing odds collection untouched on update, an empty slice
// clears it, a populated slice replaces it.
type MatchRequest struct {
	Description string              `json:"description"`
	MatchDate   string              `json:"matchDate"`
	MatchTime   string              `json:"matchTime"`
	TeamA       string              `json:"teamA"`
	TeamB       string              `json:"teamB"`
	Sport       model.Sport         `json:"sport"`
	Odds        *[]MatchOddsRequest `json:"odds"`
}

// MatchOddsRequest creates or fully replaces a single odds row.
type MatchOddsRequest struct {
	Specifier string          `json:"specifier"`
	Odd       decimal.Decimal `json:"odd"`
}

// OddsOrNil flattens the tri-state odds field for callers that treat absent
// and empty the same way (create paths).
func (r *MatchRequest) OddsOrNil() []MatchOddsRequest {
	if r.Odds == nil {
		return nil
	}
	return *r.Odds
}

func (r *MatchRequest) Validate() error {
	if s := strings.TrimSpace(r.Description); s == "" || len(r.Description) > 255 {
		return apperr.Validation("description must be between 1 and 255 characters")
	}
	if _, err := ParseMatchDate(r.MatchDate); err != nil {
		return apperr.Validation("matchDate must be a date in format yyyy-MM-dd")
	}
	if _, err := ParseMatchTime(r.MatchTime); err != nil {
		return apperr.Validation("matchTime must be a time in format HH:mm")
	}
	if s := strings.TrimSpace(r.TeamA); s == "" || len(r.TeamA) > 100 {
		return apperr.Validation("team name must be between 1 and 100 characters")
	}
	if s := strings.TrimSpace(r.TeamB); s == "" || len(r.TeamB) > 100 {
		return apperr.Validation("team name must be between 1 and 100 characters")
	}
	if !r.Sport.Valid() {
		return apperr.Validation("invalid sport value: %d", int(r.Sport))
	}
	if r.Odds != nil {
		for i := range *r.Odds {
			if err := (*r.Odds)[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *MatchOddsRequest) Validate() error {
	spec := strings.TrimSpace(r.Specifier)
	if len(spec) < 1 || len(spec) > maxSpecifierLen {
		return apperr.Validation("specifier must be between 1 and 16 characters")
	}
	if !r.Odd.IsPositive() {
		return apperr.Validation("odd value must be a positive decimal number")
	}
	if r.Odd.Exponent() < -maxOddFraction {
		return apperr.Validation("odd value must have at most 3 fractional digits")
	}
	if r.Odd.IntPart() >= 1000 {
		return apperr.Validation("odd value must have at most 3 integer digits")
	}
	return nil
}

// ParseMatchDate parses the wire date format (yyyy-MM-dd).
func ParseMatchDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseMatchTime parses the wire time format (HH:mm, seconds accepted).
func ParseMatchTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		t, err = time.Parse(timeLayoutLong, s)
	}
	return t, err
}
