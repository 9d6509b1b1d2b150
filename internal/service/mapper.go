package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"matchodds/internal/apperr"
	"matchodds/internal/dto"
	"matchodds/internal/model"

	"gorm.io/datatypes"
)

// newMatch builds an unpersisted match entity from a request. The odds
// collection is left empty; callers attach odds themselves.
func newMatch(req *dto.MatchRequest) (*model.Match, error) {
	match := &model.Match{}
	if err := applyMatch(match, req); err != nil {
		return nil, err
	}
	return match, nil
}

// applyMatch replaces every match field from the request. The odds collection
// is not touched here.
func applyMatch(match *model.Match, req *dto.MatchRequest) error {
	date, err := dto.ParseMatchDate(req.MatchDate)
	if err != nil {
		return apperr.Validation("matchDate must be a date in format yyyy-MM-dd")
	}
	clock, err := dto.ParseMatchTime(req.MatchTime)
	if err != nil {
		return apperr.Validation("matchTime must be a time in format HH:mm")
	}
	match.Description = req.Description
	match.MatchDate = datatypes.Date(date)
	match.MatchTime = datatypes.NewTime(clock.Hour(), clock.Minute(), clock.Second(), 0)
	match.TeamA = req.TeamA
	match.TeamB = req.TeamB
	match.Sport = req.Sport
	return nil
}

// newOdds builds an unpersisted odds entity. The match reference is set by
// the caller. The specifier is trimmed before storage and comparison.
func newOdds(req dto.MatchOddsRequest) model.MatchOdds {
	return model.MatchOdds{
		Specifier: strings.TrimSpace(req.Specifier),
		Odd:       req.Odd,
	}
}

func oddsToResponse(odds *model.MatchOdds) dto.MatchOddsResponse {
	return dto.MatchOddsResponse{
		ID:        odds.ID,
		MatchID:   odds.MatchID,
		Specifier: odds.Specifier,
		Odd:       odds.Odd,
	}
}

// matchToResponse maps a match entity. With includeOdds false the odds field
// stays nil, distinguishing "odds omitted" from "zero odds"; with it true the
// odds are sorted ascending by id, unassigned ids last.
func matchToResponse(match *model.Match, includeOdds bool) dto.MatchResponse {
	resp := dto.MatchResponse{
		ID:          match.ID,
		Description: match.Description,
		MatchDate:   time.Time(match.MatchDate).Format(dto.DateLayout),
		MatchTime:   formatMatchTime(match.MatchTime),
		TeamA:       match.TeamA,
		TeamB:       match.TeamB,
		Sport:       match.Sport,
	}
	if includeOdds {
		sorted := sortedOdds(match.Odds)
		items := make([]dto.MatchOddsResponse, 0, len(sorted))
		for i := range sorted {
			items = append(items, oddsToResponse(&sorted[i]))
		}
		resp.Odds = &items
	}
	return resp
}

func sortedOdds(odds []model.MatchOdds) []model.MatchOdds {
	out := make([]model.MatchOdds, len(odds))
	copy(out, odds)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ID, out[j].ID
		if a == 0 {
			return false
		}
		if b == 0 {
			return true
		}
		return a < b
	})
	return out
}

func formatMatchTime(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}
