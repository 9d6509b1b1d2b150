package service

import (
	"testing"

	"matchodds/internal/dto"
	"matchodds/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func TestMatchToResponseOddsOmission(t *testing.T) {
	match := &model.Match{ID: 1, Description: "OSFP-PAO", Sport: model.SportFootball}

	without := matchToResponse(match, false)
	if without.Odds != nil {
		t.Error("odds must be nil when not requested, not an empty list")
	}

	with := matchToResponse(match, true)
	if with.Odds == nil {
		t.Fatal("odds must be an empty list when requested on an odds-less match")
	}
	if len(*with.Odds) != 0 {
		t.Errorf("odds = %d, want 0", len(*with.Odds))
	}
}

func TestMatchToResponseSortsOddsByID(t *testing.T) {
	match := &model.Match{
		ID: 1,
		Odds: []model.MatchOdds{
			{ID: 6, MatchID: 1, Specifier: "X", Odd: decimal.NewFromInt(3)},
			{ID: 0, MatchID: 1, Specifier: "2", Odd: decimal.NewFromInt(4)}, // unassigned id sorts last
			{ID: 5, MatchID: 1, Specifier: "1", Odd: decimal.NewFromInt(1)},
		},
	}

	resp := matchToResponse(match, true)
	odds := *resp.Odds
	got := []string{odds[0].Specifier, odds[1].Specifier, odds[2].Specifier}
	want := []string{"1", "X", "2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("odds order = %v, want %v", got, want)
		}
	}
	// the input slice is left alone
	if match.Odds[0].ID != 6 {
		t.Error("mapper must not reorder the entity's odds slice")
	}
}

func TestNewOddsTrimsSpecifier(t *testing.T) {
	odds := newOdds(dto.MatchOddsRequest{Specifier: "  X2 ", Odd: decimal.NewFromInt(2)})
	if odds.Specifier != "X2" {
		t.Errorf("specifier = %q, want X2", odds.Specifier)
	}
	if odds.MatchID != 0 {
		t.Error("match reference must be left for the caller to set")
	}
}

func TestApplyMatchFullReplacement(t *testing.T) {
	match := &model.Match{
		ID:          3,
		Description: "old",
		TeamA:       "OLD-A",
		TeamB:       "OLD-B",
		Sport:       model.SportBasketball,
		Odds:        []model.MatchOdds{{ID: 1, MatchID: 3, Specifier: "1"}},
	}
	err := applyMatch(match, &dto.MatchRequest{
		Description: "OSFP-PAO",
		MatchDate:   "2021-03-31",
		MatchTime:   "19:30",
		TeamA:       "OSFP",
		TeamB:       "PAO",
		Sport:       model.SportFootball,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if match.Description != "OSFP-PAO" || match.TeamA != "OSFP" || match.TeamB != "PAO" || match.Sport != model.SportFootball {
		t.Errorf("fields not replaced: %+v", match)
	}
	if match.ID != 3 {
		t.Error("identifier must stay immutable")
	}
	if len(match.Odds) != 1 {
		t.Error("apply must not touch the odds collection")
	}
	if got := formatMatchTime(match.MatchTime); got != "19:30" {
		t.Errorf("match time = %q, want 19:30", got)
	}
}

func TestApplyMatchRejectsBadDate(t *testing.T) {
	if err := applyMatch(&model.Match{}, &dto.MatchRequest{MatchDate: "31/03/2021", MatchTime: "12:00"}); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
	if err := applyMatch(&model.Match{}, &dto.MatchRequest{MatchDate: "2021-03-31", MatchTime: "noon"}); err == nil {
		t.Error("expected an error for a malformed time")
	}
}

func TestFormatMatchTime(t *testing.T) {
	tests := []struct {
		h, m int
		want string
	}{
		{0, 0, "00:00"},
		{9, 5, "09:05"},
		{23, 59, "23:59"},
	}
	for _, tt := range tests {
		if got := formatMatchTime(datatypes.NewTime(tt.h, tt.m, 0, 0)); got != tt.want {
			t.Errorf("formatMatchTime(%d:%d) = %q, want %q", tt.h, tt.m, got, tt.want)
		}
	}
}
