package dto

import (
	"strings"
	"testing"

	"matchodds/internal/apperr"
	"matchodds/internal/model"

	"github.com/shopspring/decimal"
)

func validMatchRequest() MatchRequest {
	return MatchRequest{
		Description: "OSFP-PAO",
		MatchDate:   "2021-03-31",
		MatchTime:   "12:00",
		TeamA:       "OSFP",
		TeamB:       "PAO",
		Sport:       model.SportFootball,
	}
}

func TestMatchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MatchRequest)
		wantErr string // substring; empty = valid
	}{
		{"valid", func(r *MatchRequest) {}, ""},
		{"valid with seconds", func(r *MatchRequest) { r.MatchTime = "12:00:30" }, ""},
		{"blank description", func(r *MatchRequest) { r.Description = "   " }, "description"},
		{"description too long", func(r *MatchRequest) { r.Description = strings.Repeat("x", 256) }, "description"},
		{"bad date", func(r *MatchRequest) { r.MatchDate = "31-03-2021" }, "matchDate"},
		{"bad time", func(r *MatchRequest) { r.MatchTime = "25:99" }, "matchTime"},
		{"blank team", func(r *MatchRequest) { r.TeamA = "" }, "team name"},
		{"team too long", func(r *MatchRequest) { r.TeamB = strings.Repeat("b", 101) }, "team name"},
		{"unset sport", func(r *MatchRequest) { r.Sport = 0 }, "sport"},
		{"unknown sport", func(r *MatchRequest) { r.Sport = model.Sport(9) }, "sport"},
		{"invalid nested odds", func(r *MatchRequest) {
			r.Odds = &[]MatchOddsRequest{{Specifier: "1", Odd: decimal.Zero}}
		}, "odd value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validMatchRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMatchOddsRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		specifier string
		odd       string
		valid     bool
	}{
		{"typical", "X", "1.50", true},
		{"boundary odd", "1", "999.999", true},
		{"minimal odd", "2", "0.001", true},
		{"trimmed to valid length", "  X2  ", "1.50", true},
		{"blank specifier", "   ", "1.50", false},
		{"specifier too long", strings.Repeat("s", 17), "1.50", false},
		{"zero odd", "X", "0", false},
		{"negative odd", "X", "-1.50", false},
		{"too many fractional digits", "X", "1.2345", false},
		{"too many integer digits", "X", "1000.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := MatchOddsRequest{Specifier: tt.specifier, Odd: decimal.RequireFromString(tt.odd)}
			err := req.Validate()
			if tt.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.valid && !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOddsOrNilTriState(t *testing.T) {
	req := validMatchRequest()
	if req.OddsOrNil() != nil {
		t.Error("absent odds should flatten to nil")
	}
	empty := []MatchOddsRequest{}
	req.Odds = &empty
	if got := req.OddsOrNil(); got == nil || len(got) != 0 {
		t.Error("empty odds should flatten to an empty slice")
	}
}
