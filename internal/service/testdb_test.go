package service

import (
	"io"
	"testing"

	"matchodds/internal/dto"
	"matchodds/internal/model"
	"matchodds/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	// a single connection keeps the in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.Match{}, &model.MatchOdds{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newMatchService(t *testing.T) (*MatchService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewMatchService(repository.NewMatchRepository(db), newTestLogger()), db
}

func newOddsService(t *testing.T) (*MatchOddsService, *MatchService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	l := newTestLogger()
	matchRepo := repository.NewMatchRepository(db)
	oddsRepo := repository.NewMatchOddsRepository(db)
	return NewMatchOddsService(matchRepo, oddsRepo, l), NewMatchService(matchRepo, l), db
}

func matchReq(description string, odds *[]dto.MatchOddsRequest) *dto.MatchRequest {
	return &dto.MatchRequest{
		Description: description,
		MatchDate:   "2021-03-31",
		MatchTime:   "12:00",
		TeamA:       "OSFP",
		TeamB:       "PAO",
		Sport:       model.SportFootball,
		Odds:        odds,
	}
}

func oddsReq(specifier, odd string) dto.MatchOddsRequest {
	return dto.MatchOddsRequest{
		Specifier: specifier,
		Odd:       decimal.RequireFromString(odd),
	}
}

func oddsBatch(reqs ...dto.MatchOddsRequest) *[]dto.MatchOddsRequest {
	return &reqs
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// respOdds dereferences the odds of a response that must carry them.
func respOdds(t *testing.T, resp *dto.MatchResponse) []dto.MatchOddsResponse {
	t.Helper()
	if resp.Odds == nil {
		t.Fatal("response carries no odds")
	}
	return *resp.Odds
}

func countOddsRows(t *testing.T, db *gorm.DB, matchID uint64) int64 {
	t.Helper()
	var n int64
	q := db.Model(&model.MatchOdds{})
	if matchID != 0 {
		q = q.Where("match_id = ?", matchID)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count odds: %v", err)
	}
	return n
}

func countMatchRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Match{}).Count(&n).Error; err != nil {
		t.Fatalf("count matches: %v", err)
	}
	return n
}
