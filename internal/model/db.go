package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Match owns its odds rows: deleting a match deletes every odds row that
// references it.
type Match struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	Description string         `gorm:"column:description;type:varchar(255);not null"`
	MatchDate   datatypes.Date `gorm:"column:match_date;not null"`
	MatchTime   datatypes.Time `gorm:"column:match_time;not null"`
	TeamA       string         `gorm:"column:team_a;type:varchar(100);not null"`
	TeamB       string         `gorm:"column:team_b;type:varchar(100);not null"`
	Sport       Sport          `gorm:"column:sport;type:varchar(16);not null"`
	Odds        []MatchOdds    `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// MatchOdds is a priced outcome specifier of a match. (match_id, specifier)
// is unique: the composite index is the last line of defense against a race
// between the service-level existence check and the insert.
type MatchOdds struct {
	ID        uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	MatchID   uint64          `gorm:"column:match_id;not null;index:idx_match_id;uniqueIndex:uk_match_specifier"`
	Specifier string          `gorm:"column:specifier;type:varchar(16);not null;uniqueIndex:uk_match_specifier"`
	Odd       decimal.Decimal `gorm:"column:odd;type:numeric(6,3);not null"`
}

func (Match) TableName() string     { return "matches" }
func (MatchOdds) TableName() string { return "match_odds" }
