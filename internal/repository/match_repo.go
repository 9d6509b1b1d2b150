package repository

import (
	"context"
	"errors"

	"matchodds/internal/apperr"
	"matchodds/internal/model"

	"gorm.io/gorm"
)

// MatchRepository is the persistence gateway for match aggregates. Compound
// mutations (create with odds, odds replacement, delete) run inside a single
// transaction so a match and its odds never change independently.
type MatchRepository interface {
	Create(ctx context.Context, match *model.Match) error
	CreateBatch(ctx context.Context, matches []*model.Match) error
	FindByID(ctx context.Context, id uint64) (*model.Match, error)
	FindAll(ctx context.Context) ([]*model.Match, error)
	FindAllWithOdds(ctx context.Context) ([]*model.Match, error)
	// FindPage returns one page of matches without odds plus the total match count.
	FindPage(ctx context.Context, page, pageSize int, sortExpr string) ([]*model.Match, int64, error)
	// FindIDsPage returns one page of match ids plus the total match count.
	// Paginating over ids keeps the page boundary free of join row multiplication.
	FindIDsPage(ctx context.Context, page, pageSize int, sortExpr string) ([]uint64, int64, error)
	// FindWithOddsByIDs loads exactly the given matches with odds eagerly
	// attached, re-applying sortExpr to keep the page order.
	FindWithOddsByIDs(ctx context.Context, ids []uint64, sortExpr string) ([]*model.Match, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	UpdateFields(ctx context.Context, match *model.Match) error
	// UpdateReplacingOdds updates the match fields, drops every persisted odds
	// row of the match and inserts the given replacements, all in one
	// transaction. On success match.Odds holds the new rows with ids assigned.
	UpdateReplacingOdds(ctx context.Context, match *model.Match, odds []model.MatchOdds) error
	Delete(ctx context.Context, id uint64) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func oddsAscending(db *gorm.DB) *gorm.DB {
	return db.Order("match_odds.id ASC")
}

func clampPage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func (r *matchRepository) Create(ctx context.Context, match *model.Match) error {
	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("duplicate odds specifier for match")
		}
		return err
	}
	return nil
}

func (r *matchRepository) CreateBatch(ctx context.Context, matches []*model.Match) error {
	if len(matches) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&matches).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("duplicate odds specifier for match")
		}
		return err
	}
	return nil
}

func (r *matchRepository) FindByID(ctx context.Context, id uint64) (*model.Match, error) {
	var match model.Match
	if err := r.db.WithContext(ctx).
		Preload("Odds", oddsAscending).
		First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("match not found: %d", id)
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) FindAll(ctx context.Context) ([]*model.Match, error) {
	var matches []*model.Match
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) FindAllWithOdds(ctx context.Context) ([]*model.Match, error) {
	var matches []*model.Match
	if err := r.db.WithContext(ctx).
		Preload("Odds", oddsAscending).
		Order("id ASC").
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) FindPage(ctx context.Context, page, pageSize int, sortExpr string) ([]*model.Match, int64, error) {
	page, pageSize = clampPage(page, pageSize)
	db := r.db.WithContext(ctx).Model(&model.Match{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matches []*model.Match
	if err := db.
		Order(sortExpr).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) FindIDsPage(ctx context.Context, page, pageSize int, sortExpr string) ([]uint64, int64, error) {
	page, pageSize = clampPage(page, pageSize)
	db := r.db.WithContext(ctx).Model(&model.Match{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint64
	if err := db.
		Order(sortExpr).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Pluck("id", &ids).Error; err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

func (r *matchRepository) FindWithOddsByIDs(ctx context.Context, ids []uint64, sortExpr string) ([]*model.Match, error) {
	if len(ids) == 0 {
		return []*model.Match{}, nil
	}
	var matches []*model.Match
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order(sortExpr).
		Preload("Odds", oddsAscending).
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Match{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func matchFieldUpdates(match *model.Match) map[string]interface{} {
	return map[string]interface{}{
		"description": match.Description,
		"match_date":  match.MatchDate,
		"match_time":  match.MatchTime,
		"team_a":      match.TeamA,
		"team_b":      match.TeamB,
		"sport":       match.Sport,
	}
}

func (r *matchRepository) UpdateFields(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Model(&model.Match{}).
		Where("id = ?", match.ID).
		Updates(matchFieldUpdates(match)).Error
}

func (r *matchRepository) UpdateReplacingOdds(ctx context.Context, match *model.Match, odds []model.MatchOdds) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Match{}).
			Where("id = ?", match.ID).
			Updates(matchFieldUpdates(match)).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", match.ID).Delete(&model.MatchOdds{}).Error; err != nil {
			return err
		}
		for i := range odds {
			odds[i].MatchID = match.ID
		}
		if len(odds) > 0 {
			if err := tx.Create(&odds).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperr.Conflict("duplicate odds specifier for match %d", match.ID)
				}
				return err
			}
		}
		match.Odds = odds
		return nil
	})
}

func (r *matchRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&model.MatchOdds{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Match{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("match not found: %d", id)
		}
		return nil
	})
}
