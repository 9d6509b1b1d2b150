package repository

import (
	"context"
	"errors"

	"matchodds/internal/apperr"
	"matchodds/internal/model"

	"gorm.io/gorm"
)

// MatchOddsRepository is the persistence gateway for odds rows scoped to
// their owning match.
type MatchOddsRepository interface {
	Create(ctx context.Context, odds *model.MatchOdds) error
	// CreateBatch inserts all rows in one transaction; a uniqueness violation
	// on any row rolls back the whole batch and surfaces as a conflict.
	CreateBatch(ctx context.Context, odds []*model.MatchOdds) error
	FindByMatchID(ctx context.Context, matchID uint64) ([]*model.MatchOdds, error)
	FindPageByMatchID(ctx context.Context, matchID uint64, page, pageSize int, sortExpr string) ([]*model.MatchOdds, int64, error)
	FindByIDAndMatchID(ctx context.Context, id, matchID uint64) (*model.MatchOdds, error)
	FindByMatchIDAndSpecifier(ctx context.Context, matchID uint64, specifier string) (*model.MatchOdds, error)
	ExistsByMatchIDAndSpecifier(ctx context.Context, matchID uint64, specifier string) (bool, error)
	ExistsByMatchIDAndSpecifierExcludingID(ctx context.Context, matchID uint64, specifier string, id uint64) (bool, error)
	Update(ctx context.Context, odds *model.MatchOdds) error
	Delete(ctx context.Context, odds *model.MatchOdds) error
	DeleteByMatchID(ctx context.Context, matchID uint64) error
}

type matchOddsRepository struct {
	db *gorm.DB
}

func NewMatchOddsRepository(db *gorm.DB) MatchOddsRepository {
	return &matchOddsRepository{db: db}
}

func specifierConflict(err error, matchID uint64, specifier string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("odds specifier already exists for match %d: %s", matchID, specifier)
	}
	return err
}

func (r *matchOddsRepository) Create(ctx context.Context, odds *model.MatchOdds) error {
	if err := r.db.WithContext(ctx).Create(odds).Error; err != nil {
		return specifierConflict(err, odds.MatchID, odds.Specifier)
	}
	return nil
}

func (r *matchOddsRepository) CreateBatch(ctx context.Context, odds []*model.MatchOdds) error {
	if len(odds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range odds {
			if err := tx.Create(o).Error; err != nil {
				return specifierConflict(err, o.MatchID, o.Specifier)
			}
		}
		return nil
	})
}

func (r *matchOddsRepository) FindByMatchID(ctx context.Context, matchID uint64) ([]*model.MatchOdds, error) {
	var odds []*model.MatchOdds
	if err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("id ASC").
		Find(&odds).Error; err != nil {
		return nil, err
	}
	return odds, nil
}

func (r *matchOddsRepository) FindPageByMatchID(ctx context.Context, matchID uint64, page, pageSize int, sortExpr string) ([]*model.MatchOdds, int64, error) {
	page, pageSize = clampPage(page, pageSize)
	db := r.db.WithContext(ctx).Model(&model.MatchOdds{}).Where("match_id = ?", matchID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var odds []*model.MatchOdds
	if err := db.
		Order(sortExpr).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&odds).Error; err != nil {
		return nil, 0, err
	}
	return odds, total, nil
}

func (r *matchOddsRepository) FindByIDAndMatchID(ctx context.Context, id, matchID uint64) (*model.MatchOdds, error) {
	var odds model.MatchOdds
	if err := r.db.WithContext(ctx).
		Where("id = ? AND match_id = ?", id, matchID).
		First(&odds).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("odds not found: %d for match %d", id, matchID)
		}
		return nil, err
	}
	return &odds, nil
}

func (r *matchOddsRepository) FindByMatchIDAndSpecifier(ctx context.Context, matchID uint64, specifier string) (*model.MatchOdds, error) {
	var odds model.MatchOdds
	if err := r.db.WithContext(ctx).
		Where("match_id = ? AND specifier = ?", matchID, specifier).
		First(&odds).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("odds not found for match %d: %s", matchID, specifier)
		}
		return nil, err
	}
	return &odds, nil
}

func (r *matchOddsRepository) ExistsByMatchIDAndSpecifier(ctx context.Context, matchID uint64, specifier string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.MatchOdds{}).
		Where("match_id = ? AND specifier = ?", matchID, specifier).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *matchOddsRepository) ExistsByMatchIDAndSpecifierExcludingID(ctx context.Context, matchID uint64, specifier string, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.MatchOdds{}).
		Where("match_id = ? AND specifier = ? AND id <> ?", matchID, specifier, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *matchOddsRepository) Update(ctx context.Context, odds *model.MatchOdds) error {
	err := r.db.WithContext(ctx).Model(&model.MatchOdds{}).
		Where("id = ?", odds.ID).
		Updates(map[string]interface{}{
			"specifier": odds.Specifier,
			"odd":       odds.Odd,
		}).Error
	if err != nil {
		return specifierConflict(err, odds.MatchID, odds.Specifier)
	}
	return nil
}

func (r *matchOddsRepository) Delete(ctx context.Context, odds *model.MatchOdds) error {
	return r.db.WithContext(ctx).Delete(odds).Error
}

func (r *matchOddsRepository) DeleteByMatchID(ctx context.Context, matchID uint64) error {
	return r.db.WithContext(ctx).Where("match_id = ?", matchID).Delete(&model.MatchOdds{}).Error
}
