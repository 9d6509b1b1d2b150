package service

import (
	"context"
	"strings"

	"matchodds/internal/apperr"
	"matchodds/internal/dto"
	"matchodds/internal/model"
	"matchodds/internal/repository"

	"github.com/sirupsen/logrus"
)

// MatchOddsService manages odds rows as a sub-resource of an existing match.
type MatchOddsService struct {
	matches repository.MatchRepository
	odds    repository.MatchOddsRepository
	logger  *logrus.Logger
}

func NewMatchOddsService(matches repository.MatchRepository, odds repository.MatchOddsRepository, logger *logrus.Logger) *MatchOddsService {
	return &MatchOddsService{
		matches: matches,
		odds:    odds,
		logger:  logger,
	}
}

func (s *MatchOddsService) requireMatch(ctx context.Context, matchID uint64) error {
	exists, err := s.matches.ExistsByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("match not found: %d", matchID)
	}
	return nil
}

func (s *MatchOddsService) Create(ctx context.Context, matchID uint64, req *dto.MatchOddsRequest) (*dto.MatchOddsResponse, error) {
	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	odds := newOdds(*req)
	odds.MatchID = matchID
	if err := checkSpecifierFree(ctx, s.odds, matchID, odds.Specifier); err != nil {
		return nil, err
	}
	if err := s.odds.Create(ctx, &odds); err != nil {
		return nil, err
	}
	resp := oddsToResponse(&odds)
	return &resp, nil
}

// CreateBulk checks every payload item against the payload itself and against
// persisted rows before inserting anything; the insert is all-or-nothing.
func (s *MatchOddsService) CreateBulk(ctx context.Context, matchID uint64, reqs []dto.MatchOddsRequest) ([]dto.MatchOddsResponse, error) {
	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return []dto.MatchOddsResponse{}, nil
	}
	if err := validateUniqueSpecifiers(reqs); err != nil {
		return nil, err
	}
	entities := make([]*model.MatchOdds, 0, len(reqs))
	for i := range reqs {
		odds := newOdds(reqs[i])
		odds.MatchID = matchID
		if err := checkSpecifierFree(ctx, s.odds, matchID, odds.Specifier); err != nil {
			return nil, err
		}
		entities = append(entities, &odds)
	}
	if err := s.odds.CreateBatch(ctx, entities); err != nil {
		return nil, err
	}
	out := make([]dto.MatchOddsResponse, 0, len(entities))
	for _, odds := range entities {
		out = append(out, oddsToResponse(odds))
	}
	return out, nil
}

// Get resolves the compound (matchID, oddID) key; an odds id that exists but
// belongs to a different match reports not-found.
func (s *MatchOddsService) Get(ctx context.Context, matchID, oddID uint64) (*dto.MatchOddsResponse, error) {
	odds, err := s.odds.FindByIDAndMatchID(ctx, oddID, matchID)
	if err != nil {
		return nil, err
	}
	resp := oddsToResponse(odds)
	return &resp, nil
}

func (s *MatchOddsService) ListByMatch(ctx context.Context, matchID uint64) ([]dto.MatchOddsResponse, error) {
	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	odds, err := s.odds.FindByMatchID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MatchOddsResponse, 0, len(odds))
	for _, o := range odds {
		out = append(out, oddsToResponse(o))
	}
	return out, nil
}

func (s *MatchOddsService) ListByMatchPage(ctx context.Context, matchID uint64, page, pageSize int, sort string) (*dto.MatchOddsPage, error) {
	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	sortExpr, err := repository.OddsSortExpr(sort)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	odds, total, err := s.odds.FindPageByMatchID(ctx, matchID, page, pageSize, sortExpr)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MatchOddsResponse, 0, len(odds))
	for _, o := range odds {
		items = append(items, oddsToResponse(o))
	}
	return &dto.MatchOddsPage{Page: page, PageSize: pageSize, Total: total, Items: items}, nil
}

// Update fully replaces specifier and value of the scoped odds row. Keeping
// the current specifier never conflicts with itself.
func (s *MatchOddsService) Update(ctx context.Context, matchID, oddID uint64, req *dto.MatchOddsRequest) (*dto.MatchOddsResponse, error) {
	current, err := s.odds.FindByIDAndMatchID(ctx, oddID, matchID)
	if err != nil {
		return nil, err
	}
	newSpecifier := strings.TrimSpace(req.Specifier)
	if newSpecifier != current.Specifier {
		if err := checkSpecifierFreeExcluding(ctx, s.odds, matchID, newSpecifier, current.ID); err != nil {
			return nil, err
		}
	}
	current.Specifier = newSpecifier
	current.Odd = req.Odd
	if err := s.odds.Update(ctx, current); err != nil {
		return nil, err
	}
	resp := oddsToResponse(current)
	return &resp, nil
}

func (s *MatchOddsService) Delete(ctx context.Context, matchID, oddID uint64) error {
	odds, err := s.odds.FindByIDAndMatchID(ctx, oddID, matchID)
	if err != nil {
		return err
	}
	return s.odds.Delete(ctx, odds)
}

// DeleteAll clears the whole odds collection of a match in one operation.
func (s *MatchOddsService) DeleteAll(ctx context.Context, matchID uint64) error {
	if err := s.requireMatch(ctx, matchID); err != nil {
		return err
	}
	return s.odds.DeleteByMatchID(ctx, matchID)
}
