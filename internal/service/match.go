package service

import (
	"context"

	"matchodds/internal/dto"
	"matchodds/internal/model"
	"matchodds/internal/repository"

	"github.com/sirupsen/logrus"
)

// MatchService orchestrates create/read/update/delete of a match together
// with its odds collection.
type MatchService struct {
	matches repository.MatchRepository
	logger  *logrus.Logger
}

func NewMatchService(matches repository.MatchRepository, logger *logrus.Logger) *MatchService {
	return &MatchService{
		matches: matches,
		logger:  logger,
	}
}

// Create persists a match and its optional initial odds batch as one unit.
func (s *MatchService) Create(ctx context.Context, req *dto.MatchRequest) (*dto.MatchResponse, error) {
	oddsReqs := req.OddsOrNil()
	if err := validateUniqueSpecifiers(oddsReqs); err != nil {
		return nil, err
	}
	match, err := newMatch(req)
	if err != nil {
		return nil, err
	}
	for i := range oddsReqs {
		match.Odds = append(match.Odds, newOdds(oddsReqs[i]))
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return nil, err
	}
	resp := matchToResponse(match, true)
	return &resp, nil
}

// CreateBulk validates every request before persisting any; the batch insert
// itself runs in one transaction, so a failure on any item persists nothing.
func (s *MatchService) CreateBulk(ctx context.Context, reqs []dto.MatchRequest) ([]dto.MatchResponse, error) {
	if len(reqs) == 0 {
		return []dto.MatchResponse{}, nil
	}
	entities := make([]*model.Match, 0, len(reqs))
	for i := range reqs {
		oddsReqs := reqs[i].OddsOrNil()
		if err := validateUniqueSpecifiers(oddsReqs); err != nil {
			return nil, err
		}
		match, err := newMatch(&reqs[i])
		if err != nil {
			return nil, err
		}
		for j := range oddsReqs {
			match.Odds = append(match.Odds, newOdds(oddsReqs[j]))
		}
		entities = append(entities, match)
	}
	if err := s.matches.CreateBatch(ctx, entities); err != nil {
		return nil, err
	}
	out := make([]dto.MatchResponse, 0, len(entities))
	for _, match := range entities {
		out = append(out, matchToResponse(match, true))
	}
	return out, nil
}

func (s *MatchService) Get(ctx context.Context, id uint64) (*dto.MatchResponse, error) {
	match, err := s.matches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := matchToResponse(match, true)
	return &resp, nil
}

// List returns all matches unpaginated. ListPage is the production list path.
func (s *MatchService) List(ctx context.Context, includeOdds bool) ([]dto.MatchResponse, error) {
	var (
		matches []*model.Match
		err     error
	)
	if includeOdds {
		matches, err = s.matches.FindAllWithOdds(ctx)
	} else {
		matches, err = s.matches.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MatchResponse, 0, len(matches))
	for _, match := range matches {
		out = append(out, matchToResponse(match, includeOdds))
	}
	return out, nil
}

// ListPage returns one correctly counted page of matches. With includeOdds
// the read runs in two steps: page over match ids first, then load odds for
// exactly that id set. A single paginated query with an eager one-to-many
// join returns wrong page sizes and totals, so this must stay two queries.
func (s *MatchService) ListPage(ctx context.Context, includeOdds bool, page, pageSize int, sort string) (*dto.MatchPage, error) {
	sortExpr, err := repository.MatchSortExpr(sort)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	if !includeOdds {
		matches, total, err := s.matches.FindPage(ctx, page, pageSize, sortExpr)
		if err != nil {
			return nil, err
		}
		items := make([]dto.MatchResponse, 0, len(matches))
		for _, match := range matches {
			items = append(items, matchToResponse(match, false))
		}
		return &dto.MatchPage{Page: page, PageSize: pageSize, Total: total, Items: items}, nil
	}

	ids, total, err := s.matches.FindIDsPage(ctx, page, pageSize, sortExpr)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MatchResponse, 0, len(ids))
	if len(ids) > 0 {
		matches, err := s.matches.FindWithOddsByIDs(ctx, ids, sortExpr)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			items = append(items, matchToResponse(match, true))
		}
	}
	return &dto.MatchPage{Page: page, PageSize: pageSize, Total: total, Items: items}, nil
}

// Update fully replaces the match fields. The odds collection follows the
// request's tri-state odds field: nil leaves it untouched, an empty or
// populated slice replaces it atomically.
func (s *MatchService) Update(ctx context.Context, id uint64, req *dto.MatchRequest) (*dto.MatchResponse, error) {
	match, err := s.matches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Odds == nil {
		if err := applyMatch(match, req); err != nil {
			return nil, err
		}
		if err := s.matches.UpdateFields(ctx, match); err != nil {
			return nil, err
		}
		resp := matchToResponse(match, true)
		return &resp, nil
	}

	if err := validateUniqueSpecifiers(*req.Odds); err != nil {
		return nil, err
	}
	if err := applyMatch(match, req); err != nil {
		return nil, err
	}
	replacement := make([]model.MatchOdds, 0, len(*req.Odds))
	for i := range *req.Odds {
		replacement = append(replacement, newOdds((*req.Odds)[i]))
	}
	if err := s.matches.UpdateReplacingOdds(ctx, match, replacement); err != nil {
		return nil, err
	}
	resp := matchToResponse(match, true)
	return &resp, nil
}

// Delete removes the match and every odds row it owns in one transaction.
func (s *MatchService) Delete(ctx context.Context, id uint64) error {
	return s.matches.Delete(ctx, id)
}
