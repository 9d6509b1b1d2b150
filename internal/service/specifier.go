package service

import (
	"context"
	"strings"

	"matchodds/internal/apperr"
	"matchodds/internal/dto"
	"matchodds/internal/repository"
)

// validateUniqueSpecifiers checks a candidate odds batch for duplicate
// specifiers (post-trim, case-sensitive). Entries are scanned in input order
// and the first duplicate wins.
func validateUniqueSpecifiers(reqs []dto.MatchOddsRequest) error {
	seen := make(map[string]struct{}, len(reqs))
	for i := range reqs {
		spec := strings.TrimSpace(reqs[i].Specifier)
		if spec == "" {
			continue
		}
		if _, dup := seen[spec]; dup {
			return apperr.Conflict("duplicate odds specifier in request payload: %s", spec)
		}
		seen[spec] = struct{}{}
	}
	return nil
}

// checkSpecifierFree fails with a conflict when any persisted odds row of the
// match already carries the specifier.
func checkSpecifierFree(ctx context.Context, odds repository.MatchOddsRepository, matchID uint64, specifier string) error {
	taken, err := odds.ExistsByMatchIDAndSpecifier(ctx, matchID, specifier)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("odds specifier already exists for match %d: %s", matchID, specifier)
	}
	return nil
}

// checkSpecifierFreeExcluding is the update-in-place variant: the row being
// updated is excluded so an unchanged specifier cannot conflict with itself.
func checkSpecifierFreeExcluding(ctx context.Context, odds repository.MatchOddsRepository, matchID uint64, specifier string, excludeID uint64) error {
	taken, err := odds.ExistsByMatchIDAndSpecifierExcludingID(ctx, matchID, specifier, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("odds specifier already exists for match %d: %s", matchID, specifier)
	}
	return nil
}
