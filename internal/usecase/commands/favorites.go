package commands

import (
	"context"

	"experience-market/internal/infra"
	"experience-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type MergeFavoritesResult struct {
	// Favorites is the merged server-side set.
	Favorites []uuid.UUID
	// Cleared tells the client its anonymous local set has been absorbed and
	// may be dropped. It is only true when the merge fully succeeded; on any
	// error the client keeps the local set and retries on a later session.
	Cleared bool
}

type FavoritesCommands interface {
	Merge(ctx context.Context, userID uuid.UUID, localIDs []uuid.UUID) (*MergeFavoritesResult, error)
}

type favoritesCommandsImpl struct {
	repo FavoritesRepository
}

func NewFavoritesCommands(repo FavoritesRepository) FavoritesCommands {
	return &favoritesCommandsImpl{repo: repo}
}

// Merge unions the anonymous device-local favorites into the account's set.
// Union is idempotent, so replaying the same local set is harmless.
func (f *favoritesCommandsImpl) Merge(ctx context.Context, userID uuid.UUID, localIDs []uuid.UUID) (*MergeFavoritesResult, error) {
	ids := dedupe(localIDs)

	if len(ids) > 0 {
		if err := f.repo.Merge(ctx, userID, ids); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return nil, errs.ErrExperienceNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	merged, err := f.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &MergeFavoritesResult{Favorites: merged, Cleared: true}, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
