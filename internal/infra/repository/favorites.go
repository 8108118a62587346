package repository

import (
	"context"

	"experience-market/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewFavoritesRepository(pool *pgxpool.Pool) *FavoritesRepository {
	return &FavoritesRepository{pool: pool}
}

// Merge is a set union: rows already present are skipped, so replaying the
// same local set is a no-op.
func (r *FavoritesRepository) Merge(ctx context.Context, userID uuid.UUID, experienceIDs []uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO favorites (user_id, experience_id)
		 SELECT $1, unnest($2::uuid[])
		 ON CONFLICT (user_id, experience_id) DO NOTHING`,
		userID, experienceIDs,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to merge favorites", err)
	}
	return nil
}

func (r *FavoritesRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT experience_id FROM favorites WHERE user_id = $1 ORDER BY created_at, experience_id`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan favorite", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read favorites", err)
	}
	return ids, nil
}
