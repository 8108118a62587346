package repository

import (
	"context"

	"experience-market/internal/domain/settings"
	"experience-market/internal/infra"
	"experience-market/internal/infra/db"
	"experience-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository serves both the write side (admin updates, checkout
// snapshots) and the read store for settings queries.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (*queries.SettingView, error) {
	var view queries.SettingView
	err := r.pool.QueryRow(ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = $1`,
		key,
	).Scan(&view.Key, &view.Value, &view.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get setting", err)
	}
	return &view, nil
}

func (r *SettingsRepository) List(ctx context.Context) ([]queries.SettingView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT key, value, updated_at FROM settings ORDER BY key`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settings", err)
	}
	defer rows.Close()

	var views []queries.SettingView
	for rows.Next() {
		var view queries.SettingView
		if err := rows.Scan(&view.Key, &view.Value, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan setting", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read settings", err)
	}
	return views, nil
}

// Set is last-write-wins; updated_at is assigned by the database. Settings
// are seeded by migration, so an unmatched key means not-found, not insert.
func (r *SettingsRepository) Set(ctx context.Context, key string, value float64) (*settings.Setting, error) {
	var updated settings.Setting
	err := r.pool.QueryRow(ctx,
		`UPDATE settings SET value = $2, updated_at = now() WHERE key = $1
		 RETURNING key, value, updated_at`,
		key, value,
	).Scan(&updated.Key, &updated.Value, &updated.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update setting", err)
	}
	return &updated, nil
}

// Snapshot reads the requested keys through tx, so checkout sees values
// consistent with the booking row it writes in the same transaction. Absent
// keys are simply absent from the map; the commission engine decides whether
// that is fatal.
func (r *SettingsRepository) Snapshot(ctx context.Context, tx db.DBTX, keys ...string) (settings.Snapshot, error) {
	rows, err := tx.Query(ctx,
		`SELECT key, value FROM settings WHERE key = ANY($1)`,
		keys,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to snapshot settings", err)
	}

	snap := settings.Snapshot{}
	var (
		key   string
		value float64
	)
	_, err = pgx.ForEachRow(rows, []any{&key, &value}, func() error {
		snap[key] = value
		return nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan settings snapshot", err)
	}
	return snap, nil
}
