package repository

import (
	"context"

	"experience-market/internal/domain/experience"
	"experience-market/internal/infra"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewExperienceRepository(pool *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{pool: pool}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *experience.Experience) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO experiences (id, host_id, title, price_cents, currency)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID(), e.HostID(), e.Title(), e.PriceCents(), e.Currency(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create experience", err)
	}
	return nil
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ExperienceSnapshot, error) {
	var snap commands.ExperienceSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, host_id, title, price_cents, currency FROM experiences WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.HostID, &snap.Title, &snap.PriceCents, &snap.Currency)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find experience", err)
	}
	return &snap, nil
}

// Read store for queries.ExperienceReadStore.

func (r *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*queries.ExperienceView, error) {
	var view queries.ExperienceView
	err := r.pool.QueryRow(ctx,
		`SELECT id, host_id, title, price_cents, currency, created_at, updated_at
		 FROM experiences WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.HostID, &view.Title, &view.PriceCents, &view.Currency,
		&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get experience", err)
	}
	return &view, nil
}

func (r *ExperienceRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]queries.ExperienceView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, host_id, title, price_cents, currency, created_at, updated_at
		 FROM experiences WHERE host_id = $1 ORDER BY created_at DESC`,
		hostID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list experiences", err)
	}
	defer rows.Close()

	var views []queries.ExperienceView
	for rows.Next() {
		var view queries.ExperienceView
		if err := rows.Scan(&view.ID, &view.HostID, &view.Title, &view.PriceCents,
			&view.Currency, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan experience", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read experiences", err)
	}
	return views, nil
}
