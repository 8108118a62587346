package repository

import (
	"context"

	"experience-market/internal/domain/user"
	"experience-market/internal/infra"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role, display_name, is_active, password_hash
		 FROM users WHERE email = $1`,
		email.Value(),
	).Scan(&view.ID, &view.Email, &view.Role, &view.DisplayName, &view.IsActive, &passwordHash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role, display_name, is_active FROM users WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Email, &view.Role, &view.DisplayName, &view.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
