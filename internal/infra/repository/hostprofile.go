package repository

import (
	"context"

	"experience-market/internal/domain/hostprofile"
	"experience-market/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HostProfileRepository struct {
	pool *pgxpool.Pool
}

func NewHostProfileRepository(pool *pgxpool.Pool) *HostProfileRepository {
	return &HostProfileRepository{pool: pool}
}

func (r *HostProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*hostprofile.Profile, error) {
	var p hostprofile.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, full_name, bio, phone, iban, bank_name, account_holder, updated_at
		 FROM host_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.FullName, &p.Bio, &p.Phone, &p.IBAN, &p.BankName,
		&p.AccountHolder, &p.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find host profile", err)
	}
	return &p, nil
}

func (r *HostProfileRepository) Upsert(ctx context.Context, p *hostprofile.Profile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO host_profiles (user_id, full_name, bio, phone, iban, bank_name, account_holder)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   full_name = EXCLUDED.full_name,
		   bio = EXCLUDED.bio,
		   phone = EXCLUDED.phone,
		   iban = EXCLUDED.iban,
		   bank_name = EXCLUDED.bank_name,
		   account_holder = EXCLUDED.account_holder,
		   updated_at = now()`,
		p.UserID, p.FullName, p.Bio, p.Phone, p.IBAN, p.BankName, p.AccountHolder,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert host profile", err)
	}
	return nil
}
