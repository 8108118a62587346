package repository

import (
	"context"

	"experience-market/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PurchaseMarkerRepository records which gateway transactions have already
// been reported to the analytics sink. The insert doubles as the check: a
// conflicting row means somebody reported first.
type PurchaseMarkerRepository struct {
	pool *pgxpool.Pool
}

func NewPurchaseMarkerRepository(pool *pgxpool.Pool) *PurchaseMarkerRepository {
	return &PurchaseMarkerRepository{pool: pool}
}

// TryMark returns true when this caller claimed the transaction id, false
// when it was already marked.
func (r *PurchaseMarkerRepository) TryMark(ctx context.Context, transactionID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO purchase_events (transaction_id)
		 VALUES ($1)
		 ON CONFLICT (transaction_id) DO NOTHING`,
		transactionID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark purchase event", err)
	}
	return tag.RowsAffected() > 0, nil
}
