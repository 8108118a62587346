package repository

import (
	"context"

	"experience-market/internal/domain/booking"
	"experience-market/internal/infra"
	"experience-market/internal/infra/db"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO bookings
		   (id, experience_id, user_id, guests, currency, total_cents, commission_cents, status, referral_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID(), b.ExperienceID(), b.UserID(), b.Guests(), b.Currency(),
		b.Total().Cents(), b.Commission().Cents(), b.Status().String(), b.ReferralCode(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// MarkPaid is conditional on the booking still being pending, so a charge that
// raced with a cancellation cannot resurrect the row.
func (r *BookingRepository) MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, gatewayTxnID string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings
		 SET status = $2, gateway_txn_id = $3, updated_at = now()
		 WHERE id = $1 AND status = $4`,
		id, booking.StatusPaid.String(), gatewayTxnID, booking.StatusPending.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not pending", pgx.ErrNoRows)
	}
	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings
		 SET status = $2, updated_at = now()
		 WHERE id = $1 AND status NOT IN ($3, $4)`,
		id, booking.StatusCancelled.String(), booking.StatusCompleted.String(), booking.StatusCancelled.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not cancellable", pgx.ErrNoRows)
	}
	return nil
}

// Read store for queries.BookingReadStore.

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.pool.QueryRow(ctx,
		`SELECT b.id, b.experience_id, e.title, b.user_id, b.guests, b.currency,
		        b.total_cents, b.commission_cents, b.status, b.referral_code,
		        b.gateway_txn_id, b.created_at, b.updated_at
		 FROM bookings b
		 JOIN experiences e ON e.id = b.experience_id
		 WHERE b.id = $1`,
		id,
	).Scan(
		&view.ID, &view.ExperienceID, &view.ExperienceTitle, &view.UserID, &view.Guests,
		&view.Currency, &view.TotalCents, &view.CommissionCents, &view.Status,
		&view.ReferralCode, &view.GatewayTxnID, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return &view, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT b.id, b.experience_id, e.title, b.guests, b.total_cents, b.status, b.created_at
		 FROM bookings b
		 JOIN experiences e ON e.id = b.experience_id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.ExperienceID, &item.ExperienceTitle,
			&item.Guests, &item.TotalCents, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return items, nil
}
