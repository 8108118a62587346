package commands

import (
	"context"

	"experience-market/internal/domain/booking"
	"experience-market/internal/domain/experience"
	"experience-market/internal/domain/hostprofile"
	"experience-market/internal/domain/settings"
	"experience-market/internal/domain/user"
	"experience-market/internal/infra/db"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type ExperienceSnapshot struct {
	ID         uuid.UUID
	HostID     uuid.UUID
	Title      string
	PriceCents int64
	Currency   string
}

type SettingsRepository interface {
	// Set performs a last-write-wins update with a server-assigned updated_at.
	// Unknown keys are a not-found, never an insert.
	Set(ctx context.Context, key string, value float64) (*settings.Setting, error)
	// Snapshot reads the given keys through tx so the values are consistent
	// with the booking row written in the same transaction.
	Snapshot(ctx context.Context, tx db.DBTX, keys ...string) (settings.Snapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// MarkPaid flips pending→paid and records the gateway receipt; it affects
	// zero rows if the booking is no longer pending.
	MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, gatewayTxnID string) error
	Cancel(ctx context.Context, id uuid.UUID) error
}

type ExperienceRepository interface {
	Create(ctx context.Context, e *experience.Experience) error
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceSnapshot, error)
}

type HostProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*hostprofile.Profile, error)
	Upsert(ctx context.Context, p *hostprofile.Profile) error
}

type FavoritesRepository interface {
	Merge(ctx context.Context, userID uuid.UUID, experienceIDs []uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type ChargeOrder struct {
	BookingID   uuid.UUID
	AmountCents int64
	Currency    string
	Description string
}

type ChargeReceipt struct {
	TransactionID string
	AmountCents   int64
	Currency      string
}

// PaymentGateway is the adapter port for the external payment service. In
// degraded mode Charge fails fast with errs.ErrGatewayDegraded.
type PaymentGateway interface {
	Charge(ctx context.Context, order ChargeOrder) (*ChargeReceipt, error)
}

type PurchaseItem struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	Price        float64 `json:"price"`
	Quantity     int32   `json:"quantity"`
	ItemCategory string  `json:"item_category"`
}

type PurchaseEvent struct {
	TransactionID string         `json:"transaction_id"`
	Value         float64        `json:"value"`
	Currency      string         `json:"currency"`
	Items         []PurchaseItem `json:"items"`
}

// PurchaseReporter forwards a completed purchase to the analytics sink.
// Implementations are fire-and-forget: failures are logged, never returned.
type PurchaseReporter interface {
	Report(ctx context.Context, event PurchaseEvent)
}
