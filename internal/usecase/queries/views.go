package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SettingView struct {
	Key       string    `json:"key"`
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	ExperienceID    uuid.UUID `json:"experience_id"`
	ExperienceTitle string    `json:"experience_title"`
	UserID          uuid.UUID `json:"user_id"`
	Guests          int32     `json:"guests"`
	Currency        string    `json:"currency"`
	TotalCents      int64     `json:"total_cents"`
	CommissionCents int64     `json:"commission_cents"`
	Status          string    `json:"status"`
	ReferralCode    *string   `json:"referral_code,omitempty"`
	GatewayTxnID    *string   `json:"gateway_txn_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	ExperienceID    uuid.UUID `json:"experience_id"`
	ExperienceTitle string    `json:"experience_title"`
	Guests          int32     `json:"guests"`
	TotalCents      int64     `json:"total_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ExperienceView struct {
	ID         uuid.UUID `json:"id"`
	HostID     uuid.UUID `json:"host_id"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
}
