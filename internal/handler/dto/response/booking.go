package response

import (
	"time"

	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ExperienceID    uuid.UUID `json:"experience_id"`
	ExperienceTitle string    `json:"experience_title"`
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

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	ExperienceID    uuid.UUID `json:"experience_id"`
	ExperienceTitle string    `json:"experience_title"`
	Guests          int32     `json:"guests"`
	TotalCents      int64     `json:"total_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}
