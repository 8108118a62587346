//go:build unit || e2e

package builder

import (
	"time"

	reqdto "experience-market/internal/handler/dto/request"
	"experience-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	ExperienceID    uuid.UUID
	ExperienceTitle string
	UserID          uuid.UUID
	Guests          int32
	Currency        string
	TotalCents      int64
	CommissionCents int64
	Status          string
	ReferralCode    *string
	GatewayTxnID    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	txn := "txn_test_1"
	return &BookingBuilder{
		ID:              uuid.New(),
		ExperienceID:    uuid.New(),
		ExperienceTitle: "Sunset kayak tour",
		UserID:          uuid.New(),
		Guests:          2,
		Currency:        "EUR",
		TotalCents:      8000,
		CommissionCents: 1450,
		Status:          "paid",
		GatewayTxnID:    &txn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID: b.ExperienceID,
		Guests:       b.Guests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		ExperienceID:    b.ExperienceID,
		ExperienceTitle: b.ExperienceTitle,
		UserID:          b.UserID,
		Guests:          b.Guests,
		Currency:        b.Currency,
		TotalCents:      b.TotalCents,
		CommissionCents: b.CommissionCents,
		Status:          b.Status,
		ReferralCode:    b.ReferralCode,
		GatewayTxnID:    b.GatewayTxnID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() queries.BookingListItem {
	return queries.BookingListItem{
		ID:              b.ID,
		ExperienceID:    b.ExperienceID,
		ExperienceTitle: b.ExperienceTitle,
		Guests:          b.Guests,
		TotalCents:      b.TotalCents,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}
