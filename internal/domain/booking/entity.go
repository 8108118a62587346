package booking

import (
	"errors"
	"time"

	"experience-market/internal/domain/settings"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("guest count must be positive")
	ErrNotPending        = errors.New("booking is not pending")
	ErrMissingReceipt    = errors.New("gateway receipt required to mark paid")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ExperienceSpec is the write-side snapshot of the experience being booked.
type ExperienceSpec struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Title         string
	PricePerGuest Money
	Currency      string
}

type Booking struct {
	id           uuid.UUID
	experienceID uuid.UUID
	userID       uuid.UUID
	guests       int32
	currency     string
	total        Money
	commission   Money
	status       Status
	referralCode *string
	gatewayTxnID *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooking freezes the commission from the settings snapshot at creation.
// The snapshot must come from the same transaction that persists the booking.
func NewBooking(
	exp ExperienceSpec,
	userID uuid.UUID,
	guests int32,
	snap settings.Snapshot,
	referralCode *string,
) (*Booking, error) {
	if guests <= 0 {
		return nil, ErrInvalidGuestCount
	}

	total := exp.PricePerGuest.MultiplyBy(int64(guests))
	commission, err := ComputeCommission(total, snap)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:           uuid.New(),
		experienceID: exp.ID,
		userID:       userID,
		guests:       guests,
		currency:     exp.Currency,
		total:        total,
		commission:   commission,
		status:       StatusPending,
		referralCode: referralCode,
	}, nil
}

func ReconstructBooking(
	id, experienceID, userID uuid.UUID,
	guests int32,
	currency string,
	total, commission Money,
	status Status,
	referralCode, gatewayTxnID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		experienceID: experienceID,
		userID:       userID,
		guests:       guests,
		currency:     currency,
		total:        total,
		commission:   commission,
		status:       status,
		referralCode: referralCode,
		gatewayTxnID: gatewayTxnID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// MarkPaid transitions pending→paid. The gateway transaction id is mandatory:
// a booking must never be paid without a corresponding receipt.
func (b *Booking) MarkPaid(gatewayTxnID string) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	if gatewayTxnID == "" {
		return ErrMissingReceipt
	}
	b.status = StatusPaid
	b.gatewayTxnID = &gatewayTxnID
	return nil
}

func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrInvalidTransition
	default:
		b.status = StatusCancelled
		return nil
	}
}

func (b *Booking) IsPaid() bool {
	return b.status == StatusPaid
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) ExperienceID() uuid.UUID { return b.experienceID }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) Guests() int32           { return b.guests }
func (b *Booking) Currency() string        { return b.currency }
func (b *Booking) Total() Money            { return b.total }
func (b *Booking) Commission() Money       { return b.commission }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) ReferralCode() *string   { return b.referralCode }
func (b *Booking) GatewayTxnID() *string   { return b.gatewayTxnID }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
