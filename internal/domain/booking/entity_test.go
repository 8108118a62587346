//go:build unit

package booking_test

import (
	"testing"

	"experience-market/internal/domain/booking"
	"experience-market/internal/domain/settings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExperienceSpec(t *testing.T, priceCents int64) booking.ExperienceSpec {
	t.Helper()
	return booking.ExperienceSpec{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		Title:         "Sunset kayak tour",
		PricePerGuest: mustMoney(t, priceCents),
		Currency:      "USD",
	}
}

func testSnapshot(rate, feeCents float64) settings.Snapshot {
	return settings.Snapshot{
		settings.KeyCommissionRate: rate,
		settings.KeyServiceFee:     feeCents,
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("freezes commission from the snapshot", func(t *testing.T) {
		b, err := booking.NewBooking(testExperienceSpec(t, 5000), uuid.New(), 2, testSnapshot(0.15, 250), nil)
		require.NoError(t, err)

		assert.Equal(t, int64(10000), b.Total().Cents())
		assert.Equal(t, int64(1750), b.Commission().Cents())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Nil(t, b.GatewayTxnID())
	})

	t.Run("carries the referral code when present", func(t *testing.T) {
		code := "PARTNER42"
		b, err := booking.NewBooking(testExperienceSpec(t, 5000), uuid.New(), 1, testSnapshot(0.1, 0), &code)
		require.NoError(t, err)
		require.NotNil(t, b.ReferralCode())
		assert.Equal(t, "PARTNER42", *b.ReferralCode())
	})

	t.Run("rejects non-positive guest counts", func(t *testing.T) {
		_, err := booking.NewBooking(testExperienceSpec(t, 5000), uuid.New(), 0, testSnapshot(0.1, 0), nil)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("fails without settlement settings", func(t *testing.T) {
		_, err := booking.NewBooking(testExperienceSpec(t, 5000), uuid.New(), 1, settings.Snapshot{}, nil)
		assert.ErrorIs(t, err, booking.ErrSettlementConfig)
	})
}

func TestBooking_MarkPaid(t *testing.T) {
	newPending := func(t *testing.T) *booking.Booking {
		b, err := booking.NewBooking(testExperienceSpec(t, 5000), uuid.New(), 1, testSnapshot(0.1, 0), nil)
		require.NoError(t, err)
		return b
	}

	t.Run("pending becomes paid with a receipt", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.MarkPaid("txn-123"))
		assert.Equal(t, booking.StatusPaid, b.Status())
		require.NotNil(t, b.GatewayTxnID())
		assert.Equal(t, "txn-123", *b.GatewayTxnID())
	})

	t.Run("refuses to mark paid without a receipt", func(t *testing.T) {
		b := newPending(t)
		assert.ErrorIs(t, b.MarkPaid(""), booking.ErrMissingReceipt)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("refuses double payment", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.MarkPaid("txn-123"))
		assert.ErrorIs(t, b.MarkPaid("txn-456"), booking.ErrNotPending)
	})

	t.Run("cancelled booking cannot be paid", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.MarkPaid("txn-123"), booking.ErrNotPending)
	})
}

func TestBooking_CommissionIsFrozen(t *testing.T) {
	// Commission is computed once from the creation-time snapshot; the same
	// entity re-read later must carry the original amount regardless of how
	// settings have moved since.
	b, err := booking.NewBooking(testExperienceSpec(t, 5000), uuid.New(), 2, testSnapshot(0.15, 250), nil)
	require.NoError(t, err)
	frozen := b.Commission().Cents()

	// A later snapshot with different values plays no part in the stored row.
	reloaded := booking.ReconstructBooking(
		b.ID(), b.ExperienceID(), b.UserID(), b.Guests(), b.Currency(),
		b.Total(), b.Commission(), b.Status(), b.ReferralCode(), b.GatewayTxnID(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	assert.Equal(t, frozen, reloaded.Commission().Cents())
}
