package booking

import (
	"errors"
	"math"

	"experience-market/internal/domain/settings"
)

// ErrSettlementConfig means a required commerce setting was absent when the
// commission had to be computed. Checkout aborts; defaulting to zero would
// silently mis-charge hosts.
var ErrSettlementConfig = errors.New("required settlement settings missing")

// ComputeCommission returns the platform's cut of a booking total:
//
//	commission = round_half_even(total × commission_rate) + service_fee
//
// Rounding is half-to-even on the minor unit so that rounding bias does not
// accumulate across many bookings. The snapshot is taken once inside the
// booking-creation transaction; the result is stamped onto the booking and
// never recomputed.
func ComputeCommission(total Money, snap settings.Snapshot) (Money, error) {
	rate, ok := snap.CommissionRate()
	if !ok {
		return Money{}, ErrSettlementConfig
	}
	fee, ok := snap.ServiceFee()
	if !ok {
		return Money{}, ErrSettlementConfig
	}

	cents := int64(math.RoundToEven(float64(total.Cents())*rate)) + int64(math.RoundToEven(fee))
	return NewMoney(cents)
}
