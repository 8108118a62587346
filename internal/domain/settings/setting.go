package settings

import (
	"errors"
	"time"
)

// Commerce settings are a small key/value table mutated only by admins.
// Each key has its own value domain, enforced before any write.
const (
	KeyCommissionRate = "commission_rate"
	KeyServiceFee     = "service_fee"
)

var (
	ErrUnknownKey  = errors.New("unknown setting key")
	ErrOutOfDomain = errors.New("setting value out of domain")
)

type Setting struct {
	Key       string
	Value     float64
	UpdatedAt time.Time
}

// validators maps each known key to its domain check. Settings are seeded by
// migration; Set on a key outside this map is a not-found, never an insert.
var validators = map[string]func(float64) error{
	KeyCommissionRate: func(v float64) error {
		if v < 0 || v > 1 {
			return ErrOutOfDomain
		}
		return nil
	},
	KeyServiceFee: func(v float64) error {
		if v < 0 {
			return ErrOutOfDomain
		}
		return nil
	},
}

func IsKnownKey(key string) bool {
	_, ok := validators[key]
	return ok
}

func Validate(key string, value float64) error {
	validate, ok := validators[key]
	if !ok {
		return ErrUnknownKey
	}
	return validate(value)
}

// Snapshot is a point-in-time read of the settings table, taken once inside
// the booking-creation transaction. Commission is computed from it and frozen;
// later setting changes only affect future bookings.
type Snapshot map[string]float64

func (s Snapshot) CommissionRate() (float64, bool) {
	v, ok := s[KeyCommissionRate]
	return v, ok
}

// ServiceFee is expressed in the currency's minor unit (cents).
func (s Snapshot) ServiceFee() (float64, bool) {
	v, ok := s[KeyServiceFee]
	return v, ok
}
