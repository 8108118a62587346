package booking

import "errors"

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in the currency's minor unit (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyBy(n int64) Money {
	return Money{cents: m.cents * n}
}
