//go:build unit

package settings_test

import (
	"testing"

	"experience-market/internal/domain/settings"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value float64
		errIs error
	}{
		{name: "commission rate lower bound", key: settings.KeyCommissionRate, value: 0},
		{name: "commission rate upper bound", key: settings.KeyCommissionRate, value: 1},
		{name: "commission rate mid", key: settings.KeyCommissionRate, value: 0.15},
		{name: "commission rate negative", key: settings.KeyCommissionRate, value: -0.01, errIs: settings.ErrOutOfDomain},
		{name: "commission rate above one", key: settings.KeyCommissionRate, value: 1.01, errIs: settings.ErrOutOfDomain},
		{name: "service fee zero", key: settings.KeyServiceFee, value: 0},
		{name: "service fee positive", key: settings.KeyServiceFee, value: 250},
		{name: "service fee negative", key: settings.KeyServiceFee, value: -1, errIs: settings.ErrOutOfDomain},
		{name: "unknown key", key: "max_upload_size", value: 10, errIs: settings.ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := settings.Validate(tt.key, tt.value)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	snap := settings.Snapshot{
		settings.KeyCommissionRate: 0.2,
		settings.KeyServiceFee:     100,
	}

	rate, ok := snap.CommissionRate()
	assert.True(t, ok)
	assert.Equal(t, 0.2, rate)

	fee, ok := snap.ServiceFee()
	assert.True(t, ok)
	assert.Equal(t, float64(100), fee)

	_, ok = settings.Snapshot{}.CommissionRate()
	assert.False(t, ok)
}
