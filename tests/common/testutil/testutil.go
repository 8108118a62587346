//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Field returns a map mutation that sets key to value; a nil value removes
// the key entirely, which is how tests express "field absent".
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// DtoMap round-trips a request DTO through JSON into a map and applies the
// given mutations, so validation tests can send near-valid payloads.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err, "failed to marshal DTO")

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "failed to unmarshal DTO map")

	for _, mutate := range muts {
		mutate(m)
	}
	return m
}
