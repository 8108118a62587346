//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, response: %s", w.Body.String()) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, "failed to decode response JSON: %s", w.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, response: %s", w.Body.String())

	if expectedErrorMsg == "" {
		return
	}
	assert.Contains(t, errorMessage(t, w.Body.Bytes()), expectedErrorMsg,
		"response error message doesn't contain expected text")
}

// errorMessage handles both error body shapes in use: handlers respond with
// {"error": "msg"}, the error middleware with {"error": {"message": "msg"}}.
func errorMessage(t *testing.T, body []byte) string {
	t.Helper()

	var flat struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &flat); err != nil {
		assert.Fail(t, "failed to decode error response JSON", string(body))
		return ""
	}

	var msg string
	if json.Unmarshal(flat.Error, &msg) == nil {
		return msg
	}

	var nested struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(flat.Error, &nested) == nil {
		return nested.Message
	}

	assert.Fail(t, "unrecognized error response shape", string(body))
	return ""
}
