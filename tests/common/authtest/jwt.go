//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"experience-market/internal/domain/user"
	"experience-market/internal/pkg/clock"
	"experience-market/internal/pkg/config"
	"experience-market/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, clk clock.Clock) *jwt.Service {
	t.Helper()
	accessDuration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, accessDuration, refreshDuration, clk)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, clock.NewRealClock()).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token from a clock far enough in the past that
// the token is already expired on arrival.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-48 * time.Hour))
	token, err := h.service(t, past).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
