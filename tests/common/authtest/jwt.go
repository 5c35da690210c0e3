package authtest

import (
	"testing"
	"time"

	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock two days in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-48 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, past)
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	return token
}
