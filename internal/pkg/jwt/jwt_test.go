package jwt_test

import (
	"testing"
	"time"

	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)
	token, err := svc.GenerateToken(7)
	require.NoError(t, err)

	t.Run("error: expired token", func(t *testing.T) {
		later := clock.NewMockClock(clk.Now().Add(2 * time.Hour))
		_, err := jwt.NewService("secret", time.Hour, later).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		_, err := jwt.NewService("other", time.Hour, clk).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: non-positive user id", func(t *testing.T) {
		zero, err := svc.GenerateToken(0)
		require.NoError(t, err)
		_, err = svc.ValidateToken(zero)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
