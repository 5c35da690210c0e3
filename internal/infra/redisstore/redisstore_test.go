package redisstore

import (
	"context"
	"testing"
	"time"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestOTPStore(t *testing.T) {
	ctx := context.Background()

	t.Run("success: take consumes the code", func(t *testing.T) {
		client, mr := newTestClient(t)
		s := NewOTPStore(client)

		require.NoError(t, s.Save(ctx, "09011112222", "hash-1", time.Minute))
		assert.True(t, mr.Exists(otpKey("09011112222")))
		assert.Equal(t, time.Minute, mr.TTL(otpKey("09011112222")))

		got, err := s.Take(ctx, "09011112222")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", got)
		assert.False(t, mr.Exists(otpKey("09011112222")))

		_, err = s.Take(ctx, "09011112222")
		assert.ErrorIs(t, err, shared.ErrOTPNotFound)
	})

	t.Run("error: expired code", func(t *testing.T) {
		client, mr := newTestClient(t)
		s := NewOTPStore(client)

		require.NoError(t, s.Save(ctx, "09011112222", "hash-1", time.Minute))
		mr.FastForward(61 * time.Second)

		_, err := s.Take(ctx, "09011112222")
		assert.ErrorIs(t, err, shared.ErrOTPNotFound)
	})

	t.Run("error: redis down", func(t *testing.T) {
		client, mr := newTestClient(t)
		s := NewOTPStore(client)
		mr.Close()

		_, err := s.Take(ctx, "09011112222")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrOTPNotFound)
	})
}

func TestRedeemedMarker(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)
	m := NewRedeemedMarker(client, config.RedisConfig{RedeemedTTL: time.Hour})

	hit, err := m.IsRedeemed(ctx, coupon.Token("tok-a"))
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, m.MarkRedeemed(ctx, coupon.Token("tok-a")))
	require.NoError(t, m.MarkRedeemed(ctx, coupon.Token("tok-a")))

	hit, err = m.IsRedeemed(ctx, coupon.Token("tok-a"))
	require.NoError(t, err)
	assert.True(t, hit)

	assert.Equal(t, time.Hour, mr.TTL(redeemedKey("tok-a")))
	assert.Len(t, mr.Keys(), 1)

	// an expired marker is only a miss
	mr.FastForward(2 * time.Hour)
	hit, err = m.IsRedeemed(ctx, coupon.Token("tok-a"))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestConnect(t *testing.T) {
	t.Run("success: empty url disables redis", func(t *testing.T) {
		client, cleanup, err := Connect(context.Background(), config.RedisConfig{})
		require.NoError(t, err)
		assert.Nil(t, client)
		cleanup()
	})

	t.Run("success: connects to server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, cleanup, err := Connect(context.Background(), config.RedisConfig{URL: "redis://" + mr.Addr()})
		require.NoError(t, err)
		require.NotNil(t, client)
		cleanup()
	})

	t.Run("error: bad url", func(t *testing.T) {
		_, _, err := Connect(context.Background(), config.RedisConfig{URL: "://nope"})
		assert.Error(t, err)
	})
}
