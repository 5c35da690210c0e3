package redisstore

import (
	"context"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

func redeemedKey(token coupon.Token) string {
	return keyPrefix + "redeemed:" + token.String()
}

// RedeemedMarker records tokens only after their redemption committed, so a hit is
// always true. A miss means nothing; the database decides. Keys expire after
// RedeemedTTL so the marker only caches recent redemptions.
type RedeemedMarker struct {
	client redis.Cmdable
	cfg    config.RedisConfig
}

func NewRedeemedMarker(client redis.Cmdable, cfg config.RedisConfig) *RedeemedMarker {
	return &RedeemedMarker{client: client, cfg: cfg}
}

func (m *RedeemedMarker) IsRedeemed(ctx context.Context, token coupon.Token) (bool, error) {
	n, err := m.client.Exists(ctx, redeemedKey(token)).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to check redeemed marker")
	}
	return n > 0, nil
}

func (m *RedeemedMarker) MarkRedeemed(ctx context.Context, token coupon.Token) error {
	if err := m.client.Set(ctx, redeemedKey(token), "1", m.cfg.RedeemedTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to set redeemed marker")
	}
	return nil
}
