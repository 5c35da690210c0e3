package bootstrap

import (
	"context"

	"coupon-ledger/internal/infra/redisstore"
	"coupon-ledger/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewRedis,
			fx.As(new(redis.Cmdable)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, cleanup, err := redisstore.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
