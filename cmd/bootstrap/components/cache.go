package components

import (
	"coupon-ledger/internal/infra/memstore"
	"coupon-ledger/internal/infra/redisstore"
	"coupon-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var RedisCacheModule = fx.Module("cache/redis",
	fx.Provide(
		fx.Annotate(
			redisstore.NewOTPStore,
			fx.As(new(shared.OTPStore)),
		),
		fx.Annotate(
			redisstore.NewRedeemedMarker,
			fx.As(new(shared.RedeemedMarker)),
		),
	),
)

var MemoryCacheModule = fx.Module("cache/memory",
	fx.Provide(
		fx.Annotate(
			memstore.NewOTPStore,
			fx.As(new(shared.OTPStore)),
		),
		func() shared.RedeemedMarker { return shared.NopRedeemedMarker{} },
	),
)
