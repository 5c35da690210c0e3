package bootstrap

import (
	"coupon-ledger/cmd/bootstrap/components"
	"coupon-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

func New(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		MetricsModule,
		JWTModule,
		storeModule(cfg.Store),
		cacheModule(cfg.Redis),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func storeModule(cfg config.StoreConfig) fx.Option {
	if cfg.Driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PersistenceModule,
	)
}

// Without Redis, OTPs live in process memory and the redeemed marker is disabled.
func cacheModule(cfg config.RedisConfig) fx.Option {
	if cfg.URL == "" {
		return components.MemoryCacheModule
	}
	return fx.Options(
		RedisModule,
		components.RedisCacheModule,
	)
}
