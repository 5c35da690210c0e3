package bootstrap

import (
	"coupon-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies the loaded config and the sections constructors depend on directly.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			func(c config.Config) config.AppConfig { return c.App },
			func(c config.Config) config.AdminConfig { return c.Admin },
			func(c config.Config) config.OTPConfig { return c.OTP },
			func(c config.Config) config.CouponConfig { return c.Coupon },
			func(c config.Config) config.RedisConfig { return c.Redis },
		),
	)
}
