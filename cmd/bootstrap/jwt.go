package bootstrap

import (
	"fmt"
	"time"

	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}

	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
