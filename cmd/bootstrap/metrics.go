package bootstrap

import (
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func(cfg config.Config) *metrics.Collector {
			return metrics.NewCollector(cfg.App.Version, cfg.App.Env)
		},
	),
)
