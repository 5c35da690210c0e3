package components

import (
	"coupon-ledger/internal/handler"
	"coupon-ledger/internal/handler/api"
	"coupon-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewScanHandler,
		api.NewWalletHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	health *api.HealthHandler,
	auth *api.AuthHandler,
	coupon *api.CouponHandler,
	scan *api.ScanHandler,
	wallet *api.WalletHandler,
) handler.Handlers {
	return handler.Handlers{
		Health: health,
		Auth:   auth,
		Coupon: coupon,
		Scan:   scan,
		Wallet: wallet,
	}
}
