package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coupon-ledger/internal/handler/api"
	"coupon-ledger/internal/handler/middleware"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health *api.HealthHandler
	Auth   *api.AuthHandler
	Coupon *api.CouponHandler
	Scan   *api.ScanHandler
	Wallet *api.WalletHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	collector *metrics.Collector,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, collector)
	setupRoutes(engine, cfg, collector, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, collector *metrics.Collector) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(collector.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	collector *metrics.Collector,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/health", Handler: h.Health.Health},
		{Method: http.MethodGet, Path: "/version", Handler: h.Health.Version},
		{Method: http.MethodGet, Path: "/metrics", Handler: collector.Handler()},
	})

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	addRoutes(auth, []route{
		{Method: http.MethodPost, Path: "/otp", Handler: h.Auth.RequestOTP},
		{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.VerifyOTP},
	})

	coupons := engine.Group("/coupons")
	coupons.Use(middleware.RequireAdminKey(cfg.Admin))
	addRoutes(coupons, []route{
		{Method: http.MethodPost, Path: "/generate", Handler: h.Coupon.Generate},
	})

	requireAuth := authMiddleware.RequireAuth()
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/scan", Handler: h.Scan.Scan, Mw: []gin.HandlerFunc{requireAuth}},
		{Method: http.MethodGet, Path: "/users/:id/wallet", Handler: h.Wallet.GetWallet, Mw: []gin.HandlerFunc{requireAuth}},
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
