package middleware

import (
	"log/slog"
	"slices"

	"coupon-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	exposed := cfg.ExposeHeaders
	if !slices.Contains(exposed, RequestIDHeader) {
		exposed = append(slices.Clone(exposed), RequestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", exposed)
	return cors.New(corsCfg)
}
