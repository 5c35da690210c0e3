package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"coupon-ledger/internal/handler/httperr"
	"coupon-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-API-Key"

var (
	errMissingAdminKey = errors.New("missing admin api key")
	errWrongAdminKey   = errors.New("admin api key mismatch")
)

func RequireAdminKey(cfg config.AdminConfig) gin.HandlerFunc {
	expected := []byte(cfg.APIKey)

	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAdminKey, "API key required", nil)
			return
		}
		if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			slog.Warn("admin api key rejected", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusForbidden, errWrongAdminKey, "Invalid API key", nil)
			return
		}
		c.Next()
	}
}
