package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"coupon-ledger/internal/handler/httperr"
	"coupon-ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errNoUser       = errors.New("no authenticated user in context")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set("jwt_claims", map[string]any{
			"user_id": strconv.FormatInt(userID, 10),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok && id > 0
}

// MustUserID aborts with 401 when no user was authenticated.
func MustUserID(c *gin.Context) (int64, bool) {
	id, ok := GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
	}
	return id, ok
}
