package middleware_test

import (
	"net/http"
	"testing"

	"coupon-ledger/internal/handler/middleware"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireAdminKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		configured string
		sent       string
		expectCode int
		expectMsg  string
	}{
		{name: "success: matching key", configured: "s3cret", sent: "s3cret", expectCode: http.StatusOK},
		{name: "error: key missing", configured: "s3cret", expectCode: http.StatusUnauthorized, expectMsg: "API key required"},
		{name: "error: key mismatch", configured: "s3cret", sent: "s3cret2", expectCode: http.StatusForbidden, expectMsg: "Invalid API key"},
		{name: "error: no key configured", configured: "", sent: "anything", expectCode: http.StatusForbidden, expectMsg: "Invalid API key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/admin", middleware.RequireAdminKey(config.AdminConfig{APIKey: tc.configured}), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			headers := map[string]string{}
			if tc.sent != "" {
				headers[middleware.AdminKeyHeader] = tc.sent
			}
			w := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/admin", nil, headers)

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tc.expectCode, tc.expectMsg)
				return
			}
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
