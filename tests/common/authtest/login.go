package authtest

import (
	"net/http"
	"testing"

	"coupon-ledger/internal/handler/dto/request"
	"coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginWithOTP runs the OTP round trip and returns the bearer token.
// The router must be configured with a fixed OTP dev code.
func LoginWithOTP(t *testing.T, router *gin.Engine, phone, code string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/auth/otp",
		request.RequestOTPRequest{Phone: phone}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, router, http.MethodPost, "/auth/verify",
		request.VerifyOTPRequest{Phone: phone, OTP: code}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.VerifyOTPResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}
