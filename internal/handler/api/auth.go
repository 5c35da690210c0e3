package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "coupon-ledger/internal/handler/dto/request"
	resdto "coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/internal/handler/httperr"
	"coupon-ledger/internal/handler/middleware"
	"coupon-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Request OTP
// @Description Issue a one-time code for the phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestOTPRequest true "Phone"
// @Success 200 {object} resdto.RequestOTPResponse
// @Failure 400 {object} map[string]string
// @Router /auth/otp [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req reqdto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Phone required", nil)
		return
	}

	if err := h.cmds.RequestOTP(c.Request.Context(), req.Phone); err != nil {
		if errors.Is(err, commands.ErrInvalidPhone) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid phone number", nil)
			return
		}
		slog.Error("otp request failed", "request_id", middleware.GetRequestID(c), "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.RequestOTPResponse{Success: true})
}

// @Summary Verify OTP
// @Description Exchange a one-time code for a JWT, registering the phone on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "Phone and code"
// @Success 200 {object} resdto.VerifyOTPResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Phone and OTP required", nil)
		return
	}

	result, err := h.cmds.VerifyOTP(c.Request.Context(), req.Phone, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPhone), errors.Is(err, commands.ErrOTPRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Phone and OTP required", nil)
		case errors.Is(err, commands.ErrInvalidOTP):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid OTP", nil)
		default:
			slog.Error("otp verification failed", "request_id", middleware.GetRequestID(c), "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VerifyOTPResponse{Token: result.Token})
}
