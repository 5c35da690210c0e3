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
	"github.com/go-playground/validator/v10"
)

type ScanHandler struct {
	cmds commands.RedemptionCommands
}

func NewScanHandler(cmds commands.RedemptionCommands) *ScanHandler {
	return &ScanHandler{cmds: cmds}
}

// @Summary Redeem coupon
// @Description Redeem a coupon token for the authenticated user. Each coupon credits points exactly once.
// @Tags scan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Scan request"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, scanBindMessage(err), nil)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		status, msg := redeemErrorStatus(err)
		if status == http.StatusInternalServerError {
			slog.Error("redemption failed",
				"request_id", middleware.GetRequestID(c),
				"user_id", userID,
				"error", err.Error(),
			)
		}
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

func scanBindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid scan request"
	}
	for _, fe := range verrs {
		if fe.Field() == "Token" {
			return "Token required"
		}
	}
	return "Invalid scan request"
}

func redeemErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, commands.ErrValidation):
		return http.StatusBadRequest, "Invalid scan request"
	case errors.Is(err, commands.ErrUnauthorized):
		return http.StatusUnauthorized, "Unknown user"
	case errors.Is(err, commands.ErrCouponNotFound):
		return http.StatusNotFound, "Coupon not found"
	case errors.Is(err, commands.ErrAlreadyRedeemed):
		return http.StatusConflict, "Coupon already redeemed"
	case errors.Is(err, commands.ErrRedemptionConflict):
		return http.StatusConflict, "Coupon already redeemed (race detected)"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
