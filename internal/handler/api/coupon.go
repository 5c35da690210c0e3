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

type CouponHandler struct {
	cmds commands.CouponCommands
}

func NewCouponHandler(cmds commands.CouponCommands) *CouponHandler {
	return &CouponHandler{cmds: cmds}
}

// Generate issues a batch of coupons. Admin only.
//
// @Summary Generate coupons
// @Description Issue a batch of single-use coupons and return their tokens
// @Tags coupons
// @Accept json
// @Produce json
// @Security AdminKey
// @Param request body reqdto.GenerateCouponsRequest true "Coupon batch"
// @Success 200 {object} resdto.GenerateCouponsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /coupons/generate [post]
func (h *CouponHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing fields", nil)
		return
	}

	result, err := h.cmds.IssueCoupons(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon batch", err.Error())
		default:
			slog.Error("coupon generation failed", "request_id", middleware.GetRequestID(c), "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueResult(result))
}
