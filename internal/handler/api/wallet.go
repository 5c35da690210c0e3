package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	resdto "coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/internal/handler/httperr"
	"coupon-ledger/internal/handler/middleware"
	"coupon-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errForeignWallet = errors.New("wallet belongs to another user")

type WalletHandler struct {
	q queries.WalletQueries
}

func NewWalletHandler(q queries.WalletQueries) *WalletHandler {
	return &WalletHandler{q: q}
}

// GetWallet returns the balance and transaction history of the caller.
// Reading another user's wallet is forbidden.
//
// @Summary Get wallet
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} resdto.WalletResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/{id}/wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errors.New("user id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	callerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}
	if callerID != id {
		httperr.AbortWithError(c, http.StatusForbidden, errForeignWallet, "Forbidden", nil)
		return
	}

	view, err := h.q.GetWallet(c.Request.Context(), id)
	if err != nil {
		slog.Error("wallet lookup failed", "request_id", middleware.GetRequestID(c), "user_id", id, "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}
