package api

import (
	"net/http"

	resdto "coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version string
	env     string
}

func NewHealthHandler(cfg config.AppConfig) *HealthHandler {
	return &HealthHandler{version: cfg.Version, env: cfg.Env}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{Status: "ok"})
}

// @Summary Service version
// @Tags system
// @Produce json
// @Success 200 {object} resdto.VersionResponse
// @Router /version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.VersionResponse{Version: h.version, Env: h.env})
}
