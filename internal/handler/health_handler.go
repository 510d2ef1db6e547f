package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"craftify/internal/domain"
	"craftify/internal/dto"
	"craftify/internal/logger"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	cache        domain.Cache
	cacheEnabled bool
}

func NewHealthHandler(cache domain.Cache, cacheEnabled bool) *HealthHandler {
	return &HealthHandler{cache: cache, cacheEnabled: cacheEnabled}
}

// Health godoc
// @Summary Liveness check
// @Description Reports service liveness and the state of the optional Redis cache. A failing cache degrades the service but does not fail the check.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}
	if !h.cacheEnabled {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Cache ping failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Cache = "unavailable"
		return c.JSON(resp)
	}
	resp.Cache = "ok"
	return c.JSON(resp)
}
