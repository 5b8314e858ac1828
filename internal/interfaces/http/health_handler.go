package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// Pinger lo implementa *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler GET /health
type HealthHandler struct {
	base
	db Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger, cfg HandlerConfig) *HealthHandler {
	return &HealthHandler{base: newBase(cfg, "health"), db: db}
}

// Check responde 503 si la base no contesta.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.db == nil {
		return c.JSON(dto.HealthResponse{Status: "ok", Database: "n/a"})
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("base de datos no disponible")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Database: "down"})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Database: "up"})
}
