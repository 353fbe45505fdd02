package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/analytics"
)

// DashboardHandler expone las estadísticas del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats total vendido, bajo stock, últimos movimientos y ventas de la semana.
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
