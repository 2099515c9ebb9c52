package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
)

// AdminHandler panel administrativo: métricas y vista general.
type AdminHandler struct {
	statsUC *usecase.StatsUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(statsUC *usecase.StatsUseCase) *AdminHandler {
	return &AdminHandler{statsUC: statsUC}
}

// Stats godoc
// @Summary      Métricas del panel admin
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.statsUC.AdminStats()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Overview vista general del área /admin (detrás del route guard, que ya
// garantizó una sesión ADMIN).
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	out, err := h.statsUC.AdminStats()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"email": GetEmail(c),
		"stats": out,
	})
}
