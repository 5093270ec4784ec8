package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/application/usecase"
)

// DashboardHandler maneja las consultas del panel de inicio (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Cards indicadores de cabecera.
// GET /api/dashboard/cards
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	cards, err := h.uc.Cards(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cards)
}

// MonthlySales serie mensual de facturación.
// GET /api/dashboard/ventas-mensuales?months=12
func (h *DashboardHandler) MonthlySales(c *fiber.Ctx) error {
	series, err := h.uc.MonthlySales(c.Context(), c.QueryInt("months", 12))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(series)
}

// TopProducts productos más vendidos.
// GET /api/dashboard/productos-top?limit=5
func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	list, err := h.uc.TopProducts(c.Context(), c.QueryInt("limit", 5))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Distribution reparto ventas vs presupuestos para el gráfico de torta.
// GET /api/dashboard/distribucion
func (h *DashboardHandler) Distribution(c *fiber.Ctx) error {
	dist, err := h.uc.Distribution(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dist)
}

// DailySales serie diaria de facturación.
// GET /api/dashboard/ventas-diarias?days=30
func (h *DashboardHandler) DailySales(c *fiber.Ctx) error {
	series, err := h.uc.DailySales(c.Context(), c.QueryInt("days", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(series)
}
