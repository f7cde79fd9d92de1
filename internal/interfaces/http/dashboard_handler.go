package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Despensa-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// WeeklySummary devuelve el resumen de la semana del hogar.
// GET /api/dashboard/weekly-summary?household_id=&week=YYYY-Www
//
// Respuesta: WeeklySummaryDTO (planned_meals, completed_meals, top_recipes[5],
// top_ingredients[5], week_start, week_end).
//
// @Summary      Resumen semanal
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        household_id  query     string  true  "ID del hogar"
// @Param        week          query     string  true  "semana ISO, ej: 2025-W49"
// @Success      200           {object}  dto.WeeklySummaryDTO
// @Failure      422           {object}  dto.ErrorResponse
// @Router       /api/dashboard/weekly-summary [get]
func (h *DashboardHandler) WeeklySummary(c *fiber.Ctx) error {
	summary, err := h.uc.WeeklySummary(c.Context(), GetHouseholdID(c), c.Query("week"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
