package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/mealplan"
)

// MealPlanHandler maneja los planes semanales de comidas.
type MealPlanHandler struct {
	uc *mealplan.UseCase
}

// NewMealPlanHandler construye el handler.
func NewMealPlanHandler(uc *mealplan.UseCase) *MealPlanHandler {
	return &MealPlanHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plan semanal
// @Description  week_start se normaliza al lunes. Si el hogar ya tenía plan para esa semana se reemplaza.
// @Tags         meal-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMealPlanRequest  true  "household_id, week_start, items"
// @Success      201   {object}  dto.MealPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/meal-plans [post]
func (h *MealPlanHandler) Create(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateMealPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Plan de una semana
// @Tags         meal-plans
// @Produce      json
// @Security     BearerAuth
// @Param        household_id  query     string  true  "ID del hogar"
// @Param        week          query     string  true  "semana ISO, ej: 2025-W49"
// @Success      200           {object}  dto.MealPlanResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Failure      422           {object}  dto.ErrorResponse
// @Router       /api/meal-plans/search [get]
func (h *MealPlanHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), GetHouseholdID(c), c.Query("week"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plan
// @Tags         meal-plans
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.MealPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/meal-plans/{id} [get]
func (h *MealPlanHandler) GetByID(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.GetByID(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plan
// @Description  items no vacío reemplaza todas las comidas del plan.
// @Tags         meal-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID"
// @Param        body  body  dto.UpdateMealPlanRequest  true  "name, notes, items"
// @Success      200   {object}  dto.MealPlanResponse
// @Router       /api/meal-plans/{id} [put]
func (h *MealPlanHandler) Update(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.UpdateMealPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
