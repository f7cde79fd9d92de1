package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// MealTypeHandler maneja los tipos de comida del hogar.
type MealTypeHandler struct {
	uc *usecase.MealTypeUseCase
}

// NewMealTypeHandler construye el handler.
func NewMealTypeHandler(uc *usecase.MealTypeUseCase) *MealTypeHandler {
	return &MealTypeHandler{uc: uc}
}

// List godoc
// @Summary      Tipos de comida del hogar
// @Tags         meal-types
// @Produce      json
// @Security     BearerAuth
// @Param        household_id  query  string  true  "ID del hogar"
// @Success      200           {array}  dto.MealTypeResponse
// @Router       /api/meal-types [get]
func (h *MealTypeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetHouseholdID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear tipo de comida
// @Tags         meal-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMealTypeRequest  true  "household_id, name, order"
// @Success      201   {object}  dto.MealTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/meal-types [post]
func (h *MealTypeHandler) Create(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateMealTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de comida (solo owner)
// @Tags         meal-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID"
// @Param        body  body  dto.UpdateMealTypeRequest  true  "name, order"
// @Success      200   {object}  dto.MealTypeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/meal-types/{id} [put]
func (h *MealTypeHandler) Update(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.UpdateMealTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de comida (solo owner)
// @Tags         meal-types
// @Security     BearerAuth
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/meal-types/{id} [delete]
func (h *MealTypeHandler) Delete(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
