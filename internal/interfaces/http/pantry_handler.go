package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// PantryHandler maneja la despensa del hogar.
type PantryHandler struct {
	uc *usecase.PantryUseCase
}

// NewPantryHandler construye el handler.
func NewPantryHandler(uc *usecase.PantryUseCase) *PantryHandler {
	return &PantryHandler{uc: uc}
}

// List godoc
// @Summary      Buscar en la despensa
// @Description  Filtros opcionales; sin vencimiento al final.
// @Tags         pantry
// @Produce      json
// @Security     BearerAuth
// @Param        household_id    query  string  true   "ID del hogar"
// @Param        ingredient_id   query  string  false  "ID del ingrediente"
// @Param        expires_before  query  string  false  "YYYY-MM-DD"
// @Param        expires_after   query  string  false  "YYYY-MM-DD"
// @Param        has_quantity    query  bool    false  "true: cantidad > 0"
// @Success      200             {array}  dto.PantryItemResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/pantry [get]
func (h *PantryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.Context(), dto.PantrySearchRequest{
		HouseholdID:   GetHouseholdID(c),
		IngredientID:  c.Query("ingredient_id"),
		ExpiresBefore: c.Query("expires_before"),
		ExpiresAfter:  c.Query("expires_after"),
		HasQuantity:   c.Query("has_quantity"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Registrar existencia
// @Tags         pantry
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePantryItemRequest  true  "household_id, ingredient_id, quantity"
// @Success      201   {object}  dto.PantryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pantry [post]
func (h *PantryHandler) Create(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreatePantryItemRequest
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
// @Summary      Actualizar existencia
// @Tags         pantry
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "ID"
// @Param        body  body  dto.UpdatePantryItemRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.PantryItemResponse
// @Router       /api/pantry/{id} [put]
func (h *PantryHandler) Update(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.UpdatePantryItemRequest
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
// @Summary      Eliminar existencia
// @Tags         pantry
// @Security     BearerAuth
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/pantry/{id} [delete]
func (h *PantryHandler) Delete(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
