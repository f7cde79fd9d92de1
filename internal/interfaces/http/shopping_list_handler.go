package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/shopping"
)

// ShoppingListHandler maneja la generación y consulta de listas de compras.
type ShoppingListHandler struct {
	generate *shopping.GenerateUseCase
	query    *shopping.QueryUseCase
}

// NewShoppingListHandler construye el handler.
func NewShoppingListHandler(generate *shopping.GenerateUseCase, query *shopping.QueryUseCase) *ShoppingListHandler {
	return &ShoppingListHandler{generate: generate, query: query}
}

// FromMealPlan godoc
// @Summary      Generar lista de compras desde un plan
// @Description  Suma los ingredientes del plan escalados por porciones y descuenta la despensa vigente.
// @Description  Cada llamada crea una lista nueva.
// @Tags         shopping-lists
// @Produce      json
// @Security     BearerAuth
// @Param        mealPlanId  path      string  true  "ID del plan"
// @Success      201         {object}  dto.ShoppingListResponse
// @Failure      400         {object}  dto.ErrorResponse  "EMPTY_MEAL_PLAN"
// @Failure      403         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/from-meal-plan/{mealPlanId} [post]
func (h *ShoppingListHandler) FromMealPlan(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	list, err := h.generate.FromMealPlan(c.Context(), userID, c.Params("mealPlanId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shopping.ToResponse(list))
}

// List godoc
// @Summary      Listas de compras del hogar
// @Tags         shopping-lists
// @Produce      json
// @Security     BearerAuth
// @Param        household_id  query     string  true   "ID del hogar"
// @Param        limit         query     int     false  "máximo de resultados (20 por defecto)"
// @Param        offset        query     int     false  "desplazamiento"
// @Success      200           {object}  dto.ShoppingListListResponse
// @Router       /api/shopping-lists [get]
func (h *ShoppingListHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.query.List(c.Context(), GetHouseholdID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lista de compras
// @Tags         shopping-lists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID"
// @Success      200  {object}  dto.ShoppingListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id} [get]
func (h *ShoppingListHandler) GetByID(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	list, err := h.query.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shopping.ToResponse(list))
}

// DownloadPDF godoc
// @Summary      Descargar lista imprimible
// @Tags         shopping-lists
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id}/pdf [get]
func (h *ShoppingListHandler) DownloadPDF(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	data, filename, err := h.query.DownloadPDF(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
