package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// HouseholdHandler maneja hogares y sus miembros.
type HouseholdHandler struct {
	uc *usecase.HouseholdUseCase
}

// NewHouseholdHandler construye el handler.
func NewHouseholdHandler(uc *usecase.HouseholdUseCase) *HouseholdHandler {
	return &HouseholdHandler{uc: uc}
}

// List godoc
// @Summary      Mis hogares
// @Tags         households
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.HouseholdResponse
// @Router       /api/households [get]
func (h *HouseholdHandler) List(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	list, err := h.uc.ListMine(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear hogar
// @Description  El creador queda como owner y el hogar recibe los tipos de comida por defecto.
// @Tags         households
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateHouseholdRequest  true  "name"
// @Success      201   {object}  dto.HouseholdResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/households [post]
func (h *HouseholdHandler) Create(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateHouseholdRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Detalle del hogar con miembros
// @Tags         households
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del hogar"
// @Success      200  {object}  dto.HouseholdDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/households/{id} [get]
func (h *HouseholdHandler) GetByID(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddMember godoc
// @Summary      Agregar miembro
// @Description  Por email o user_id; rol por defecto member. Si ya era miembro se actualiza el rol.
// @Tags         households
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "ID del hogar"
// @Param        body  body  dto.AddMemberRequest  true  "email o user_id, role"
// @Success      201   {object}  dto.HouseholdMemberResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/households/{id}/members [post]
func (h *HouseholdHandler) AddMember(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.AddMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddMember(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
