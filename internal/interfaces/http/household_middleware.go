package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
)

// householdChecker es el contrato mínimo que necesita el middleware para verificar pertenencia.
// Lo implementa *usecase.HouseholdAccessService.
type householdChecker interface {
	RoleOf(ctx context.Context, householdID, userID string) (string, error)
}

// RequireHousehold verifica que el usuario del token sea miembro del hogar indicado en
// el query param household_id. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 400 Bad Request → falta household_id.
//   - 403 Forbidden → el usuario no es miembro del hogar.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireHousehold(checker householdChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		householdID := c.Query("household_id")
		if householdID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "household_id es requerido",
			})
		}

		role, err := checker.RoleOf(c.Context(), householdID, userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "HOUSEHOLD_CHECK_FAILED",
				Message: "no se pudo verificar el hogar, intente más tarde",
			})
		}
		if role == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no perteneces a este hogar",
			})
		}

		c.Locals(LocalHouseholdID, householdID)
		c.Locals(LocalHouseholdRole, role)
		return c.Next()
	}
}
