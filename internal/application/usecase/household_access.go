package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// HouseholdAccessService resuelve el rol de un usuario en un hogar.
// Es el único punto que consulta la pertenencia para el middleware HTTP.
type HouseholdAccessService struct {
	households repository.HouseholdRepository
}

// NewHouseholdAccessService construye el servicio de acceso.
func NewHouseholdAccessService(households repository.HouseholdRepository) *HouseholdAccessService {
	return &HouseholdAccessService{households: households}
}

// RoleOf devuelve el rol del usuario en el hogar, o "" (sin error) si no es miembro.
// Devuelve error solo ante fallos de infraestructura.
func (s *HouseholdAccessService) RoleOf(ctx context.Context, householdID, userID string) (string, error) {
	if householdID == "" || userID == "" {
		return "", fmt.Errorf("household: householdID y userID son obligatorios")
	}
	return s.households.MemberRole(ctx, householdID, userID)
}
