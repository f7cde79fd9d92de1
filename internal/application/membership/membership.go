// Package membership valida que un usuario pertenece al hogar dueño de un recurso.
package membership

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// RoleReader lee el rol de un usuario en un hogar ("" si no es miembro).
type RoleReader interface {
	MemberRole(ctx context.Context, householdID, userID string) (string, error)
}

// Require devuelve el rol del usuario o domain.ErrHouseholdMismatch si no es miembro.
func Require(ctx context.Context, r RoleReader, householdID, userID string) (string, error) {
	if householdID == "" || userID == "" {
		return "", domain.ErrHouseholdMismatch
	}
	role, err := r.MemberRole(ctx, householdID, userID)
	if err != nil {
		return "", fmt.Errorf("leer rol en hogar: %w", err)
	}
	if role == "" {
		return "", domain.ErrHouseholdMismatch
	}
	return role, nil
}

// RequireOwner como Require pero exige rol owner (domain.ErrForbidden si es otro rol).
func RequireOwner(ctx context.Context, r RoleReader, householdID, userID string) error {
	role, err := Require(ctx, r, householdID, userID)
	if err != nil {
		return err
	}
	if role != entity.HouseholdRoleOwner {
		return domain.ErrForbidden
	}
	return nil
}
