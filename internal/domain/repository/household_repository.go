package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// HouseholdRepository define el puerto de persistencia para hogares y sus miembros.
type HouseholdRepository interface {
	// Create persiste el hogar y registra al dueño como miembro con rol owner.
	Create(ctx context.Context, household *entity.Household) error
	GetByID(ctx context.Context, id string) (*entity.Household, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Household, error)
	ListAll(ctx context.Context) ([]*entity.Household, error)

	// UpsertMember agrega al usuario o actualiza su rol si ya era miembro.
	UpsertMember(ctx context.Context, member *entity.HouseholdMember) error
	ListMembers(ctx context.Context, householdID string) ([]*entity.HouseholdMember, error)

	// MemberRole devuelve el rol del usuario en el hogar, o "" si no es miembro.
	MemberRole(ctx context.Context, householdID, userID string) (string, error)
}
