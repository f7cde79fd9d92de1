package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// MealTypeRepository define el puerto de persistencia para tipos de comida.
type MealTypeRepository interface {
	Create(ctx context.Context, mealType *entity.MealType) error
	// CreateIfAbsent inserta el tipo solo si el hogar no tiene uno con el mismo nombre.
	CreateIfAbsent(ctx context.Context, mealType *entity.MealType) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.MealType, error)
	ListByHousehold(ctx context.Context, householdID string) ([]*entity.MealType, error)
	MaxOrder(ctx context.Context, householdID string) (int, error)
	Update(ctx context.Context, mealType *entity.MealType) error
	Delete(ctx context.Context, id string) error
}
