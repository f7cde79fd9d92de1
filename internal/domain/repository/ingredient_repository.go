package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para el catálogo de ingredientes.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	GetByNameKey(ctx context.Context, nameKey string) (*entity.Ingredient, error)
	// GetMany devuelve los ingredientes existentes de ids, indexados por ID.
	GetMany(ctx context.Context, ids []string) (map[string]*entity.Ingredient, error)
	// Search lista ingredientes cuyo NameKey contiene query (vacío = todos), por nombre.
	Search(ctx context.Context, query string) ([]*entity.Ingredient, error)
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id string) error
}
