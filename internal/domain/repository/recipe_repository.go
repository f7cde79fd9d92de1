package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// RecipeFilter filtros para el listado de recetas de un hogar.
type RecipeFilter struct {
	HouseholdID string
	Query       string // busca en nombre y descripción
	Limit       int
	Offset      int
}

// RecipeRepository define el puerto de persistencia para recetas y sus líneas de ingredientes.
type RecipeRepository interface {
	// Create persiste la receta y sus líneas en una transacción.
	Create(ctx context.Context, recipe *entity.Recipe) error
	// GetByID devuelve la receta con sus líneas (nil, nil si no existe).
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	// GetManyWithIngredients devuelve las recetas existentes de ids con sus líneas, indexadas por ID.
	// Los IDs inexistentes simplemente no aparecen en el resultado.
	GetManyWithIngredients(ctx context.Context, ids []string) (map[string]*entity.Recipe, error)
	Search(ctx context.Context, filter RecipeFilter) ([]*entity.Recipe, int, error)
	// Update actualiza la cabecera; si replaceIngredients, reemplaza todas las líneas.
	Update(ctx context.Context, recipe *entity.Recipe, replaceIngredients bool) error
	Delete(ctx context.Context, id string) error
}
