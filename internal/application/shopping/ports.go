package shopping

import (
	"context"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// MealPlanReader lee un plan con sus comidas.
type MealPlanReader interface {
	GetByID(ctx context.Context, id string) (*entity.MealPlan, error)
}

// RecipeReader resuelve recetas con sus líneas de ingredientes en una sola consulta.
type RecipeReader interface {
	GetManyWithIngredients(ctx context.Context, ids []string) (map[string]*entity.Recipe, error)
}

// PantryQuery existencias del hogar vigentes a una fecha.
type PantryQuery interface {
	ListEligible(ctx context.Context, householdID string, asOf time.Time) ([]*entity.PantryItem, error)
}

// ShoppingListStore persistencia de listas de compras.
type ShoppingListStore interface {
	Create(ctx context.Context, list *entity.ShoppingList) error
	GetByID(ctx context.Context, id string) (*entity.ShoppingList, error)
	ListByHousehold(ctx context.Context, householdID string, limit, offset int) ([]*entity.ShoppingList, error)
}

// ShoppingListPDFGenerator abstrae la generación del PDF imprimible de una lista.
type ShoppingListPDFGenerator interface {
	GenerateShoppingListPDF(ctx context.Context, list *entity.ShoppingList) ([]byte, error)
}
