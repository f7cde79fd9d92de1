package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RecipeUsage uso de una receta en la semana.
type RecipeUsage struct {
	RecipeID   string
	Name       string
	UsageCount int
}

// IngredientUsage cantidad cruda (sin escalar por porciones) de un ingrediente en la semana.
type IngredientUsage struct {
	IngredientID  string
	Name          string
	TotalQuantity decimal.Decimal
}

// DashboardRepository consultas read-only para el resumen semanal del hogar.
// Los rangos son de fechas calendario inclusivas.
type DashboardRepository interface {
	// CountMeals cuenta las comidas planificadas entre from y to, y las que tienen fecha <= upTo.
	CountMeals(ctx context.Context, householdID string, from, to, upTo time.Time) (planned, completed int, err error)
	TopRecipes(ctx context.Context, householdID string, from, to time.Time, limit int) ([]RecipeUsage, error)
	TopIngredients(ctx context.Context, householdID string, from, to time.Time, limit int) ([]IngredientUsage, error)
}
