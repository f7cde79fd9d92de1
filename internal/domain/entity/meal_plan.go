package entity

import "time"

// MealPlan plan semanal de comidas de un hogar.
// (HouseholdID, WeekStartDate) es único; WeekStartDate siempre es lunes.
type MealPlan struct {
	ID            string
	HouseholdID   string
	UserID        string
	WeekStartDate time.Time
	WeekLabel     string // ej: "2025-W49"
	Name          string
	Notes         string
	Items         []MealPlanItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MealPlanItem una comida planificada dentro del plan.
// Servings nil = porciones base de la receta.
type MealPlanItem struct {
	ID         string
	MealPlanID string
	Date       time.Time
	MealType   string // nombre del tipo de comida (texto libre o resuelto desde MealTypeID)
	MealTypeID string // vacío si no tiene
	RecipeID   string
	RecipeName string // solo lectura (join)
	Servings   *int
	Notes      string
	CreatedAt  time.Time
}
