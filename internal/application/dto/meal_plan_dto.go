package dto

import "time"

// MealPlanItemInput una comida del plan. Date en formato YYYY-MM-DD.
// Si viene MealTypeID, su nombre reemplaza a MealType.
type MealPlanItemInput struct {
	Date       string `json:"date"`
	MealType   string `json:"meal_type"`
	MealTypeID string `json:"meal_type_id"`
	RecipeID   string `json:"recipe_id"`
	Servings   *int   `json:"servings"`
	Notes      string `json:"notes"`
}

// CreateMealPlanRequest entrada para crear (o reemplazar) el plan de una semana.
// WeekStart (YYYY-MM-DD) se normaliza al lunes de su semana.
type CreateMealPlanRequest struct {
	HouseholdID string              `json:"household_id"`
	WeekStart   string              `json:"week_start"`
	Name        string              `json:"name"`
	Notes       string              `json:"notes"`
	Items       []MealPlanItemInput `json:"items"`
}

// UpdateMealPlanRequest actualización parcial; Items no vacío reemplaza todas las comidas.
type UpdateMealPlanRequest struct {
	Name  *string             `json:"name"`
	Notes *string             `json:"notes"`
	Items []MealPlanItemInput `json:"items"`
}

// MealPlanItemResponse una comida del plan.
type MealPlanItemResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	MealType   string `json:"meal_type"`
	MealTypeID string `json:"meal_type_id,omitempty"`
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name,omitempty"`
	Servings   *int   `json:"servings"`
	Notes      string `json:"notes,omitempty"`
}

// MealPlanResponse salida de un plan semanal.
type MealPlanResponse struct {
	ID          string                 `json:"id"`
	HouseholdID string                 `json:"household_id"`
	UserID      string                 `json:"user_id"`
	Week        string                 `json:"week"` // ej: "2025-W49"
	WeekStart   string                 `json:"week_start"`
	WeekEnd     string                 `json:"week_end"`
	Name        string                 `json:"name,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	Items       []MealPlanItemResponse `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
