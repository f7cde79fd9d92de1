package dto

import "github.com/shopspring/decimal"

// WeeklySummaryDTO respuesta de GET /api/dashboard/weekly-summary.
type WeeklySummaryDTO struct {
	Week           string             `json:"week"`       // ej: "2025-W49"
	WeekStart      string             `json:"week_start"` // lunes, YYYY-MM-DD
	WeekEnd        string             `json:"week_end"`   // domingo, YYYY-MM-DD
	PlannedMeals   int                `json:"planned_meals"`
	CompletedMeals int                `json:"completed_meals"` // fecha <= hoy
	TopRecipes     []TopRecipeDTO     `json:"top_recipes"`
	TopIngredients []TopIngredientDTO `json:"top_ingredients"`
}

// TopRecipeDTO receta más usada de la semana.
type TopRecipeDTO struct {
	RecipeID   string `json:"recipe_id"`
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
}

// TopIngredientDTO ingrediente con mayor cantidad (cruda, sin escalar) en la semana.
type TopIngredientDTO struct {
	IngredientID  string          `json:"ingredient_id"`
	Name          string          `json:"name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}
