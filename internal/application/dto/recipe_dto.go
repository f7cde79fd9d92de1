package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredientInput línea de ingrediente en la creación/edición de recetas.
// Quantity null = sin cuantificar ("sal al gusto").
type RecipeIngredientInput struct {
	IngredientID string           `json:"ingredient_id"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         string           `json:"unit"`
	Notes        string           `json:"notes"`
}

// CreateRecipeRequest entrada para crear una receta.
type CreateRecipeRequest struct {
	HouseholdID     string                  `json:"household_id"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Instructions    string                  `json:"instructions"`
	PrepTimeMinutes *int                    `json:"prep_time_minutes"`
	CookTimeMinutes *int                    `json:"cook_time_minutes"`
	Servings        *int                    `json:"servings"`
	IsPublic        bool                    `json:"is_public"`
	Ingredients     []RecipeIngredientInput `json:"ingredients"`
}

// UpdateRecipeRequest actualización parcial. Si viene "ingredients", reemplaza todas las líneas.
type UpdateRecipeRequest struct {
	Name            *string                  `json:"name"`
	Description     *string                  `json:"description"`
	Instructions    *string                  `json:"instructions"`
	PrepTimeMinutes *int                     `json:"prep_time_minutes"`
	CookTimeMinutes *int                     `json:"cook_time_minutes"`
	Servings        *int                     `json:"servings"`
	IsPublic        *bool                    `json:"is_public"`
	Ingredients     *[]RecipeIngredientInput `json:"ingredients"`
}

// RecipeIngredientResponse línea de ingrediente de una receta.
type RecipeIngredientResponse struct {
	IngredientID   string           `json:"ingredient_id"`
	IngredientName string           `json:"ingredient_name"`
	Quantity       *decimal.Decimal `json:"quantity"`
	Unit           string           `json:"unit,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// RecipeResponse salida de una receta.
type RecipeResponse struct {
	ID              string                     `json:"id"`
	HouseholdID     string                     `json:"household_id"`
	UserID          string                     `json:"user_id"`
	Name            string                     `json:"name"`
	Description     string                     `json:"description,omitempty"`
	Instructions    string                     `json:"instructions,omitempty"`
	PrepTimeMinutes *int                       `json:"prep_time_minutes"`
	CookTimeMinutes *int                       `json:"cook_time_minutes"`
	Servings        *int                       `json:"servings"`
	IsPublic        bool                       `json:"is_public"`
	Ingredients     []RecipeIngredientResponse `json:"ingredients,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// RecipeListResponse lista paginada de recetas.
type RecipeListResponse struct {
	Items []RecipeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
