package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe receta de un hogar. Servings nil = porciones no indicadas (se asume 1 al escalar).
type Recipe struct {
	ID              string
	HouseholdID     string
	UserID          string
	Name            string
	Description     string
	Instructions    string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
	IsPublic        bool
	Ingredients     []RecipeIngredient
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecipeIngredient línea de ingrediente de una receta.
// Quantity nil o cero = ingrediente sin cuantificar (válido).
type RecipeIngredient struct {
	RecipeID       string
	IngredientID   string
	IngredientName string // solo lectura (join)
	DefaultUnit    string // unidad por defecto del ingrediente (join)
	Quantity       *decimal.Decimal
	Unit           string
	Notes          string
}
