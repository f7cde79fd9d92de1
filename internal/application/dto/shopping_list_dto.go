package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingListItemResponse una línea de la lista de compras.
type ShoppingListItemResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name,omitempty"`
	NeededQuantity decimal.Decimal `json:"needed_quantity"`
	PantryQuantity decimal.Decimal `json:"pantry_quantity"`
	ToBuyQuantity  decimal.Decimal `json:"to_buy_quantity"`
	Unit           string          `json:"unit,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// ShoppingListResponse salida de una lista de compras.
type ShoppingListResponse struct {
	ID          string                     `json:"id"`
	HouseholdID string                     `json:"household_id"`
	MealPlanID  string                     `json:"meal_plan_id,omitempty"`
	UserID      string                     `json:"user_id"`
	Name        string                     `json:"name"`
	Notes       string                     `json:"notes,omitempty"`
	Status      string                     `json:"status"`
	Items       []ShoppingListItemResponse `json:"items"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

// ShoppingListListResponse lista paginada de listas de compras (sin líneas).
type ShoppingListListResponse struct {
	Items []ShoppingListResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
