package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePantryItemRequest entrada para registrar una existencia. ExpiresAt YYYY-MM-DD opcional.
type CreatePantryItemRequest struct {
	HouseholdID  string          `json:"household_id"`
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	ExpiresAt    *string         `json:"expires_at"`
	Notes        string          `json:"notes"`
}

// UpdatePantryItemRequest actualización parcial. ClearExpiry quita la fecha de vencimiento.
type UpdatePantryItemRequest struct {
	Quantity    *decimal.Decimal `json:"quantity"`
	Unit        *string          `json:"unit"`
	ExpiresAt   *string          `json:"expires_at"`
	ClearExpiry bool             `json:"clear_expiry"`
	Notes       *string          `json:"notes"`
}

// PantrySearchRequest filtros del listado de despensa (query string).
type PantrySearchRequest struct {
	HouseholdID   string
	IngredientID  string
	ExpiresBefore string
	ExpiresAfter  string
	HasQuantity   string // "true" | "false" | ""
}

// PantryItemResponse salida de una existencia.
type PantryItemResponse struct {
	ID             string          `json:"id"`
	HouseholdID    string          `json:"household_id"`
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit,omitempty"`
	ExpiresAt      *string         `json:"expires_at"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
