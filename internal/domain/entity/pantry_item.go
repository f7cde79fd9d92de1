package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PantryItem existencia de un ingrediente en la despensa del hogar.
// ExpiresAt nil = no vence.
type PantryItem struct {
	ID             string
	HouseholdID    string
	IngredientID   string
	IngredientName string // solo lectura (join)
	DefaultUnit    string // solo lectura (join)
	Quantity       decimal.Decimal
	Unit           string
	ExpiresAt      *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
