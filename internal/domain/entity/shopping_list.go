package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una lista de compras.
const (
	ShoppingListStatusDraft = "draft"
)

// ShoppingList lista de compras de un hogar, opcionalmente ligada al plan que la originó.
type ShoppingList struct {
	ID          string
	HouseholdID string
	MealPlanID  string // vacío si el plan fue eliminado
	UserID      string
	Name        string
	Notes       string
	Status      string
	Items       []ShoppingListItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShoppingListItem una línea de la lista: lo requerido, lo disponible y lo que falta comprar.
type ShoppingListItem struct {
	ID             string
	ShoppingListID string
	IngredientID   string
	IngredientName string // solo lectura (join)
	NeededQuantity decimal.Decimal
	PantryQuantity decimal.Decimal
	ToBuyQuantity  decimal.Decimal
	Unit           string
	Notes          string
	CreatedAt      time.Time
}
