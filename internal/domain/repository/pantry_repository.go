package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// PantryFilter filtros opcionales del listado de despensa. Los nil no filtran.
type PantryFilter struct {
	HouseholdID   string
	IngredientID  string
	ExpiresBefore *time.Time // expires_at <= fecha
	ExpiresAfter  *time.Time // expires_at >= fecha
	HasQuantity   *bool      // true: quantity > 0; false: quantity <= 0
}

// PantryRepository define el puerto de persistencia para la despensa.
type PantryRepository interface {
	Create(ctx context.Context, item *entity.PantryItem) error
	GetByID(ctx context.Context, id string) (*entity.PantryItem, error)
	Search(ctx context.Context, filter PantryFilter) ([]*entity.PantryItem, error)
	Update(ctx context.Context, item *entity.PantryItem) error
	Delete(ctx context.Context, id string) error

	// ListEligible devuelve las existencias sin vencimiento o que vencen en asOf o después.
	ListEligible(ctx context.Context, householdID string, asOf time.Time) ([]*entity.PantryItem, error)
}
