package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// ShoppingListRepository define el puerto de persistencia para listas de compras.
type ShoppingListRepository interface {
	// Create persiste la cabecera y todas sus líneas de forma atómica.
	// No busca ni reemplaza listas existentes del mismo plan.
	Create(ctx context.Context, list *entity.ShoppingList) error
	// GetByID devuelve la lista con sus líneas (nil, nil si no existe).
	GetByID(ctx context.Context, id string) (*entity.ShoppingList, error)
	// ListByHousehold devuelve las listas del hogar (sin líneas), más recientes primero.
	ListByHousehold(ctx context.Context, householdID string, limit, offset int) ([]*entity.ShoppingList, error)
}
