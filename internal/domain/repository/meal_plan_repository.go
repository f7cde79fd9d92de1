package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// MealPlanRepository define el puerto de persistencia para planes semanales.
type MealPlanRepository interface {
	// Create persiste el plan y sus items.
	Create(ctx context.Context, plan *entity.MealPlan) error
	// GetByID devuelve el plan con sus items (nil, nil si no existe).
	GetByID(ctx context.Context, id string) (*entity.MealPlan, error)
	// GetByHouseholdAndWeek devuelve el plan de la semana que empieza en weekStart.
	GetByHouseholdAndWeek(ctx context.Context, householdID string, weekStart time.Time) (*entity.MealPlan, error)
	// UpdateHeader actualiza nombre y notas.
	UpdateHeader(ctx context.Context, plan *entity.MealPlan) error
	// ReplaceItems borra todos los items del plan e inserta plan.Items.
	ReplaceItems(ctx context.Context, plan *entity.MealPlan) error
	// Delete elimina el plan; sus items caen por cascada.
	Delete(ctx context.Context, id string) error
}
