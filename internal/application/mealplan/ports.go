package mealplan

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio
// de planes atado a esa tx. Garantiza que reemplazar el plan de una semana sea atómico.
type TxRunner interface {
	RunMealPlans(ctx context.Context, fn func(plans repository.MealPlanRepository) error) error
}
