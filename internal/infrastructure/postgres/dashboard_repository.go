package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el resumen semanal del hogar.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountMeals cuenta las comidas planificadas del rango y las que ya pasaron (fecha <= upTo).
func (r *DashboardRepo) CountMeals(
	ctx context.Context,
	householdID string,
	from, to, upTo time.Time,
) (planned, completed int, err error) {
	const query = `
	SELECT
	    COUNT(*)                                   AS planned,
	    COUNT(*) FILTER (WHERE mpi.date <= $4)     AS completed
	FROM meal_plan_items mpi
	JOIN meal_plans mp ON mp.id = mpi.meal_plan_id
	WHERE mp.household_id = $1
	  AND mpi.date BETWEEN $2 AND $3`

	err = r.q.QueryRow(ctx, query, householdID, week.DateOnly(from), week.DateOnly(to), week.DateOnly(upTo)).
		Scan(&planned, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("dashboard.CountMeals: %w", err)
	}
	return planned, completed, nil
}

// TopRecipes devuelve las `limit` recetas más usadas del rango.
// Los items cuya receta fue eliminada no cuentan.
func (r *DashboardRepo) TopRecipes(
	ctx context.Context,
	householdID string,
	from, to time.Time,
	limit int,
) ([]repository.RecipeUsage, error) {
	const query = `
	SELECT
	    r.id        AS recipe_id,
	    r.name      AS name,
	    COUNT(*)    AS usage_count
	FROM meal_plan_items mpi
	JOIN meal_plans mp ON mp.id = mpi.meal_plan_id
	JOIN recipes    r  ON r.id  = mpi.recipe_id
	WHERE mp.household_id = $1
	  AND mpi.date BETWEEN $2 AND $3
	GROUP BY r.id, r.name
	ORDER BY usage_count DESC, r.id
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, householdID, week.DateOnly(from), week.DateOnly(to), limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopRecipes: %w", err)
	}
	defer rows.Close()

	results := []repository.RecipeUsage{}
	for rows.Next() {
		var row repository.RecipeUsage
		if err := rows.Scan(&row.RecipeID, &row.Name, &row.UsageCount); err != nil {
			return nil, fmt.Errorf("dashboard.TopRecipes scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopIngredients devuelve los `limit` ingredientes con mayor cantidad cruda sumada en el rango.
// La cantidad es la de la receta, sin escalar por porciones; las líneas sin cantidad suman cero.
func (r *DashboardRepo) TopIngredients(
	ctx context.Context,
	householdID string,
	from, to time.Time,
	limit int,
) ([]repository.IngredientUsage, error) {
	const query = `
	SELECT
	    i.id                               AS ingredient_id,
	    i.name                             AS name,
	    COALESCE(SUM(ir.quantity), 0)      AS total_quantity
	FROM meal_plan_items mpi
	JOIN meal_plans        mp ON mp.id        = mpi.meal_plan_id
	JOIN recipes           r  ON r.id         = mpi.recipe_id
	JOIN ingredient_recipe ir ON ir.recipe_id = r.id
	JOIN ingredients       i  ON i.id         = ir.ingredient_id
	WHERE mp.household_id = $1
	  AND mpi.date BETWEEN $2 AND $3
	GROUP BY i.id, i.name
	ORDER BY total_quantity DESC, i.id
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, householdID, week.DateOnly(from), week.DateOnly(to), limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopIngredients: %w", err)
	}
	defer rows.Close()

	results := []repository.IngredientUsage{}
	for rows.Next() {
		var row repository.IngredientUsage
		if err := rows.Scan(&row.IngredientID, &row.Name, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("dashboard.TopIngredients scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
