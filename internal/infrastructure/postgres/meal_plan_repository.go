package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

var _ repository.MealPlanRepository = (*MealPlanRepo)(nil)

// MealPlanRepo implementación del puerto MealPlanRepository sobre PostgreSQL (usable con pool o tx).
type MealPlanRepo struct {
	q Querier
}

// NewMealPlanRepository construye el adaptador de persistencia para planes. Pasar pool o tx (Querier).
func NewMealPlanRepository(q Querier) *MealPlanRepo {
	return &MealPlanRepo{q: q}
}

const mealPlanColumns = `id, household_id, user_id, week_start_date, week_label, name, notes, created_at, updated_at`

// Create persiste el plan y sus items; la semana repetida devuelve domain.ErrDuplicate.
func (r *MealPlanRepo) Create(ctx context.Context, p *entity.MealPlan) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO meal_plans (`+mealPlanColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			p.ID, p.HouseholdID, p.UserID, week.DateOnly(p.WeekStartDate), p.WeekLabel,
			p.Name, p.Notes, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert meal plan: %w", err)
		}
		return insertPlanItems(ctx, tx, p)
	})
}

func insertPlanItems(ctx context.Context, tx pgx.Tx, p *entity.MealPlan) error {
	if len(p.Items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for pos, it := range p.Items {
		batch.Queue(`
			INSERT INTO meal_plan_items (id, meal_plan_id, date, meal_type, meal_type_id, recipe_id, servings, notes, position, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			it.ID, p.ID, week.DateOnly(it.Date), it.MealType, nullString(it.MealTypeID),
			it.RecipeID, it.Servings, it.Notes, pos, it.CreatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert meal plan items: %w", err)
	}
	return nil
}

// GetByID obtiene el plan con sus items y el nombre de cada receta.
func (r *MealPlanRepo) GetByID(ctx context.Context, id string) (*entity.MealPlan, error) {
	return r.findOne(ctx, `SELECT `+mealPlanColumns+` FROM meal_plans WHERE id = $1`, id)
}

// GetByHouseholdAndWeek obtiene el plan del hogar cuya semana empieza en weekStart.
func (r *MealPlanRepo) GetByHouseholdAndWeek(ctx context.Context, householdID string, weekStart time.Time) (*entity.MealPlan, error) {
	return r.findOne(ctx, `
		SELECT `+mealPlanColumns+` FROM meal_plans
		WHERE household_id = $1 AND week_start_date = $2`,
		householdID, week.DateOnly(weekStart))
}

func (r *MealPlanRepo) findOne(ctx context.Context, query string, args ...any) (*entity.MealPlan, error) {
	var p entity.MealPlan
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.HouseholdID, &p.UserID, &p.WeekStartDate, &p.WeekLabel,
		&p.Name, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meal plan: %w", err)
	}
	items, err := r.loadItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

func (r *MealPlanRepo) loadItems(ctx context.Context, planID string) ([]entity.MealPlanItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT it.id, it.meal_plan_id, it.date, it.meal_type, COALESCE(it.meal_type_id::text, ''),
		       it.recipe_id, COALESCE(rc.name, ''), it.servings, it.notes, it.created_at
		FROM meal_plan_items it
		LEFT JOIN recipes rc ON rc.id = it.recipe_id
		WHERE it.meal_plan_id = $1
		ORDER BY it.date, it.position`, planID)
	if err != nil {
		return nil, fmt.Errorf("get meal plan items: %w", err)
	}
	defer rows.Close()
	var items []entity.MealPlanItem
	for rows.Next() {
		var it entity.MealPlanItem
		if err := rows.Scan(&it.ID, &it.MealPlanID, &it.Date, &it.MealType, &it.MealTypeID,
			&it.RecipeID, &it.RecipeName, &it.Servings, &it.Notes, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meal plan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateHeader actualiza nombre y notas del plan.
func (r *MealPlanRepo) UpdateHeader(ctx context.Context, p *entity.MealPlan) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE meal_plans SET name = $2, notes = $3, updated_at = $4 WHERE id = $1`,
		p.ID, p.Name, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update meal plan: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ReplaceItems borra todos los items del plan e inserta p.Items.
func (r *MealPlanRepo) ReplaceItems(ctx context.Context, p *entity.MealPlan) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM meal_plan_items WHERE meal_plan_id = $1`, p.ID); err != nil {
			return fmt.Errorf("delete meal plan items: %w", err)
		}
		return insertPlanItems(ctx, tx, p)
	})
}

// Delete elimina el plan; los items caen por cascada y las listas generadas quedan sin plan.
func (r *MealPlanRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM meal_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meal plan: %w", err)
	}
	return affectedOrNotFound(tag)
}
