package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.MealTypeRepository = (*MealTypeRepo)(nil)

// MealTypeRepo implementación del puerto MealTypeRepository sobre PostgreSQL.
type MealTypeRepo struct {
	q Querier
}

// NewMealTypeRepository construye el adaptador de persistencia para tipos de comida.
func NewMealTypeRepository(q Querier) *MealTypeRepo {
	return &MealTypeRepo{q: q}
}

const mealTypeColumns = `id, household_id, name, sort_order, created_at, updated_at`

func scanMealType(row interface{ Scan(...any) error }) (*entity.MealType, error) {
	var mt entity.MealType
	if err := row.Scan(&mt.ID, &mt.HouseholdID, &mt.Name, &mt.Order, &mt.CreatedAt, &mt.UpdatedAt); err != nil {
		return nil, err
	}
	return &mt, nil
}

// Create persiste un tipo de comida; nombre repetido en el hogar devuelve domain.ErrDuplicate.
func (r *MealTypeRepo) Create(ctx context.Context, mt *entity.MealType) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO meal_types (`+mealTypeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		mt.ID, mt.HouseholdID, mt.Name, mt.Order, mt.CreatedAt, mt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert meal type: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta el tipo solo si el hogar no tiene uno con ese nombre.
func (r *MealTypeRepo) CreateIfAbsent(ctx context.Context, mt *entity.MealType) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		INSERT INTO meal_types (`+mealTypeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (household_id, name) DO NOTHING`,
		mt.ID, mt.HouseholdID, mt.Name, mt.Order, mt.CreatedAt, mt.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert meal type: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID obtiene un tipo de comida por ID.
func (r *MealTypeRepo) GetByID(ctx context.Context, id string) (*entity.MealType, error) {
	mt, err := scanMealType(r.q.QueryRow(ctx, `SELECT `+mealTypeColumns+` FROM meal_types WHERE id = $1`, id))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meal type: %w", err)
	}
	return mt, nil
}

// ListByHousehold lista los tipos del hogar por orden y nombre.
func (r *MealTypeRepo) ListByHousehold(ctx context.Context, householdID string) ([]*entity.MealType, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+mealTypeColumns+` FROM meal_types
		WHERE household_id = $1 ORDER BY sort_order, name`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list meal types: %w", err)
	}
	defer rows.Close()
	var list []*entity.MealType
	for rows.Next() {
		mt, err := scanMealType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal type: %w", err)
		}
		list = append(list, mt)
	}
	return list, rows.Err()
}

// MaxOrder devuelve el mayor sort_order del hogar (0 si no tiene tipos).
func (r *MealTypeRepo) MaxOrder(ctx context.Context, householdID string) (int, error) {
	var highest int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(MAX(sort_order), 0) FROM meal_types WHERE household_id = $1`, householdID,
	).Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("max meal type order: %w", err)
	}
	return highest, nil
}

// Update actualiza nombre y orden.
func (r *MealTypeRepo) Update(ctx context.Context, mt *entity.MealType) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE meal_types SET name = $2, sort_order = $3, updated_at = $4 WHERE id = $1`,
		mt.ID, mt.Name, mt.Order, mt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update meal type: %w", err)
	}
	return affectedOrNotFound(tag)
}

// Delete elimina el tipo; los items de planes conservan el nombre y pierden la referencia.
func (r *MealTypeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM meal_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meal type: %w", err)
	}
	return affectedOrNotFound(tag)
}
