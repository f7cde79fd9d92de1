package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador del catálogo de ingredientes.
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, name, name_key, COALESCE(default_unit, ''), created_at, updated_at`

func scanIngredient(row interface{ Scan(...any) error }) (*entity.Ingredient, error) {
	var i entity.Ingredient
	if err := row.Scan(&i.ID, &i.Name, &i.NameKey, &i.DefaultUnit, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un ingrediente; name_key repetido devuelve domain.ErrDuplicate.
func (r *IngredientRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO ingredients (id, name, name_key, default_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		i.ID, i.Name, i.NameKey, nullString(i.DefaultUnit), i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	i, err := scanIngredient(r.q.QueryRow(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`, id))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return i, nil
}

// GetByNameKey obtiene un ingrediente por su nombre normalizado.
func (r *IngredientRepo) GetByNameKey(ctx context.Context, nameKey string) (*entity.Ingredient, error) {
	i, err := scanIngredient(r.q.QueryRow(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE name_key = $1`, nameKey))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by name: %w", err)
	}
	return i, nil
}

// GetMany obtiene los ingredientes existentes de ids, indexados por ID.
func (r *IngredientRepo) GetMany(ctx context.Context, ids []string) (map[string]*entity.Ingredient, error) {
	out := make(map[string]*entity.Ingredient)
	ids = validIDs(ids)
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		i, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out[i.ID] = i
	}
	return out, rows.Err()
}

// Search lista ingredientes cuyo name_key contiene query, ordenados por nombre.
func (r *IngredientRepo) Search(ctx context.Context, query string) ([]*entity.Ingredient, error) {
	b := psql.Select(ingredientColumns).From("ingredients").OrderBy("name", "id")
	if query != "" {
		b = b.Where(sq.Expr("strpos(name_key, ?) > 0", query))
	}
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ingredient search: %w", err)
	}
	rows, err := r.q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		i, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// Update actualiza nombre y unidad por defecto.
func (r *IngredientRepo) Update(ctx context.Context, i *entity.Ingredient) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE ingredients SET name = $2, name_key = $3, default_unit = $4, updated_at = $5
		WHERE id = $1`,
		i.ID, i.Name, i.NameKey, nullString(i.DefaultUnit), i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	return affectedOrNotFound(tag)
}

// Delete elimina un ingrediente; si alguna receta, despensa o lista lo usa devuelve domain.ErrInUse.
func (r *IngredientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return affectedOrNotFound(tag)
}
