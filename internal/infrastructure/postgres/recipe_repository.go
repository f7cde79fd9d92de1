package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL.
// Las líneas viven en ingredient_recipe y conservan el orden de captura (position).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de persistencia para recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

const recipeColumns = `id, household_id, user_id, name, description, instructions,
	prep_time_minutes, cook_time_minutes, servings, is_public, created_at, updated_at`

func scanRecipe(row interface{ Scan(...any) error }) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := row.Scan(
		&rec.ID, &rec.HouseholdID, &rec.UserID, &rec.Name, &rec.Description, &rec.Instructions,
		&rec.PrepTimeMinutes, &rec.CookTimeMinutes, &rec.Servings, &rec.IsPublic, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create persiste la receta y sus líneas en una transacción.
func (r *RecipeRepo) Create(ctx context.Context, rec *entity.Recipe) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipes (`+recipeColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			rec.ID, rec.HouseholdID, rec.UserID, rec.Name, rec.Description, rec.Instructions,
			rec.PrepTimeMinutes, rec.CookTimeMinutes, rec.Servings, rec.IsPublic, rec.CreatedAt, rec.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		return insertRecipeLines(ctx, tx, rec)
	})
}

func insertRecipeLines(ctx context.Context, tx pgx.Tx, rec *entity.Recipe) error {
	if len(rec.Ingredients) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for pos, l := range rec.Ingredients {
		batch.Queue(`
			INSERT INTO ingredient_recipe (recipe_id, ingredient_id, quantity, unit, notes, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.ID, l.IngredientID, l.Quantity, nullString(l.Unit), nullString(l.Notes), pos,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: ingrediente inexistente", domain.ErrInvalidInput)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ingrediente repetido", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert recipe ingredients: %w", err)
	}
	return nil
}

// GetByID obtiene la receta con sus líneas.
func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	rec, err := scanRecipe(r.q.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	lines, err := r.loadLines(ctx, []string{rec.ID})
	if err != nil {
		return nil, err
	}
	rec.Ingredients = lines[rec.ID]
	return rec, nil
}

// GetManyWithIngredients obtiene las recetas existentes de ids con sus líneas.
// Dos consultas en total, sin importar cuántas recetas tenga el plan.
func (r *RecipeRepo) GetManyWithIngredients(ctx context.Context, ids []string) (map[string]*entity.Recipe, error) {
	out := make(map[string]*entity.Recipe)
	ids = validIDs(ids)
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get recipes: %w", err)
	}
	defer rows.Close()
	found := make([]string, 0, len(ids))
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out[rec.ID] = rec
		found = append(found, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get recipes: %w", err)
	}
	rows.Close()

	lines, err := r.loadLines(ctx, found)
	if err != nil {
		return nil, err
	}
	for id, rec := range out {
		rec.Ingredients = lines[id]
	}
	return out, nil
}

func (r *RecipeRepo) loadLines(ctx context.Context, recipeIDs []string) (map[string][]entity.RecipeIngredient, error) {
	out := make(map[string][]entity.RecipeIngredient, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT ir.recipe_id, ir.ingredient_id, i.name, COALESCE(i.default_unit, ''),
		       ir.quantity, COALESCE(ir.unit, ''), COALESCE(ir.notes, '')
		FROM ingredient_recipe ir
		JOIN ingredients i ON i.id = ir.ingredient_id
		WHERE ir.recipe_id = ANY($1::uuid[])
		ORDER BY ir.recipe_id, ir.position`, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("get recipe ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.RecipeIngredient
		if err := rows.Scan(&l.RecipeID, &l.IngredientID, &l.IngredientName, &l.DefaultUnit,
			&l.Quantity, &l.Unit, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		out[l.RecipeID] = append(out[l.RecipeID], l)
	}
	return out, rows.Err()
}

// Search lista las recetas del hogar filtrando por nombre o descripción, con el total sin paginar.
func (r *RecipeRepo) Search(ctx context.Context, f repository.RecipeFilter) ([]*entity.Recipe, int, error) {
	where := sq.And{sq.Eq{"household_id": f.HouseholdID}}
	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		where = append(where, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("recipes").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build recipe count: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	b := psql.Select(recipeColumns).From("recipes").Where(where).OrderBy("name", "id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build recipe search: %w", err)
	}
	rows, err := r.q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search recipes: %w", err)
	}
	defer rows.Close()
	list := []*entity.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, rec)
	}
	return list, total, rows.Err()
}

// Update actualiza la cabecera y, si replaceIngredients, reemplaza todas las líneas.
func (r *RecipeRepo) Update(ctx context.Context, rec *entity.Recipe, replaceIngredients bool) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE recipes SET name = $2, description = $3, instructions = $4, prep_time_minutes = $5,
				cook_time_minutes = $6, servings = $7, is_public = $8, updated_at = $9
			WHERE id = $1`,
			rec.ID, rec.Name, rec.Description, rec.Instructions, rec.PrepTimeMinutes,
			rec.CookTimeMinutes, rec.Servings, rec.IsPublic, rec.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}
		if err := affectedOrNotFound(tag); err != nil {
			return err
		}
		if !replaceIngredients {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM ingredient_recipe WHERE recipe_id = $1`, rec.ID); err != nil {
			return fmt.Errorf("delete recipe ingredients: %w", err)
		}
		return insertRecipeLines(ctx, tx, rec)
	})
}

// Delete elimina la receta; sus líneas caen por cascada.
// Los items de planes que la referencian quedan huérfanos y se omiten al generar listas.
func (r *RecipeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete recipe: %w", err)
	}
	return affectedOrNotFound(tag)
}
