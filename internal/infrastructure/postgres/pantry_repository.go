package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

var _ repository.PantryRepository = (*PantryRepo)(nil)

// PantryRepo implementación del puerto PantryRepository sobre PostgreSQL.
type PantryRepo struct {
	q Querier
}

// NewPantryRepository construye el adaptador de persistencia para la despensa.
func NewPantryRepository(q Querier) *PantryRepo {
	return &PantryRepo{q: q}
}

// pantrySelect columnas de la despensa con el nombre y la unidad del ingrediente.
// Orden: sin vencimiento al final, luego por vencimiento y por ID.
func pantrySelect() sq.SelectBuilder {
	return psql.Select(
		"p.id", "p.household_id", "p.ingredient_id", "i.name", "COALESCE(i.default_unit, '')",
		"p.quantity", "COALESCE(p.unit, '')", "p.expires_at", "p.notes", "p.created_at", "p.updated_at",
	).
		From("pantry_items p").
		Join("ingredients i ON i.id = p.ingredient_id").
		OrderBy("p.expires_at ASC NULLS LAST", "p.id")
}

func scanPantryItem(row interface{ Scan(...any) error }) (*entity.PantryItem, error) {
	var p entity.PantryItem
	err := row.Scan(
		&p.ID, &p.HouseholdID, &p.IngredientID, &p.IngredientName, &p.DefaultUnit,
		&p.Quantity, &p.Unit, &p.ExpiresAt, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PantryRepo) list(ctx context.Context, b sq.SelectBuilder) ([]*entity.PantryItem, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pantry query: %w", err)
	}
	rows, err := r.q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list pantry: %w", err)
	}
	defer rows.Close()
	list := []*entity.PantryItem{}
	for rows.Next() {
		p, err := scanPantryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste una existencia.
func (r *PantryRepo) Create(ctx context.Context, p *entity.PantryItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO pantry_items (id, household_id, ingredient_id, quantity, unit, expires_at, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.HouseholdID, p.IngredientID, p.Quantity, nullString(p.Unit), dateOrNil(p.ExpiresAt),
		p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: ingrediente u hogar inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert pantry item: %w", err)
	}
	return nil
}

// GetByID obtiene una existencia por ID.
func (r *PantryRepo) GetByID(ctx context.Context, id string) (*entity.PantryItem, error) {
	sqlStr, args, err := pantrySelect().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pantry query: %w", err)
	}
	p, err := scanPantryItem(r.q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pantry item: %w", err)
	}
	return p, nil
}

// Search lista la despensa del hogar aplicando solo los filtros presentes.
func (r *PantryRepo) Search(ctx context.Context, f repository.PantryFilter) ([]*entity.PantryItem, error) {
	b := pantrySelect().Where(sq.Eq{"p.household_id": f.HouseholdID})
	if f.IngredientID != "" {
		b = b.Where(sq.Eq{"p.ingredient_id": f.IngredientID})
	}
	if f.ExpiresBefore != nil {
		b = b.Where(sq.LtOrEq{"p.expires_at": week.DateOnly(*f.ExpiresBefore)})
	}
	if f.ExpiresAfter != nil {
		b = b.Where(sq.GtOrEq{"p.expires_at": week.DateOnly(*f.ExpiresAfter)})
	}
	if f.HasQuantity != nil {
		if *f.HasQuantity {
			b = b.Where(sq.Gt{"p.quantity": 0})
		} else {
			b = b.Where(sq.LtOrEq{"p.quantity": 0})
		}
	}
	return r.list(ctx, b)
}

// ListEligible devuelve las existencias sin vencimiento o que vencen en asOf o después.
func (r *PantryRepo) ListEligible(ctx context.Context, householdID string, asOf time.Time) ([]*entity.PantryItem, error) {
	b := pantrySelect().Where(sq.And{
		sq.Eq{"p.household_id": householdID},
		sq.Or{
			sq.Eq{"p.expires_at": nil},
			sq.GtOrEq{"p.expires_at": week.DateOnly(asOf)},
		},
	})
	return r.list(ctx, b)
}

// Update actualiza cantidad, unidad, vencimiento y notas.
func (r *PantryRepo) Update(ctx context.Context, p *entity.PantryItem) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE pantry_items SET quantity = $2, unit = $3, expires_at = $4, notes = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.Quantity, nullString(p.Unit), dateOrNil(p.ExpiresAt), p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pantry item: %w", err)
	}
	return affectedOrNotFound(tag)
}

// Delete elimina una existencia.
func (r *PantryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pantry_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}
	return affectedOrNotFound(tag)
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := week.DateOnly(*t)
	return &d
}
