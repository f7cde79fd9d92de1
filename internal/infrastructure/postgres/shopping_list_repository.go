package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.ShoppingListRepository = (*ShoppingListRepo)(nil)

// ShoppingListRepo implementación del puerto ShoppingListRepository sobre PostgreSQL.
type ShoppingListRepo struct {
	q Querier
}

// NewShoppingListRepository construye el adaptador de persistencia para listas de compras.
func NewShoppingListRepository(q Querier) *ShoppingListRepo {
	return &ShoppingListRepo{q: q}
}

const shoppingListColumns = `id, household_id, COALESCE(meal_plan_id::text, ''), user_id, name, notes, status, created_at, updated_at`

// Create inserta cabecera y líneas en una sola transacción: o se guarda todo o nada.
func (r *ShoppingListRepo) Create(ctx context.Context, l *entity.ShoppingList) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO shopping_lists (id, household_id, meal_plan_id, user_id, name, notes, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.ID, l.HouseholdID, nullString(l.MealPlanID), l.UserID, l.Name, l.Notes, l.Status,
			l.CreatedAt, l.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert shopping list: %w", err)
		}
		if len(l.Items) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for pos, it := range l.Items {
			batch.Queue(`
				INSERT INTO shopping_list_items (id, shopping_list_id, ingredient_id, needed_quantity,
					pantry_quantity, to_buy_quantity, unit, notes, position, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				it.ID, l.ID, it.IngredientID, it.NeededQuantity, it.PantryQuantity, it.ToBuyQuantity,
				nullString(it.Unit), it.Notes, pos, it.CreatedAt,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert shopping list items: %w", err)
		}
		return nil
	})
}

// GetByID obtiene la lista con sus líneas y el nombre de cada ingrediente.
func (r *ShoppingListRepo) GetByID(ctx context.Context, id string) (*entity.ShoppingList, error) {
	l, err := scanShoppingList(r.q.QueryRow(ctx, `SELECT `+shoppingListColumns+` FROM shopping_lists WHERE id = $1`, id))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopping list: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT it.id, it.shopping_list_id, it.ingredient_id, i.name, it.needed_quantity,
		       it.pantry_quantity, it.to_buy_quantity, COALESCE(it.unit, ''), it.notes, it.created_at
		FROM shopping_list_items it
		JOIN ingredients i ON i.id = it.ingredient_id
		WHERE it.shopping_list_id = $1
		ORDER BY it.position`, id)
	if err != nil {
		return nil, fmt.Errorf("get shopping list items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.ShoppingListItem
		if err := rows.Scan(&it.ID, &it.ShoppingListID, &it.IngredientID, &it.IngredientName,
			&it.NeededQuantity, &it.PantryQuantity, &it.ToBuyQuantity, &it.Unit, &it.Notes, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shopping list item: %w", err)
		}
		l.Items = append(l.Items, it)
	}
	return l, rows.Err()
}

// ListByHousehold lista las listas del hogar sin líneas, más recientes primero.
func (r *ShoppingListRepo) ListByHousehold(ctx context.Context, householdID string, limit, offset int) ([]*entity.ShoppingList, error) {
	b := psql.Select(shoppingListColumns).From("shopping_lists").
		Where("household_id = ?", householdID).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build shopping list query: %w", err)
	}
	rows, err := r.q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	defer rows.Close()
	list := []*entity.ShoppingList{}
	for rows.Next() {
		l, err := scanShoppingList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping list: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanShoppingList(row interface{ Scan(...any) error }) (*entity.ShoppingList, error) {
	var l entity.ShoppingList
	err := row.Scan(&l.ID, &l.HouseholdID, &l.MealPlanID, &l.UserID, &l.Name, &l.Notes, &l.Status,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
