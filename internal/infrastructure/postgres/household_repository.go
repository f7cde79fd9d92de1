package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.HouseholdRepository = (*HouseholdRepo)(nil)

// HouseholdRepo implementación del puerto HouseholdRepository sobre PostgreSQL.
type HouseholdRepo struct {
	q Querier
}

// NewHouseholdRepository construye el adaptador de persistencia para hogares.
func NewHouseholdRepository(q Querier) *HouseholdRepo {
	return &HouseholdRepo{q: q}
}

// Create inserta el hogar y al dueño como miembro owner en la misma transacción.
func (r *HouseholdRepo) Create(ctx context.Context, h *entity.Household) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO households (id, name, owner_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)`,
			h.ID, h.Name, h.OwnerID, h.CreatedAt, h.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert household: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO household_users (household_id, user_id, role, created_at)
			VALUES ($1, $2, $3, $4)`,
			h.ID, h.OwnerID, entity.HouseholdRoleOwner, h.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert household owner: %w", err)
		}
		return nil
	})
}

// GetByID obtiene un hogar por ID.
func (r *HouseholdRepo) GetByID(ctx context.Context, id string) (*entity.Household, error) {
	var h entity.Household
	err := r.q.QueryRow(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM households WHERE id = $1`, id,
	).Scan(&h.ID, &h.Name, &h.OwnerID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get household: %w", err)
	}
	return &h, nil
}

// ListByUser lista los hogares del usuario con su rol en cada uno, por nombre.
func (r *HouseholdRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Household, error) {
	rows, err := r.q.Query(ctx, `
		SELECT h.id, h.name, h.owner_id, hu.role, h.created_at, h.updated_at
		FROM households h
		JOIN household_users hu ON hu.household_id = h.id
		WHERE hu.user_id = $1
		ORDER BY h.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	defer rows.Close()
	var list []*entity.Household
	for rows.Next() {
		var h entity.Household
		if err := rows.Scan(&h.ID, &h.Name, &h.OwnerID, &h.Role, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan household: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// ListAll lista todos los hogares (tareas de mantenimiento).
func (r *HouseholdRepo) ListAll(ctx context.Context) ([]*entity.Household, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM households ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list all households: %w", err)
	}
	defer rows.Close()
	var list []*entity.Household
	for rows.Next() {
		var h entity.Household
		if err := rows.Scan(&h.ID, &h.Name, &h.OwnerID, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan household: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// UpsertMember agrega el miembro o actualiza su rol.
func (r *HouseholdRepo) UpsertMember(ctx context.Context, m *entity.HouseholdMember) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO household_users (household_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (household_id, user_id) DO UPDATE SET role = EXCLUDED.role`,
		m.HouseholdID, m.UserID, m.Role, m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("upsert household member: %w", err)
	}
	return nil
}

// ListMembers lista los miembros del hogar con nombre y email.
func (r *HouseholdRepo) ListMembers(ctx context.Context, householdID string) ([]*entity.HouseholdMember, error) {
	rows, err := r.q.Query(ctx, `
		SELECT hu.household_id, hu.user_id, u.name, u.email, hu.role, hu.created_at
		FROM household_users hu
		JOIN users u ON u.id = hu.user_id
		WHERE hu.household_id = $1
		ORDER BY hu.user_id`, householdID)
	if err != nil {
		return nil, fmt.Errorf("list household members: %w", err)
	}
	defer rows.Close()
	var list []*entity.HouseholdMember
	for rows.Next() {
		var m entity.HouseholdMember
		if err := rows.Scan(&m.HouseholdID, &m.UserID, &m.Name, &m.Email, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan household member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// MemberRole devuelve el rol del usuario en el hogar, o "" si no es miembro.
func (r *HouseholdRepo) MemberRole(ctx context.Context, householdID, userID string) (string, error) {
	var role string
	err := r.q.QueryRow(ctx, `
		SELECT role FROM household_users WHERE household_id = $1 AND user_id = $2`,
		householdID, userID,
	).Scan(&role)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("get member role: %w", err)
	}
	return role, nil
}
