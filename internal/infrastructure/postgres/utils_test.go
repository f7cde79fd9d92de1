package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/despensa?sslmode=disable",
		migrateURL("postgres://u:p@db:5432/despensa?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/despensa", migrateURL("postgresql://u@db/despensa"))
	assert.Equal(t, "pgx5://ya/convertido", migrateURL("pgx5://ya/convertido"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% arroz\_integral \\`, escapeLike(`50% arroz_integral \`))
	assert.Equal(t, "sopa", escapeLike("sopa"))
}

func TestValidIDs_DescartaNoUUIDYDuplicados(t *testing.T) {
	id := "6f1c2a9e-3b1d-4c56-9a8e-0d2f4b7c1e23"
	assert.Equal(t, []string{id}, validIDs([]string{id, "no-es-uuid", "", id}))
	assert.Empty(t, validIDs(nil))
}

func TestPgErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	badUUID := &pgconn.PgError{Code: "22P02"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isNotFound(badUUID))
	assert.True(t, isNotFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, isNotFound(errors.New("conexión rechazada")))
}

func TestPantrySelect_OrdenYJoin(t *testing.T) {
	sqlStr, _, err := pantrySelect().ToSql()
	assert.NoError(t, err)
	assert.Contains(t, sqlStr, "JOIN ingredients i ON i.id = p.ingredient_id")
	assert.Contains(t, sqlStr, "ORDER BY p.expires_at ASC NULLS LAST, p.id")
}
