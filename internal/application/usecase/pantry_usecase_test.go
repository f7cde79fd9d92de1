package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

func strp(s string) *string { return &s }

func TestPantry_CreateYSearchOrdenado(t *testing.T) {
	e, hid, rice, salt := recipeEnv(t)

	mk := func(ing, qty string, expires *string) string {
		out, err := e.pantry.Create(e.ctx, "u1", dto.CreatePantryItemRequest{
			HouseholdID: hid, IngredientID: ing, Quantity: decimal.RequireFromString(qty), ExpiresAt: expires,
		})
		require.NoError(t, err)
		return out.ID
	}
	noExpiry := mk(rice, "1", nil)
	late := mk(rice, "0", strp("2025-12-20"))
	early := mk(salt, "2", strp("2025-12-05"))

	all, err := e.pantry.Search(e.ctx, dto.PantrySearchRequest{HouseholdID: hid})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{early, late, noExpiry}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "kg", all[2].Unit, "sin unidad se usa la del ingrediente")
	assert.Equal(t, "2025-12-05", *all[0].ExpiresAt)

	withQty, err := e.pantry.Search(e.ctx, dto.PantrySearchRequest{HouseholdID: hid, HasQuantity: "true"})
	require.NoError(t, err)
	assert.Len(t, withQty, 2)

	before, err := e.pantry.Search(e.ctx, dto.PantrySearchRequest{HouseholdID: hid, ExpiresBefore: "2025-12-10"})
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.Equal(t, early, before[0].ID)

	riceOnly, err := e.pantry.Search(e.ctx, dto.PantrySearchRequest{HouseholdID: hid, IngredientID: rice, ExpiresAfter: "2025-12-01"})
	require.NoError(t, err)
	require.Len(t, riceOnly, 1)
	assert.Equal(t, late, riceOnly[0].ID)

	_, err = e.pantry.Search(e.ctx, dto.PantrySearchRequest{HouseholdID: hid, HasQuantity: "quizas"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPantry_UpdateDeleteYValidaciones(t *testing.T) {
	e, hid, rice, _ := recipeEnv(t)
	_, err := e.pantry.Create(e.ctx, "u1", dto.CreatePantryItemRequest{HouseholdID: hid, IngredientID: rice, Quantity: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.pantry.Create(e.ctx, "u2", dto.CreatePantryItemRequest{HouseholdID: hid, IngredientID: rice})
	assert.ErrorIs(t, err, domain.ErrHouseholdMismatch)

	item, err := e.pantry.Create(e.ctx, "u1", dto.CreatePantryItemRequest{
		HouseholdID: hid, IngredientID: rice, Quantity: decimal.NewFromInt(1), ExpiresAt: strp("2025-12-05"),
	})
	require.NoError(t, err)

	q := decimal.RequireFromString("2.5")
	out, err := e.pantry.Update(e.ctx, "u1", item.ID, dto.UpdatePantryItemRequest{Quantity: &q, ClearExpiry: true})
	require.NoError(t, err)
	assert.True(t, q.Equal(out.Quantity))
	assert.Nil(t, out.ExpiresAt)

	assert.ErrorIs(t, e.pantry.Delete(e.ctx, "u2", item.ID), domain.ErrHouseholdMismatch)
	require.NoError(t, e.pantry.Delete(e.ctx, "u1", item.ID))
	assert.ErrorIs(t, e.pantry.Delete(e.ctx, "u1", item.ID), domain.ErrNotFound)
}
