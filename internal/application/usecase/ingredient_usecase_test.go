package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

func TestNameKey_IgnoraMayusculasYEspacios(t *testing.T) {
	assert.Equal(t, usecase.NameKey("Azúcar Morena"), usecase.NameKey("  AZÚCAR   morena "))
	assert.Equal(t, "tomate", usecase.NameKey("TOMATE"))
}

func TestIngredient_NombreUnico(t *testing.T) {
	e := newEnv(t)
	_, err := e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: "Tomate", DefaultUnit: "unit"})
	require.NoError(t, err)

	_, err = e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: "TOMATE"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngredient_SearchYUpdate(t *testing.T) {
	e := newEnv(t)
	tomate, err := e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: "Tomate"})
	require.NoError(t, err)
	_, err = e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: "Tomate cherry"})
	require.NoError(t, err)
	_, err = e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: "Arroz"})
	require.NoError(t, err)

	found, err := e.ingredients.Search(e.ctx, "TOM")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Tomate", found[0].Name)

	all, err := e.ingredients.Search(e.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	clash := "arroz"
	_, err = e.ingredients.Update(e.ctx, tomate.ID, dto.UpdateIngredientRequest{Name: &clash})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	unit := "kg"
	out, err := e.ingredients.Update(e.ctx, tomate.ID, dto.UpdateIngredientRequest{DefaultUnit: &unit})
	require.NoError(t, err)
	assert.Equal(t, "kg", out.DefaultUnit)

	_, err = e.ingredients.GetByID(e.ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
