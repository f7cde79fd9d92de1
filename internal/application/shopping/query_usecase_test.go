package shopping_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/shopping"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

type stubPDF struct {
	got *entity.ShoppingList
	err error
}

func (s *stubPDF) GenerateShoppingListPDF(_ context.Context, l *entity.ShoppingList) ([]byte, error) {
	s.got = l
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.3"), nil
}

func TestQuery_GetListYPDF(t *testing.T) {
	f := newFixture(t)
	f.recipe(t, "R1", intp(4), entity.RecipeIngredient{IngredientID: "rice", Quantity: qty("2"), Unit: "kg"})
	planID := f.plan(t, meal("R1", nil))
	created, err := f.uc.FromMealPlan(f.ctx, "u1", planID)
	require.NoError(t, err)

	gen := &stubPDF{}
	q := shopping.NewQueryUseCase(f.store.ShoppingLists(), f.store.Households(), gen)

	got, err := q.Get(f.ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", got.Items[0].IngredientName)

	page, err := q.List(f.ctx, "h1", 20, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.ID, page.Items[0].ID)

	b, name, err := q.DownloadPDF(f.ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
	assert.Equal(t, "lista_compras_"+created.ID+".pdf", name)
	assert.Equal(t, created.ID, gen.got.ID)
}

func TestQuery_Get_NoMiembroYNoExiste(t *testing.T) {
	f := newFixture(t)
	f.recipe(t, "R1", nil, entity.RecipeIngredient{IngredientID: "rice", Quantity: qty("1")})
	planID := f.plan(t, meal("R1", nil))
	created, err := f.uc.FromMealPlan(f.ctx, "u1", planID)
	require.NoError(t, err)

	q := shopping.NewQueryUseCase(f.store.ShoppingLists(), f.store.Households(), nil)
	_, err = q.Get(f.ctx, "otro", created.ID)
	assert.ErrorIs(t, err, domain.ErrHouseholdMismatch)

	_, err = q.Get(f.ctx, "u1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_PDF_ErrorDelGenerador(t *testing.T) {
	f := newFixture(t)
	f.recipe(t, "R1", nil, entity.RecipeIngredient{IngredientID: "rice", Quantity: qty("1")})
	planID := f.plan(t, meal("R1", nil))
	created, err := f.uc.FromMealPlan(f.ctx, "u1", planID)
	require.NoError(t, err)

	boom := errors.New("boom")
	q := shopping.NewQueryUseCase(f.store.ShoppingLists(), f.store.Households(), &stubPDF{err: boom})
	_, _, err = q.DownloadPDF(f.ctx, "u1", created.ID)
	assert.ErrorIs(t, err, boom)
}
