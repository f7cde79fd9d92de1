package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

func recipeEnv(t *testing.T) (*env, string, string, string) {
	t.Helper()
	e := newEnv(t)
	h, err := e.households.Create(e.ctx, "u1", dto.CreateHouseholdRequest{Name: "Casa"})
	require.NoError(t, err)
	rice, err := e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: "Arroz", DefaultUnit: "kg"})
	require.NoError(t, err)
	salt, err := e.ingredients.Create(e.ctx, dto.CreateIngredientRequest{Name: "Sal"})
	require.NoError(t, err)
	return e, h.ID, rice.ID, salt.ID
}

func TestRecipe_Create_UnidadPorDefectoYCantidadNula(t *testing.T) {
	e, hid, rice, salt := recipeEnv(t)
	two := decimal.NewFromInt(2)
	four := 4
	r, err := e.recipes.Create(e.ctx, "u1", dto.CreateRecipeRequest{
		HouseholdID: hid, Name: "Arroz blanco", Servings: &four,
		Ingredients: []dto.RecipeIngredientInput{
			{IngredientID: rice, Quantity: &two},
			{IngredientID: salt, Notes: "al gusto"},
		},
	})
	require.NoError(t, err)
	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, "kg", r.Ingredients[0].Unit, "sin unidad se usa la del ingrediente")
	assert.Equal(t, "Arroz", r.Ingredients[0].IngredientName)
	assert.Nil(t, r.Ingredients[1].Quantity)

	got, err := e.recipes.GetByID(e.ctx, "u1", r.ID)
	require.NoError(t, err)
	assert.Len(t, got.Ingredients, 2)
}

func TestRecipe_Create_Validaciones(t *testing.T) {
	e, hid, rice, _ := recipeEnv(t)
	zero := 0
	neg := decimal.NewFromInt(-1)
	cases := map[string]dto.CreateRecipeRequest{
		"sin nombre":           {HouseholdID: hid},
		"porciones cero":       {HouseholdID: hid, Name: "x", Servings: &zero},
		"cantidad negativa":    {HouseholdID: hid, Name: "x", Ingredients: []dto.RecipeIngredientInput{{IngredientID: rice, Quantity: &neg}}},
		"ingrediente repetido": {HouseholdID: hid, Name: "x", Ingredients: []dto.RecipeIngredientInput{{IngredientID: rice}, {IngredientID: rice}}},
		"ingrediente inválido": {HouseholdID: hid, Name: "x", Ingredients: []dto.RecipeIngredientInput{{IngredientID: "nope"}}},
	}
	for name, in := range cases {
		_, err := e.recipes.Create(e.ctx, "u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}

	_, err := e.recipes.Create(e.ctx, "u2", dto.CreateRecipeRequest{HouseholdID: hid, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrHouseholdMismatch)
}

func TestRecipe_Update_ReemplazaLineasSoloSiVienen(t *testing.T) {
	e, hid, rice, salt := recipeEnv(t)
	one := decimal.NewFromInt(1)
	r, err := e.recipes.Create(e.ctx, "u1", dto.CreateRecipeRequest{
		HouseholdID: hid, Name: "Arroz",
		Ingredients: []dto.RecipeIngredientInput{{IngredientID: rice, Quantity: &one}},
	})
	require.NoError(t, err)

	name := "Arroz con sal"
	out, err := e.recipes.Update(e.ctx, "u1", r.ID, dto.UpdateRecipeRequest{Name: &name})
	require.NoError(t, err)
	assert.Len(t, out.Ingredients, 1)

	lines := []dto.RecipeIngredientInput{{IngredientID: salt}, {IngredientID: rice, Quantity: &one, Unit: "g"}}
	out, err = e.recipes.Update(e.ctx, "u1", r.ID, dto.UpdateRecipeRequest{Ingredients: &lines})
	require.NoError(t, err)
	require.Len(t, out.Ingredients, 2)

	stored, err := e.recipes.GetByID(e.ctx, "u1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arroz con sal", stored.Name)
	require.Len(t, stored.Ingredients, 2)
	assert.Equal(t, "g", stored.Ingredients[1].Unit)

	_, err = e.recipes.GetByID(e.ctx, "u2", r.ID)
	assert.ErrorIs(t, err, domain.ErrHouseholdMismatch)
}

func TestRecipe_ListYDelete(t *testing.T) {
	e, hid, _, _ := recipeEnv(t)
	for _, n := range []string{"Sopa", "Ensalada", "Sopa fría"} {
		_, err := e.recipes.Create(e.ctx, "u1", dto.CreateRecipeRequest{HouseholdID: hid, Name: n})
		require.NoError(t, err)
	}
	page, err := e.recipes.List(e.ctx, hid, "sopa", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sopa", page.Items[0].Name)

	require.NoError(t, e.recipes.Delete(e.ctx, "u1", page.Items[0].ID))
	_, err = e.recipes.GetByID(e.ctx, "u1", page.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
