package mealplan_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/mealplan"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (context.Context, *memory.Store, *mealplan.UseCase) {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Households().Create(ctx, &entity.Household{ID: "h1", Name: "Casa", OwnerID: "u1"}))
	q := decimal.NewFromInt(1)
	require.NoError(t, s.Recipes().Create(ctx, &entity.Recipe{
		ID: "r1", HouseholdID: "h1", Name: "Arroz con pollo",
		Ingredients: []entity.RecipeIngredient{{IngredientID: "rice", Quantity: &q}},
	}))
	require.NoError(t, s.Recipes().Create(ctx, &entity.Recipe{ID: "ajena", HouseholdID: "h2", Name: "Ajena"}))
	require.NoError(t, s.MealTypes().Create(ctx, &entity.MealType{ID: "mt-lunch", HouseholdID: "h1", Name: "Lunch", Order: 2}))
	uc := mealplan.NewUseCase(s.MealPlans(), s.MealPlans(), s.Recipes(), s.MealTypes(), s.Households())
	return ctx, s, uc
}

func TestCreate_NormalizaAlLunesYEtiquetaISO(t *testing.T) {
	ctx, _, uc := setup(t)
	out, err := uc.Create(ctx, "u1", dto.CreateMealPlanRequest{
		HouseholdID: "h1",
		WeekStart:   "2025-12-04", // jueves
		Items:       []dto.MealPlanItemInput{{Date: "2025-12-04", MealTypeID: "mt-lunch", MealType: "ignorado", RecipeID: "r1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", out.WeekStart)
	assert.Equal(t, "2025-12-07", out.WeekEnd)
	assert.Equal(t, "2025-W49", out.Week)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Lunch", out.Items[0].MealType, "meal_type_id resuelve el nombre")
	assert.Equal(t, "Arroz con pollo", out.Items[0].RecipeName)
}

func TestCreate_ReemplazaPlanDeLaMismaSemana(t *testing.T) {
	ctx, _, uc := setup(t)
	first, err := uc.Create(ctx, "u1", dto.CreateMealPlanRequest{
		HouseholdID: "h1", WeekStart: "2025-12-01", Name: "viejo",
		Items: []dto.MealPlanItemInput{{Date: "2025-12-01", RecipeID: "r1"}, {Date: "2025-12-02", RecipeID: "r1"}},
	})
	require.NoError(t, err)

	second, err := uc.Create(ctx, "u1", dto.CreateMealPlanRequest{
		HouseholdID: "h1", WeekStart: "2025-12-03", Name: "nuevo",
		Items: []dto.MealPlanItemInput{{Date: "2025-12-05", RecipeID: "r1"}},
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	found, err := uc.Search(ctx, "h1", "2025-W49")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
	assert.Equal(t, "nuevo", found.Name)
	assert.Len(t, found.Items, 1)

	_, err = uc.GetByID(ctx, "u1", first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_Validaciones(t *testing.T) {
	ctx, _, uc := setup(t)
	cases := map[string]dto.CreateMealPlanRequest{
		"sin items":        {HouseholdID: "h1", WeekStart: "2025-12-01"},
		"fecha inválida":   {HouseholdID: "h1", WeekStart: "01/12/2025", Items: []dto.MealPlanItemInput{{Date: "2025-12-01", RecipeID: "r1"}}},
		"receta ajena":     {HouseholdID: "h1", WeekStart: "2025-12-01", Items: []dto.MealPlanItemInput{{Date: "2025-12-01", RecipeID: "ajena"}}},
		"porciones cero":   {HouseholdID: "h1", WeekStart: "2025-12-01", Items: []dto.MealPlanItemInput{{Date: "2025-12-01", RecipeID: "r1", Servings: new(int)}}},
		"tipo inexistente": {HouseholdID: "h1", WeekStart: "2025-12-01", Items: []dto.MealPlanItemInput{{Date: "2025-12-01", RecipeID: "r1", MealTypeID: "x"}}},
	}
	for name, in := range cases {
		_, err := uc.Create(ctx, "u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestCreate_NoMiembro(t *testing.T) {
	ctx, _, uc := setup(t)
	_, err := uc.Create(ctx, "extraño", dto.CreateMealPlanRequest{
		HouseholdID: "h1", WeekStart: "2025-12-01", Items: []dto.MealPlanItemInput{{Date: "2025-12-01", RecipeID: "r1"}},
	})
	assert.ErrorIs(t, err, domain.ErrHouseholdMismatch)
}

func TestSearch_FormatoInvalidoYSinPlan(t *testing.T) {
	ctx, _, uc := setup(t)
	_, err := uc.Search(ctx, "h1", "2025-49")
	assert.ErrorIs(t, err, domain.ErrInvalidWeekFormat)

	_, err = uc.Search(ctx, "h1", "2025-W10")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ItemsVaciosConservaComidas(t *testing.T) {
	ctx, _, uc := setup(t)
	plan, err := uc.Create(ctx, "u1", dto.CreateMealPlanRequest{
		HouseholdID: "h1", WeekStart: "2025-12-01",
		Items: []dto.MealPlanItemInput{{Date: "2025-12-01", RecipeID: "r1"}, {Date: "2025-12-02", RecipeID: "r1"}},
	})
	require.NoError(t, err)

	name := "Semana liviana"
	out, err := uc.Update(ctx, "u1", plan.ID, dto.UpdateMealPlanRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Semana liviana", out.Name)
	assert.Len(t, out.Items, 2)

	out, err = uc.Update(ctx, "u1", plan.ID, dto.UpdateMealPlanRequest{
		Items: []dto.MealPlanItemInput{{Date: "2025-12-03", RecipeID: "r1", MealType: "Dinner"}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	stored, err := uc.GetByID(ctx, "u1", plan.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "2025-12-03", stored.Items[0].Date)
	assert.Equal(t, "Semana liviana", stored.Name)
}
