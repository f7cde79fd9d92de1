package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
)

func d(day int) time.Time { return time.Date(2025, time.December, day, 0, 0, 0, 0, time.UTC) }

func TestWeeklySummary_ConteosYTops(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	two, three := decimal.NewFromInt(2), decimal.NewFromInt(3)
	require.NoError(t, s.Ingredients().Create(ctx, &entity.Ingredient{ID: "rice", Name: "Rice", NameKey: "rice"}))
	require.NoError(t, s.Ingredients().Create(ctx, &entity.Ingredient{ID: "egg", Name: "Egg", NameKey: "egg"}))
	require.NoError(t, s.Recipes().Create(ctx, &entity.Recipe{ID: "r1", HouseholdID: "h1", Name: "Arroz",
		Ingredients: []entity.RecipeIngredient{{IngredientID: "rice", Quantity: &two}}}))
	require.NoError(t, s.Recipes().Create(ctx, &entity.Recipe{ID: "r2", HouseholdID: "h1", Name: "Tortilla",
		Ingredients: []entity.RecipeIngredient{{IngredientID: "egg", Quantity: &three}}}))
	require.NoError(t, s.MealPlans().Create(ctx, &entity.MealPlan{
		ID: "mp", HouseholdID: "h1", WeekStartDate: d(1),
		Items: []entity.MealPlanItem{
			{ID: "a", Date: d(1), RecipeID: "r1"},
			{ID: "b", Date: d(2), RecipeID: "r1"},
			{ID: "c", Date: d(3), RecipeID: "r2"},
			{ID: "e", Date: d(7), RecipeID: "r1"},
			{ID: "fuera", Date: d(8), RecipeID: "r2"},
		},
	}))

	uc := analytics.NewDashboardUseCase(s.Dashboard()).
		WithClock(func() time.Time { return time.Date(2025, time.December, 2, 20, 0, 0, 0, time.UTC) })

	out, err := uc.WeeklySummary(ctx, "h1", "2025-W49")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", out.WeekStart)
	assert.Equal(t, "2025-12-07", out.WeekEnd)
	assert.Equal(t, 4, out.PlannedMeals)
	assert.Equal(t, 2, out.CompletedMeals)

	require.Len(t, out.TopRecipes, 2)
	assert.Equal(t, "r1", out.TopRecipes[0].RecipeID)
	assert.Equal(t, 3, out.TopRecipes[0].UsageCount)

	require.Len(t, out.TopIngredients, 2)
	assert.Equal(t, "rice", out.TopIngredients[0].IngredientID)
	assert.True(t, decimal.NewFromInt(6).Equal(out.TopIngredients[0].TotalQuantity))
}

func TestWeeklySummary_SemanaInvalida(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewStore().Dashboard())
	_, err := uc.WeeklySummary(context.Background(), "h1", "2025/49")
	assert.ErrorIs(t, err, domain.ErrInvalidWeekFormat)
}
