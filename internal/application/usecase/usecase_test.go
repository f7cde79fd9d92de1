package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
)

// env agrupa el store en memoria y los casos de uso construidos sobre él.
type env struct {
	ctx         context.Context
	store       *memory.Store
	households  *usecase.HouseholdUseCase
	ingredients *usecase.IngredientUseCase
	recipes     *usecase.RecipeUseCase
	mealTypes   *usecase.MealTypeUseCase
	pantry      *usecase.PantryUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	s := memory.NewStore()
	e := &env{ctx: context.Background(), store: s}
	for _, u := range []entity.User{
		{ID: "u1", Email: "ana@example.com", Name: "Ana", Status: entity.UserStatusActive},
		{ID: "u2", Email: "beto@example.com", Name: "Beto", Status: entity.UserStatusActive},
	} {
		u := u
		require.NoError(t, s.Users().Create(e.ctx, &u))
	}
	e.mealTypes = usecase.NewMealTypeUseCase(s.MealTypes(), s.Households(), []string{"Breakfast", "Lunch", "Dinner"})
	e.households = usecase.NewHouseholdUseCase(s.Households(), s.Users(), e.mealTypes)
	e.ingredients = usecase.NewIngredientUseCase(s.Ingredients())
	e.recipes = usecase.NewRecipeUseCase(s.Recipes(), s.Ingredients(), s.Households())
	e.pantry = usecase.NewPantryUseCase(s.Pantry(), s.Ingredients(), s.Households())
	return e
}
