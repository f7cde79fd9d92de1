// Package shopping genera y consulta listas de compras derivadas de un plan semanal:
// lo que piden las recetas planificadas menos lo que ya hay en la despensa.
package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Despensa-api/internal/application/membership"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/planning"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
	"github.com/jhoicas/Despensa-api/pkg/logger"
)

// GenerateUseCase construye la lista de compras de un plan semanal.
type GenerateUseCase struct {
	plans   MealPlanReader
	recipes RecipeReader
	pantry  PantryQuery
	lists   ShoppingListStore
	members membership.RoleReader
	log     *logger.Logger
	now     func() time.Time
}

// NewGenerateUseCase construye el caso de uso.
func NewGenerateUseCase(
	plans MealPlanReader,
	recipes RecipeReader,
	pantry PantryQuery,
	lists ShoppingListStore,
	members membership.RoleReader,
	log *logger.Logger,
) *GenerateUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &GenerateUseCase{
		plans:   plans,
		recipes: recipes,
		pantry:  pantry,
		lists:   lists,
		members: members,
		log:     log.Component("shopping"),
		now:     time.Now,
	}
}

// WithClock reemplaza el reloj; "hoy" decide qué existencias están vencidas.
func (uc *GenerateUseCase) WithClock(now func() time.Time) *GenerateUseCase {
	uc.now = now
	return uc
}

// FromMealPlan genera una lista nueva (estado draft) para el plan mealPlanID.
//
// Cada llamada crea una lista distinta; no se reutilizan listas previas del plan.
// Si las recetas del plan no aportan ningún ingrediente cuantificado devuelve
// domain.ErrEmptyAggregation y no crea nada. Si la despensa cubre todo, la lista
// se crea igual, sin líneas.
func (uc *GenerateUseCase) FromMealPlan(ctx context.Context, userID, mealPlanID string) (*entity.ShoppingList, error) {
	// ── 1. Plan y pertenencia ─────────────────────────────────────────────────
	plan, err := uc.plans.GetByID(ctx, mealPlanID)
	if err != nil {
		return nil, fmt.Errorf("obtener plan: %w", err)
	}
	if plan == nil {
		return nil, errPlanNotFound(mealPlanID)
	}
	if _, err := membership.Require(ctx, uc.members, plan.HouseholdID, userID); err != nil {
		return nil, err
	}
	label := plan.WeekLabel
	if label == "" {
		label = week.Of(plan.WeekStartDate).String()
	}

	// ── 2. Agregación de ingredientes ─────────────────────────────────────────
	recipes, names, err := uc.loadRecipes(ctx, plan.Items)
	if err != nil {
		return nil, err
	}
	occurrences := make([]planning.Occurrence, 0, len(plan.Items))
	for _, it := range plan.Items {
		occurrences = append(occurrences, planning.Occurrence{
			Date:       it.Date,
			MealTypeID: it.MealTypeID,
			RecipeID:   it.RecipeID,
			Servings:   it.Servings,
		})
	}
	need := planning.Aggregate(occurrences, recipes)
	if need.SkippedOccurrences > 0 {
		uc.log.Warn().
			Str("meal_plan_id", plan.ID).
			Int("skipped", need.SkippedOccurrences).
			Msg("comidas omitidas: receta inexistente")
	}

	// ── 3. Descuento de despensa ──────────────────────────────────────────────
	today := week.DateOnly(uc.now())
	stock, err := uc.pantry.ListEligible(ctx, plan.HouseholdID, today)
	if err != nil {
		return nil, fmt.Errorf("obtener despensa: %w", err)
	}
	lines, err := planning.Net(need, toStockLines(stock), today)
	if err != nil {
		return nil, err
	}

	// ── 4. Persistir ──────────────────────────────────────────────────────────
	now := uc.now()
	list := &entity.ShoppingList{
		ID:          uuid.New().String(),
		HouseholdID: plan.HouseholdID,
		MealPlanID:  plan.ID,
		UserID:      userID,
		Name:        "Shopping list " + label,
		Notes:       "Generated automatically from the meal plan for week " + label + ".",
		Status:      entity.ShoppingListStatusDraft,
		Items:       make([]entity.ShoppingListItem, 0, len(lines)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, l := range lines {
		list.Items = append(list.Items, entity.ShoppingListItem{
			ID:             uuid.New().String(),
			ShoppingListID: list.ID,
			IngredientID:   l.IngredientID,
			IngredientName: names[l.IngredientID],
			NeededQuantity: l.Needed,
			PantryQuantity: l.Pantry,
			ToBuyQuantity:  l.ToBuy,
			Unit:           l.Unit,
			CreatedAt:      now,
		})
	}
	if err := uc.lists.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("guardar lista de compras: %w", err)
	}

	uc.log.Info().
		Str("shopping_list_id", list.ID).
		Str("meal_plan_id", plan.ID).
		Str("week", label).
		Int("items", len(list.Items)).
		Msg("lista de compras generada")
	return list, nil
}

// loadRecipes resuelve las recetas del plan y el nombre de cada ingrediente que aparece en ellas.
func (uc *GenerateUseCase) loadRecipes(ctx context.Context, items []entity.MealPlanItem) (planning.RecipeSet, map[string]string, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.RecipeID] {
			seen[it.RecipeID] = true
			ids = append(ids, it.RecipeID)
		}
	}
	set := make(planning.RecipeSet, len(ids))
	names := make(map[string]string)
	if len(ids) == 0 {
		return set, names, nil
	}
	found, err := uc.recipes.GetManyWithIngredients(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener recetas: %w", err)
	}
	for id, r := range found {
		lines := make([]planning.IngredientLine, 0, len(r.Ingredients))
		for _, ri := range r.Ingredients {
			names[ri.IngredientID] = ri.IngredientName
			lines = append(lines, planning.IngredientLine{
				IngredientID: ri.IngredientID,
				Quantity:     ri.Quantity,
				Unit:         ri.Unit,
				DefaultUnit:  ri.DefaultUnit,
			})
		}
		set[id] = planning.Recipe{Servings: r.Servings, Lines: lines}
	}
	return set, names, nil
}

func toStockLines(items []*entity.PantryItem) []planning.StockLine {
	out := make([]planning.StockLine, 0, len(items))
	for _, p := range items {
		out = append(out, planning.StockLine{
			IngredientID: p.IngredientID,
			Quantity:     p.Quantity,
			ExpiresAt:    p.ExpiresAt,
		})
	}
	return out
}
