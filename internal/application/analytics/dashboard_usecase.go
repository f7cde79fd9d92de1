// Package analytics contiene el resumen semanal del dashboard del hogar.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

const dashboardTopN = 5 // recetas e ingredientes en los widgets del dashboard

// DashboardUseCase genera el resumen de una semana ISO del hogar.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj usado para "comidas completadas" (fecha <= hoy).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// WeeklySummary construye el resumen de la semana "YYYY-Www" (lunes a domingo, inclusivo).
//
// Tres llamadas en paralelo:
//  1. CountMeals          → planificadas + completadas
//  2. TopRecipes(top 5)   → recetas más usadas
//  3. TopIngredients(5)   → ingredientes por cantidad cruda sumada
func (uc *DashboardUseCase) WeeklySummary(ctx context.Context, householdID, weekLabel string) (*dto.WeeklySummaryDTO, error) {
	key, err := week.Parse(weekLabel)
	if err != nil {
		return nil, err
	}
	start, end := key.StartDate(), key.EndDate()
	today := week.DateOnly(uc.now())

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type countResult struct {
		planned, completed int
		err                error
	}
	type recipesResult struct {
		rows []repository.RecipeUsage
		err  error
	}
	type ingredientsResult struct {
		rows []repository.IngredientUsage
		err  error
	}

	countCh := make(chan countResult, 1)
	recipesCh := make(chan recipesResult, 1)
	ingredientsCh := make(chan ingredientsResult, 1)

	go func() {
		planned, completed, err := uc.repo.CountMeals(ctx, householdID, start, end, today)
		countCh <- countResult{planned, completed, err}
	}()
	go func() {
		rows, err := uc.repo.TopRecipes(ctx, householdID, start, end, dashboardTopN)
		recipesCh <- recipesResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.TopIngredients(ctx, householdID, start, end, dashboardTopN)
		ingredientsCh <- ingredientsResult{rows, err}
	}()

	counts := <-countCh
	recipes := <-recipesCh
	ingredients := <-ingredientsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de comidas: %w", counts.err)
	}
	if recipes.err != nil {
		return nil, fmt.Errorf("dashboard: top recetas: %w", recipes.err)
	}
	if ingredients.err != nil {
		return nil, fmt.Errorf("dashboard: top ingredientes: %w", ingredients.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	out := &dto.WeeklySummaryDTO{
		Week:           key.String(),
		WeekStart:      start.Format(usecase.DateLayout),
		WeekEnd:        end.Format(usecase.DateLayout),
		PlannedMeals:   counts.planned,
		CompletedMeals: counts.completed,
		TopRecipes:     make([]dto.TopRecipeDTO, 0, len(recipes.rows)),
		TopIngredients: make([]dto.TopIngredientDTO, 0, len(ingredients.rows)),
	}
	for _, r := range recipes.rows {
		out.TopRecipes = append(out.TopRecipes, dto.TopRecipeDTO{RecipeID: r.RecipeID, Name: r.Name, UsageCount: r.UsageCount})
	}
	for _, i := range ingredients.rows {
		out.TopIngredients = append(out.TopIngredients, dto.TopIngredientDTO{
			IngredientID:  i.IngredientID,
			Name:          i.Name,
			TotalQuantity: i.TotalQuantity.Round(2),
		})
	}
	return out, nil
}
