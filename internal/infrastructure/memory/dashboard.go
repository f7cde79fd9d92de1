package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

// DashboardRepository implementa repository.DashboardRepository sobre el Store.
type DashboardRepository struct{ s *Store }

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

// Dashboard devuelve el repositorio de consultas del dashboard.
func (s *Store) Dashboard() *DashboardRepository { return &DashboardRepository{s} }

func (r *DashboardRepository) itemsBetween(householdID string, from, to time.Time) []entity.MealPlanItem {
	from, to = week.DateOnly(from), week.DateOnly(to)
	var out []entity.MealPlanItem
	for _, p := range r.s.plans {
		if p.HouseholdID != householdID {
			continue
		}
		for _, it := range p.Items {
			d := week.DateOnly(it.Date)
			if d.Before(from) || d.After(to) {
				continue
			}
			out = append(out, it)
		}
	}
	return out
}

func (r *DashboardRepository) CountMeals(_ context.Context, householdID string, from, to, upTo time.Time) (int, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := r.itemsBetween(householdID, from, to)
	completed := 0
	for _, it := range items {
		if !week.DateOnly(it.Date).After(week.DateOnly(upTo)) {
			completed++
		}
	}
	return len(items), completed, nil
}

func (r *DashboardRepository) TopRecipes(_ context.Context, householdID string, from, to time.Time, limit int) ([]repository.RecipeUsage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int)
	for _, it := range r.itemsBetween(householdID, from, to) {
		if _, ok := r.s.recipes[it.RecipeID]; ok {
			counts[it.RecipeID]++
		}
	}
	out := make([]repository.RecipeUsage, 0, len(counts))
	for id, n := range counts {
		out = append(out, repository.RecipeUsage{RecipeID: id, Name: r.s.recipes[id].Name, UsageCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UsageCount != out[j].UsageCount {
			return out[i].UsageCount > out[j].UsageCount
		}
		return out[i].RecipeID < out[j].RecipeID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *DashboardRepository) TopIngredients(_ context.Context, householdID string, from, to time.Time, limit int) ([]repository.IngredientUsage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	totals := make(map[string]decimal.Decimal)
	for _, it := range r.itemsBetween(householdID, from, to) {
		rec, ok := r.s.recipes[it.RecipeID]
		if !ok {
			continue
		}
		for _, l := range rec.Ingredients {
			q := decimal.Zero
			if l.Quantity != nil {
				q = *l.Quantity
			}
			totals[l.IngredientID] = totals[l.IngredientID].Add(q)
		}
	}
	out := make([]repository.IngredientUsage, 0, len(totals))
	for id, q := range totals {
		out = append(out, repository.IngredientUsage{IngredientID: id, Name: r.s.ingredients[id].Name, TotalQuantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalQuantity.Cmp(out[j].TotalQuantity); c != 0 {
			return c > 0
		}
		return out[i].IngredientID < out[j].IngredientID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
