// Package mealplan orquesta los planes semanales de comidas: alta (con reemplazo del plan
// existente de la misma semana), búsqueda por semana ISO y edición.
package mealplan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/membership"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

// UseCase casos de uso de planes de comidas.
type UseCase struct {
	tx         TxRunner
	plans      repository.MealPlanRepository
	recipes    repository.RecipeRepository
	mealTypes  repository.MealTypeRepository
	households repository.HouseholdRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	tx TxRunner,
	plans repository.MealPlanRepository,
	recipes repository.RecipeRepository,
	mealTypes repository.MealTypeRepository,
	households repository.HouseholdRepository,
) *UseCase {
	return &UseCase{tx: tx, plans: plans, recipes: recipes, mealTypes: mealTypes, households: households}
}

// Create crea el plan de la semana que contiene in.WeekStart. Si el hogar ya tenía plan
// para esa semana, se elimina (con sus comidas) y se crea el nuevo en la misma transacción.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error) {
	if _, err := membership.Require(ctx, uc.households, in.HouseholdID, userID); err != nil {
		return nil, err
	}
	if in.WeekStart == "" {
		return nil, fmt.Errorf("%w: week_start es requerido", domain.ErrInvalidInput)
	}
	start, err := usecase.ParseDate("week_start", in.WeekStart)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items debe tener al menos una comida", domain.ErrInvalidInput)
	}
	monday := week.StartOf(start)
	now := time.Now()
	plan := &entity.MealPlan{
		ID:            uuid.New().String(),
		HouseholdID:   in.HouseholdID,
		UserID:        userID,
		WeekStartDate: monday,
		WeekLabel:     week.Of(monday).String(),
		Name:          strings.TrimSpace(in.Name),
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items, err := uc.buildItems(ctx, plan, in.Items)
	if err != nil {
		return nil, err
	}
	plan.Items = items

	err = uc.tx.RunMealPlans(ctx, func(plans repository.MealPlanRepository) error {
		existing, err := plans.GetByHouseholdAndWeek(ctx, plan.HouseholdID, monday)
		if err != nil {
			return fmt.Errorf("buscar plan existente: %w", err)
		}
		if existing != nil {
			if err := plans.Delete(ctx, existing.ID); err != nil {
				return fmt.Errorf("eliminar plan existente: %w", err)
			}
		}
		return plans.Create(ctx, plan)
	})
	if err != nil {
		return nil, err
	}
	return toMealPlanResponse(plan), nil
}

// Search devuelve el plan del hogar para la semana "YYYY-Www".
// Formato inválido: domain.ErrInvalidWeekFormat. Sin plan: domain.ErrNotFound.
func (uc *UseCase) Search(ctx context.Context, householdID, weekLabel string) (*dto.MealPlanResponse, error) {
	key, err := week.Parse(weekLabel)
	if err != nil {
		return nil, err
	}
	plan, err := uc.plans.GetByHouseholdAndWeek(ctx, householdID, key.StartDate())
	if err != nil {
		return nil, fmt.Errorf("buscar plan: %w", err)
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toMealPlanResponse(plan), nil
}

// GetByID devuelve un plan con sus comidas; solo para miembros del hogar.
func (uc *UseCase) GetByID(ctx context.Context, userID, id string) (*dto.MealPlanResponse, error) {
	plan, err := uc.memberPlan(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toMealPlanResponse(plan), nil
}

// Update cambia nombre y notas; si in.Items no está vacío reemplaza todas las comidas.
func (uc *UseCase) Update(ctx context.Context, userID, id string, in dto.UpdateMealPlanRequest) (*dto.MealPlanResponse, error) {
	plan, err := uc.memberPlan(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		plan.Name = strings.TrimSpace(*in.Name)
	}
	if in.Notes != nil {
		plan.Notes = *in.Notes
	}
	plan.UpdatedAt = time.Now()

	replace := len(in.Items) > 0
	if replace {
		items, err := uc.buildItems(ctx, plan, in.Items)
		if err != nil {
			return nil, err
		}
		plan.Items = items
	}

	err = uc.tx.RunMealPlans(ctx, func(plans repository.MealPlanRepository) error {
		if err := plans.UpdateHeader(ctx, plan); err != nil {
			return err
		}
		if replace {
			return plans.ReplaceItems(ctx, plan)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMealPlanResponse(plan), nil
}

func (uc *UseCase) memberPlan(ctx context.Context, userID, id string) (*entity.MealPlan, error) {
	plan, err := uc.plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar plan: %w", err)
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := membership.Require(ctx, uc.households, plan.HouseholdID, userID); err != nil {
		return nil, err
	}
	return plan, nil
}

// buildItems valida las comidas: fecha, receta existente del hogar (o pública) y tipo de comida.
// Con meal_type_id el nombre del tipo reemplaza al texto libre.
func (uc *UseCase) buildItems(ctx context.Context, plan *entity.MealPlan, in []dto.MealPlanItemInput) ([]entity.MealPlanItem, error) {
	recipeIDs := make([]string, 0, len(in))
	for _, it := range in {
		if it.RecipeID == "" {
			return nil, fmt.Errorf("%w: recipe_id es requerido", domain.ErrInvalidInput)
		}
		recipeIDs = append(recipeIDs, it.RecipeID)
	}
	recipes, err := uc.recipes.GetManyWithIngredients(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("buscar recetas: %w", err)
	}

	mealTypes := make(map[string]*entity.MealType)
	now := time.Now()
	out := make([]entity.MealPlanItem, 0, len(in))
	for _, it := range in {
		if it.Date == "" {
			return nil, fmt.Errorf("%w: date es requerido", domain.ErrInvalidInput)
		}
		date, err := usecase.ParseDate("date", it.Date)
		if err != nil {
			return nil, err
		}
		if it.Servings != nil && *it.Servings < 1 {
			return nil, fmt.Errorf("%w: servings debe ser al menos 1", domain.ErrInvalidInput)
		}
		r, ok := recipes[it.RecipeID]
		if !ok || (r.HouseholdID != plan.HouseholdID && !r.IsPublic) {
			return nil, fmt.Errorf("%w: receta %s no existe", domain.ErrInvalidInput, it.RecipeID)
		}

		mealType := strings.TrimSpace(it.MealType)
		if it.MealTypeID != "" {
			mt, cached := mealTypes[it.MealTypeID]
			if !cached {
				mt, err = uc.mealTypes.GetByID(ctx, it.MealTypeID)
				if err != nil {
					return nil, fmt.Errorf("buscar tipo de comida: %w", err)
				}
				mealTypes[it.MealTypeID] = mt
			}
			if mt == nil || mt.HouseholdID != plan.HouseholdID {
				return nil, fmt.Errorf("%w: tipo de comida %s no existe", domain.ErrInvalidInput, it.MealTypeID)
			}
			mealType = mt.Name
		}

		out = append(out, entity.MealPlanItem{
			ID:         uuid.New().String(),
			MealPlanID: plan.ID,
			Date:       date,
			MealType:   mealType,
			MealTypeID: it.MealTypeID,
			RecipeID:   r.ID,
			RecipeName: r.Name,
			Servings:   it.Servings,
			Notes:      it.Notes,
			CreatedAt:  now,
		})
	}
	return out, nil
}

func toMealPlanResponse(p *entity.MealPlan) *dto.MealPlanResponse {
	if p == nil {
		return nil
	}
	key := week.Of(p.WeekStartDate)
	label := p.WeekLabel
	if label == "" {
		label = key.String()
	}
	out := &dto.MealPlanResponse{
		ID:          p.ID,
		HouseholdID: p.HouseholdID,
		UserID:      p.UserID,
		Week:        label,
		WeekStart:   p.WeekStartDate.Format(usecase.DateLayout),
		WeekEnd:     key.EndDate().Format(usecase.DateLayout),
		Name:        p.Name,
		Notes:       p.Notes,
		Items:       make([]dto.MealPlanItemResponse, 0, len(p.Items)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, it := range p.Items {
		out.Items = append(out.Items, dto.MealPlanItemResponse{
			ID:         it.ID,
			Date:       it.Date.Format(usecase.DateLayout),
			MealType:   it.MealType,
			MealTypeID: it.MealTypeID,
			RecipeID:   it.RecipeID,
			RecipeName: it.RecipeName,
			Servings:   it.Servings,
			Notes:      it.Notes,
		})
	}
	return out
}
