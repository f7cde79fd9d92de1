package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/membership"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// RecipeUseCase recetas de un hogar con sus líneas de ingredientes.
type RecipeUseCase struct {
	repo        repository.RecipeRepository
	ingredients repository.IngredientRepository
	households  repository.HouseholdRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository, ingredients repository.IngredientRepository, households repository.HouseholdRepository) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, ingredients: ingredients, households: households}
}

// Create crea una receta en el hogar indicado; el usuario debe ser miembro.
func (uc *RecipeUseCase) Create(ctx context.Context, userID string, in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if _, err := membership.Require(ctx, uc.households, in.HouseholdID, userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if err := validateRecipeNumbers(in.Servings, in.PrepTimeMinutes, in.CookTimeMinutes); err != nil {
		return nil, err
	}
	now := time.Now()
	r := &entity.Recipe{
		ID:              uuid.New().String(),
		HouseholdID:     in.HouseholdID,
		UserID:          userID,
		Name:            name,
		Description:     in.Description,
		Instructions:    in.Instructions,
		PrepTimeMinutes: in.PrepTimeMinutes,
		CookTimeMinutes: in.CookTimeMinutes,
		Servings:        in.Servings,
		IsPublic:        in.IsPublic,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	lines, err := uc.buildLines(ctx, r.ID, in.Ingredients)
	if err != nil {
		return nil, err
	}
	r.Ingredients = lines
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRecipeResponse(r), nil
}

// GetByID devuelve la receta con ingredientes. Las públicas las puede leer cualquier usuario.
func (uc *RecipeUseCase) GetByID(ctx context.Context, userID, id string) (*dto.RecipeResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar receta: %w", err)
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if !r.IsPublic {
		if _, err := membership.Require(ctx, uc.households, r.HouseholdID, userID); err != nil {
			return nil, err
		}
	}
	return toRecipeResponse(r), nil
}

// List busca recetas del hogar por nombre o descripción, con paginación.
func (uc *RecipeUseCase) List(ctx context.Context, householdID, q string, limit, offset int) (*dto.RecipeListResponse, error) {
	list, total, err := uc.repo.Search(ctx, repository.RecipeFilter{
		HouseholdID: householdID,
		Query:       strings.TrimSpace(q),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, fmt.Errorf("buscar recetas: %w", err)
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecipeResponse(r))
	}
	return &dto.RecipeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Update aplica cambios parciales. Si in.Ingredients no es nil reemplaza todas las líneas.
func (uc *RecipeUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	r, err := uc.memberRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
		}
		r.Name = name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Instructions != nil {
		r.Instructions = *in.Instructions
	}
	if in.PrepTimeMinutes != nil {
		r.PrepTimeMinutes = in.PrepTimeMinutes
	}
	if in.CookTimeMinutes != nil {
		r.CookTimeMinutes = in.CookTimeMinutes
	}
	if in.Servings != nil {
		r.Servings = in.Servings
	}
	if in.IsPublic != nil {
		r.IsPublic = *in.IsPublic
	}
	if err := validateRecipeNumbers(r.Servings, r.PrepTimeMinutes, r.CookTimeMinutes); err != nil {
		return nil, err
	}
	replace := in.Ingredients != nil
	if replace {
		lines, err := uc.buildLines(ctx, r.ID, *in.Ingredients)
		if err != nil {
			return nil, err
		}
		r.Ingredients = lines
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r, replace); err != nil {
		return nil, err
	}
	return toRecipeResponse(r), nil
}

// Delete elimina la receta. Las comidas planificadas que la usaban se omiten al generar listas.
func (uc *RecipeUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.memberRecipe(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *RecipeUseCase) memberRecipe(ctx context.Context, userID, id string) (*entity.Recipe, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar receta: %w", err)
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := membership.Require(ctx, uc.households, r.HouseholdID, userID); err != nil {
		return nil, err
	}
	return r, nil
}

// buildLines valida las líneas y resuelve la unidad: la indicada, si no la del ingrediente.
func (uc *RecipeUseCase) buildLines(ctx context.Context, recipeID string, in []dto.RecipeIngredientInput) ([]entity.RecipeIngredient, error) {
	if len(in) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, l := range in {
		if l.IngredientID == "" {
			return nil, fmt.Errorf("%w: ingredient_id es requerido", domain.ErrInvalidInput)
		}
		if seen[l.IngredientID] {
			return nil, fmt.Errorf("%w: ingrediente %s repetido en la receta", domain.ErrInvalidInput, l.IngredientID)
		}
		if l.Quantity != nil && l.Quantity.IsNegative() {
			return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
		}
		seen[l.IngredientID] = true
		ids = append(ids, l.IngredientID)
	}
	found, err := uc.ingredients.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("buscar ingredientes: %w", err)
	}
	out := make([]entity.RecipeIngredient, 0, len(in))
	for _, l := range in {
		ing, ok := found[l.IngredientID]
		if !ok {
			return nil, fmt.Errorf("%w: ingrediente %s no existe", domain.ErrInvalidInput, l.IngredientID)
		}
		unit := strings.TrimSpace(l.Unit)
		if unit == "" {
			unit = ing.DefaultUnit
		}
		var qty *decimal.Decimal
		if l.Quantity != nil {
			q := *l.Quantity
			qty = &q
		}
		out = append(out, entity.RecipeIngredient{
			RecipeID:       recipeID,
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			DefaultUnit:    ing.DefaultUnit,
			Quantity:       qty,
			Unit:           unit,
			Notes:          l.Notes,
		})
	}
	return out, nil
}

func validateRecipeNumbers(servings, prep, cook *int) error {
	if servings != nil && *servings < 1 {
		return fmt.Errorf("%w: servings debe ser al menos 1", domain.ErrInvalidInput)
	}
	if prep != nil && *prep < 0 {
		return fmt.Errorf("%w: prep_time_minutes no puede ser negativo", domain.ErrInvalidInput)
	}
	if cook != nil && *cook < 0 {
		return fmt.Errorf("%w: cook_time_minutes no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	if r == nil {
		return nil
	}
	out := &dto.RecipeResponse{
		ID:              r.ID,
		HouseholdID:     r.HouseholdID,
		UserID:          r.UserID,
		Name:            r.Name,
		Description:     r.Description,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		IsPublic:        r.IsPublic,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, l := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, dto.RecipeIngredientResponse{
			IngredientID:   l.IngredientID,
			IngredientName: l.IngredientName,
			Quantity:       l.Quantity,
			Unit:           l.Unit,
			Notes:          l.Notes,
		})
	}
	return out
}
