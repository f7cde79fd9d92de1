package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/membership"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// PantryUseCase existencias de la despensa de un hogar.
type PantryUseCase struct {
	repo        repository.PantryRepository
	ingredients repository.IngredientRepository
	households  repository.HouseholdRepository
}

// NewPantryUseCase construye el caso de uso.
func NewPantryUseCase(repo repository.PantryRepository, ingredients repository.IngredientRepository, households repository.HouseholdRepository) *PantryUseCase {
	return &PantryUseCase{repo: repo, ingredients: ingredients, households: households}
}

// Search lista la despensa con filtros opcionales. Sin vencimiento al final, luego por fecha.
func (uc *PantryUseCase) Search(ctx context.Context, in dto.PantrySearchRequest) ([]dto.PantryItemResponse, error) {
	f := repository.PantryFilter{HouseholdID: in.HouseholdID, IngredientID: in.IngredientID}
	if in.ExpiresBefore != "" {
		t, err := ParseDate("expires_before", in.ExpiresBefore)
		if err != nil {
			return nil, err
		}
		f.ExpiresBefore = &t
	}
	if in.ExpiresAfter != "" {
		t, err := ParseDate("expires_after", in.ExpiresAfter)
		if err != nil {
			return nil, err
		}
		f.ExpiresAfter = &t
	}
	if in.HasQuantity != "" {
		b, err := strconv.ParseBool(in.HasQuantity)
		if err != nil {
			return nil, fmt.Errorf("%w: has_quantity debe ser true o false", domain.ErrInvalidInput)
		}
		f.HasQuantity = &b
	}
	list, err := uc.repo.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("buscar despensa: %w", err)
	}
	out := make([]dto.PantryItemResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPantryItemResponse(p))
	}
	return out, nil
}

// Create registra una existencia. Sin unidad se usa la del ingrediente.
func (uc *PantryUseCase) Create(ctx context.Context, userID string, in dto.CreatePantryItemRequest) (*dto.PantryItemResponse, error) {
	if _, err := membership.Require(ctx, uc.households, in.HouseholdID, userID); err != nil {
		return nil, err
	}
	if in.IngredientID == "" {
		return nil, fmt.Errorf("%w: ingredient_id es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	ing, err := uc.ingredients.GetByID(ctx, in.IngredientID)
	if err != nil {
		return nil, fmt.Errorf("buscar ingrediente: %w", err)
	}
	if ing == nil {
		return nil, fmt.Errorf("%w: ingrediente %s no existe", domain.ErrInvalidInput, in.IngredientID)
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = ing.DefaultUnit
	}
	now := time.Now()
	p := &entity.PantryItem{
		ID:             uuid.New().String(),
		HouseholdID:    in.HouseholdID,
		IngredientID:   ing.ID,
		IngredientName: ing.Name,
		DefaultUnit:    ing.DefaultUnit,
		Quantity:       in.Quantity,
		Unit:           unit,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.ExpiresAt != nil && *in.ExpiresAt != "" {
		t, err := ParseDate("expires_at", *in.ExpiresAt)
		if err != nil {
			return nil, err
		}
		p.ExpiresAt = &t
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPantryItemResponse(p), nil
}

// Update aplica cambios parciales a una existencia.
func (uc *PantryUseCase) Update(ctx context.Context, userID, id string, in dto.UpdatePantryItemRequest) (*dto.PantryItemResponse, error) {
	p, err := uc.memberItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
		}
		p.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		p.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	switch {
	case in.ClearExpiry:
		p.ExpiresAt = nil
	case in.ExpiresAt != nil:
		t, err := ParseDate("expires_at", *in.ExpiresAt)
		if err != nil {
			return nil, err
		}
		p.ExpiresAt = &t
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPantryItemResponse(p), nil
}

// Delete elimina una existencia.
func (uc *PantryUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.memberItem(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PantryUseCase) memberItem(ctx context.Context, userID, id string) (*entity.PantryItem, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar existencia: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := membership.Require(ctx, uc.households, p.HouseholdID, userID); err != nil {
		return nil, err
	}
	return p, nil
}

func toPantryItemResponse(p *entity.PantryItem) *dto.PantryItemResponse {
	if p == nil {
		return nil
	}
	return &dto.PantryItemResponse{
		ID:             p.ID,
		HouseholdID:    p.HouseholdID,
		IngredientID:   p.IngredientID,
		IngredientName: p.IngredientName,
		Quantity:       p.Quantity,
		Unit:           p.Unit,
		ExpiresAt:      FormatDate(p.ExpiresAt),
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
