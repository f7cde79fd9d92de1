package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/membership"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// MealTypeUseCase tipos de comida de un hogar (Breakfast, Lunch, Dinner...).
type MealTypeUseCase struct {
	repo       repository.MealTypeRepository
	households repository.HouseholdRepository
	defaults   []string
}

// NewMealTypeUseCase construye el caso de uso. defaults son los nombres que se siembran
// en cada hogar nuevo, en orden.
func NewMealTypeUseCase(repo repository.MealTypeRepository, households repository.HouseholdRepository, defaults []string) *MealTypeUseCase {
	return &MealTypeUseCase{repo: repo, households: households, defaults: defaults}
}

// List lista los tipos de comida del hogar ordenados por Order.
func (uc *MealTypeUseCase) List(ctx context.Context, householdID string) ([]dto.MealTypeResponse, error) {
	list, err := uc.repo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de comida: %w", err)
	}
	out := make([]dto.MealTypeResponse, 0, len(list))
	for _, mt := range list {
		out = append(out, *toMealTypeResponse(mt))
	}
	return out, nil
}

// Create crea un tipo de comida. Sin Order se ubica al final (máximo + 1).
func (uc *MealTypeUseCase) Create(ctx context.Context, userID string, in dto.CreateMealTypeRequest) (*dto.MealTypeResponse, error) {
	if _, err := membership.Require(ctx, uc.households, in.HouseholdID, userID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	var order int
	if in.Order != nil {
		if *in.Order < 0 {
			return nil, fmt.Errorf("%w: order no puede ser negativo", domain.ErrInvalidInput)
		}
		order = *in.Order
	} else {
		last, err := uc.repo.MaxOrder(ctx, in.HouseholdID)
		if err != nil {
			return nil, fmt.Errorf("leer orden: %w", err)
		}
		order = last + 1
	}
	now := time.Now()
	mt := &entity.MealType{
		ID:          uuid.New().String(),
		HouseholdID: in.HouseholdID,
		Name:        name,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, mt); err != nil {
		return nil, err
	}
	return toMealTypeResponse(mt), nil
}

// Update renombra o reordena; solo el owner del hogar.
func (uc *MealTypeUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateMealTypeRequest) (*dto.MealTypeResponse, error) {
	mt, err := uc.ownedMealType(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
		}
		mt.Name = name
	}
	if in.Order != nil {
		if *in.Order < 0 {
			return nil, fmt.Errorf("%w: order no puede ser negativo", domain.ErrInvalidInput)
		}
		mt.Order = *in.Order
	}
	mt.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, mt); err != nil {
		return nil, err
	}
	return toMealTypeResponse(mt), nil
}

// Delete elimina el tipo; solo el owner. Las comidas planificadas conservan el nombre.
func (uc *MealTypeUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.ownedMealType(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// SeedDefaults inserta los tipos por defecto que el hogar aún no tiene. Devuelve cuántos insertó.
func (uc *MealTypeUseCase) SeedDefaults(ctx context.Context, householdID string) (int, error) {
	inserted := 0
	now := time.Now()
	for i, name := range uc.defaults {
		ok, err := uc.repo.CreateIfAbsent(ctx, &entity.MealType{
			ID:          uuid.New().String(),
			HouseholdID: householdID,
			Name:        name,
			Order:       i + 1,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return inserted, fmt.Errorf("sembrar %q: %w", name, err)
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

func (uc *MealTypeUseCase) ownedMealType(ctx context.Context, userID, id string) (*entity.MealType, error) {
	mt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar tipo de comida: %w", err)
	}
	if mt == nil {
		return nil, domain.ErrNotFound
	}
	if err := membership.RequireOwner(ctx, uc.households, mt.HouseholdID, userID); err != nil {
		return nil, err
	}
	return mt, nil
}

func toMealTypeResponse(mt *entity.MealType) *dto.MealTypeResponse {
	if mt == nil {
		return nil
	}
	return &dto.MealTypeResponse{
		ID:          mt.ID,
		HouseholdID: mt.HouseholdID,
		Name:        mt.Name,
		Order:       mt.Order,
		CreatedAt:   mt.CreatedAt,
		UpdatedAt:   mt.UpdatedAt,
	}
}
