package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// IngredientUseCase CRUD del catálogo global de ingredientes.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// NameKey normaliza un nombre para unicidad y búsqueda: sin espacios extremos, case-folded.
// "Azúcar", "AZÚCAR" y " azúcar " comparten llave.
func NameKey(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// Create crea un ingrediente; el nombre es único sin distinguir mayúsculas.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	key := NameKey(name)
	existing, err := uc.repo.GetByNameKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("buscar ingrediente: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe el ingrediente %q", domain.ErrDuplicate, existing.Name)
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:          uuid.New().String(),
		Name:        name,
		NameKey:     key,
		DefaultUnit: strings.TrimSpace(in.DefaultUnit),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// GetByID obtiene un ingrediente.
func (uc *IngredientUseCase) GetByID(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar ingrediente: %w", err)
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return toIngredientResponse(ing), nil
}

// Search lista ingredientes cuyo nombre contiene q (vacío = todos), ordenados por nombre.
func (uc *IngredientUseCase) Search(ctx context.Context, q string) ([]dto.IngredientResponse, error) {
	list, err := uc.repo.Search(ctx, NameKey(q))
	if err != nil {
		return nil, fmt.Errorf("buscar ingredientes: %w", err)
	}
	out := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, *toIngredientResponse(ing))
	}
	return out, nil
}

// Update renombra o cambia la unidad por defecto.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar ingrediente: %w", err)
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
		}
		key := NameKey(name)
		other, err := uc.repo.GetByNameKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("buscar ingrediente: %w", err)
		}
		if other != nil && other.ID != ing.ID {
			return nil, fmt.Errorf("%w: ya existe el ingrediente %q", domain.ErrDuplicate, other.Name)
		}
		ing.Name, ing.NameKey = name, key
	}
	if in.DefaultUnit != nil {
		ing.DefaultUnit = strings.TrimSpace(*in.DefaultUnit)
	}
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// Delete elimina un ingrediente. Falla con ErrInUse si lo usan recetas o la despensa.
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	if i == nil {
		return nil
	}
	return &dto.IngredientResponse{
		ID:          i.ID,
		Name:        i.Name,
		DefaultUnit: i.DefaultUnit,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
