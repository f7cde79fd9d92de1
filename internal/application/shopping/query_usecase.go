package shopping

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/membership"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// QueryUseCase lectura de listas de compras y su PDF.
type QueryUseCase struct {
	lists     ShoppingListStore
	members   membership.RoleReader
	generator ShoppingListPDFGenerator
}

// NewQueryUseCase construye el caso de uso. generator puede ser nil si no se sirve PDF.
func NewQueryUseCase(lists ShoppingListStore, members membership.RoleReader, generator ShoppingListPDFGenerator) *QueryUseCase {
	return &QueryUseCase{lists: lists, members: members, generator: generator}
}

// Get devuelve la lista con sus líneas; solo para miembros del hogar.
func (uc *QueryUseCase) Get(ctx context.Context, userID, id string) (*entity.ShoppingList, error) {
	list, err := uc.lists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener lista: %w", err)
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := membership.Require(ctx, uc.members, list.HouseholdID, userID); err != nil {
		return nil, err
	}
	return list, nil
}

// List lista las listas del hogar, más recientes primero (sin líneas).
func (uc *QueryUseCase) List(ctx context.Context, householdID string, limit, offset int) (*dto.ShoppingListListResponse, error) {
	lists, err := uc.lists.ListByHousehold(ctx, householdID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar listas: %w", err)
	}
	items := make([]dto.ShoppingListResponse, 0, len(lists))
	for _, l := range lists {
		items = append(items, *ToResponse(l))
	}
	return &dto.ShoppingListListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DownloadPDF genera el PDF imprimible de la lista.
func (uc *QueryUseCase) DownloadPDF(ctx context.Context, userID, id string) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	list, err := uc.Get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateShoppingListPDF(ctx, list)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("lista_compras_%s.pdf", list.ID), nil
}

// ToResponse convierte la entidad a DTO.
func ToResponse(l *entity.ShoppingList) *dto.ShoppingListResponse {
	if l == nil {
		return nil
	}
	out := &dto.ShoppingListResponse{
		ID:          l.ID,
		HouseholdID: l.HouseholdID,
		MealPlanID:  l.MealPlanID,
		UserID:      l.UserID,
		Name:        l.Name,
		Notes:       l.Notes,
		Status:      l.Status,
		Items:       make([]dto.ShoppingListItemResponse, 0, len(l.Items)),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	for _, it := range l.Items {
		out.Items = append(out.Items, dto.ShoppingListItemResponse{
			ID:             it.ID,
			IngredientID:   it.IngredientID,
			IngredientName: it.IngredientName,
			NeededQuantity: it.NeededQuantity,
			PantryQuantity: it.PantryQuantity,
			ToBuyQuantity:  it.ToBuyQuantity,
			Unit:           it.Unit,
			Notes:          it.Notes,
		})
	}
	return out
}

func errPlanNotFound(id string) error {
	return fmt.Errorf("%w: plan de comidas %s", domain.ErrNotFound, id)
}
