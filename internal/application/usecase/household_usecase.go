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

// HouseholdUseCase alta de hogares y gestión de miembros.
type HouseholdUseCase struct {
	households repository.HouseholdRepository
	users      repository.UserRepository
	mealTypes  *MealTypeUseCase
}

// NewHouseholdUseCase construye el caso de uso. mealTypes siembra los tipos de comida por defecto.
func NewHouseholdUseCase(households repository.HouseholdRepository, users repository.UserRepository, mealTypes *MealTypeUseCase) *HouseholdUseCase {
	return &HouseholdUseCase{households: households, users: users, mealTypes: mealTypes}
}

// Create crea el hogar, registra al creador como owner y siembra los tipos de comida por defecto.
func (uc *HouseholdUseCase) Create(ctx context.Context, userID string, in dto.CreateHouseholdRequest) (*dto.HouseholdResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	h := &entity.Household{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   userID,
		Role:      entity.HouseholdRoleOwner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.households.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("crear hogar: %w", err)
	}
	if uc.mealTypes != nil {
		if _, err := uc.mealTypes.SeedDefaults(ctx, h.ID); err != nil {
			return nil, fmt.Errorf("sembrar tipos de comida: %w", err)
		}
	}
	return toHouseholdResponse(h), nil
}

// ListMine lista los hogares a los que pertenece el usuario, con su rol.
func (uc *HouseholdUseCase) ListMine(ctx context.Context, userID string) ([]dto.HouseholdResponse, error) {
	list, err := uc.households.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar hogares: %w", err)
	}
	out := make([]dto.HouseholdResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *toHouseholdResponse(h))
	}
	return out, nil
}

// Get devuelve el hogar con sus miembros; solo para miembros.
func (uc *HouseholdUseCase) Get(ctx context.Context, userID, householdID string) (*dto.HouseholdDetailResponse, error) {
	role, err := membership.Require(ctx, uc.households, householdID, userID)
	if err != nil {
		return nil, err
	}
	h, err := uc.households.GetByID(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("buscar hogar: %w", err)
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}
	h.Role = role
	members, err := uc.households.ListMembers(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("listar miembros: %w", err)
	}
	out := &dto.HouseholdDetailResponse{HouseholdResponse: *toHouseholdResponse(h)}
	out.Members = make([]dto.HouseholdMemberResponse, 0, len(members))
	for _, m := range members {
		out.Members = append(out.Members, dto.HouseholdMemberResponse{UserID: m.UserID, Name: m.Name, Email: m.Email, Role: m.Role})
	}
	return out, nil
}

// AddMember agrega (o actualiza el rol de) un usuario identificado por email o user_id.
// Cualquier miembro puede agregar miembros; solo un owner puede otorgar el rol owner.
func (uc *HouseholdUseCase) AddMember(ctx context.Context, actorID, householdID string, in dto.AddMemberRequest) (*dto.HouseholdMemberResponse, error) {
	actorRole, err := membership.Require(ctx, uc.households, householdID, actorID)
	if err != nil {
		return nil, err
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.HouseholdRoleMember
	}
	if role == entity.HouseholdRoleOwner && actorRole != entity.HouseholdRoleOwner {
		return nil, domain.ErrForbidden
	}

	var user *entity.User
	switch {
	case in.UserID != "":
		user, err = uc.users.GetByID(ctx, in.UserID)
	case in.Email != "":
		user, err = uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	default:
		return nil, fmt.Errorf("%w: email o user_id es requerido", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	m := &entity.HouseholdMember{
		HouseholdID: householdID,
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        role,
		CreatedAt:   time.Now(),
	}
	if err := uc.households.UpsertMember(ctx, m); err != nil {
		return nil, fmt.Errorf("agregar miembro: %w", err)
	}
	return &dto.HouseholdMemberResponse{UserID: m.UserID, Name: m.Name, Email: m.Email, Role: m.Role}, nil
}

func toHouseholdResponse(h *entity.Household) *dto.HouseholdResponse {
	if h == nil {
		return nil
	}
	return &dto.HouseholdResponse{
		ID:        h.ID,
		Name:      h.Name,
		OwnerID:   h.OwnerID,
		Role:      h.Role,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
