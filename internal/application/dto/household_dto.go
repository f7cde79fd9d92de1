package dto

import "time"

// CreateHouseholdRequest entrada para crear un hogar; el creador queda como owner.
type CreateHouseholdRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest agrega un usuario al hogar por email o por user_id.
type AddMemberRequest struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
	Role   string `json:"role"` // default "member"
}

// HouseholdResponse salida de un hogar.
type HouseholdResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	Role      string    `json:"role,omitempty"` // rol del usuario autenticado
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HouseholdMemberResponse miembro de un hogar.
type HouseholdMemberResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// HouseholdDetailResponse hogar con sus miembros.
type HouseholdDetailResponse struct {
	HouseholdResponse
	Members []HouseholdMemberResponse `json:"members"`
}
