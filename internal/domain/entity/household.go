package entity

import "time"

// Roles de un miembro dentro del hogar.
const (
	HouseholdRoleOwner  = "owner"
	HouseholdRoleMember = "member"
)

// Household representa un hogar (tenant): recetas, despensa y planes son por hogar.
type Household struct {
	ID        string
	Name      string
	OwnerID   string
	Role      string // rol del usuario consultado (solo lectura, ListByUser)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HouseholdMember relación usuario-hogar con su rol.
type HouseholdMember struct {
	HouseholdID string
	UserID      string
	Name        string // nombre del usuario (solo lectura)
	Email       string // email del usuario (solo lectura)
	Role        string // owner, member u otro rol libre
	CreatedAt   time.Time
}
