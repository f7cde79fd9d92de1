package dto

import "time"

// CreateMealTypeRequest entrada para crear un tipo de comida. Order nil = al final.
type CreateMealTypeRequest struct {
	HouseholdID string `json:"household_id"`
	Name        string `json:"name"`
	Order       *int   `json:"order"`
}

// UpdateMealTypeRequest actualización parcial de un tipo de comida.
type UpdateMealTypeRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

// MealTypeResponse salida de un tipo de comida.
type MealTypeResponse struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Name        string    `json:"name"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
