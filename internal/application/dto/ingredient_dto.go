package dto

import "time"

// CreateIngredientRequest entrada para crear un ingrediente del catálogo.
type CreateIngredientRequest struct {
	Name        string `json:"name"`
	DefaultUnit string `json:"default_unit"`
}

// UpdateIngredientRequest actualización parcial de un ingrediente.
type UpdateIngredientRequest struct {
	Name        *string `json:"name"`
	DefaultUnit *string `json:"default_unit"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DefaultUnit string    `json:"default_unit,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
