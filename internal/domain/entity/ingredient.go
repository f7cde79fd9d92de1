package entity

import "time"

// Ingredient catálogo global de ingredientes.
// NameKey es el nombre normalizado (case-folded) usado para unicidad y búsqueda.
type Ingredient struct {
	ID          string
	Name        string
	NameKey     string
	DefaultUnit string // vacío si no tiene
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
