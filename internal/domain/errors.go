package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInUse              = errors.New("el recurso está en uso")

	// Planificación semanal y lista de compras.
	ErrInvalidWeekFormat = errors.New("formato de semana inválido, use YYYY-Www")
	ErrRecipeNotFound    = errors.New("receta no encontrada")
	ErrEmptyAggregation  = errors.New("no se encontraron ingredientes en este plan de comidas")
	ErrHouseholdMismatch = errors.New("el recurso no pertenece al hogar del usuario")
)
