package entity

import "time"

// MealType tipo de comida de un hogar (desayuno, almuerzo, cena...), ordenable.
type MealType struct {
	ID          string
	HouseholdID string
	Name        string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
