package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain"
)

// DateLayout formato de fechas calendario en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha YYYY-MM-DD en UTC.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

// FormatDate formatea t como YYYY-MM-DD; nil si t es nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
