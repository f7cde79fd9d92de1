// Package week implementa el identificador de semana ISO-8601 ("2025-W49") que
// comparten el plan de comidas, el resumen del dashboard y la lista de compras.
//
// El lunes de la semana es la llave de unicidad del plan semanal de un hogar.
package week

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain"
)

const separator = "-W"

// Key identifica una semana ISO (año ISO + número de semana).
type Key struct {
	Year int
	Week int
}

// Parse interpreta "YYYY-Www". Sin el separador "-W" o con partes no numéricas
// devuelve domain.ErrInvalidWeekFormat.
// No valida el rango 1–53: una semana fuera de rango cae en el año ISO vecino.
func Parse(s string) (Key, error) {
	if !strings.Contains(s, separator) {
		return Key{}, fmt.Errorf("%w: %q", domain.ErrInvalidWeekFormat, s)
	}
	yearPart, weekPart, _ := strings.Cut(s, separator)
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return Key{}, fmt.Errorf("%w: año %q", domain.ErrInvalidWeekFormat, yearPart)
	}
	w, err := strconv.Atoi(weekPart)
	if err != nil {
		return Key{}, fmt.Errorf("%w: semana %q", domain.ErrInvalidWeekFormat, weekPart)
	}
	return Key{Year: year, Week: w}, nil
}

// Of devuelve la semana ISO a la que pertenece t.
func Of(t time.Time) Key {
	y, w := t.ISOWeek()
	return Key{Year: y, Week: w}
}

// String devuelve la forma canónica, ej: "2025-W49".
func (k Key) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

// StartDate devuelve el lunes de la semana (fecha sin hora, UTC).
// El 4 de enero siempre cae en la semana 1.
func (k Key) StartDate() time.Time {
	jan4 := time.Date(k.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	mondayW1 := jan4.AddDate(0, 0, -daysSinceMonday(jan4))
	return mondayW1.AddDate(0, 0, (k.Week-1)*7)
}

// EndDate devuelve el domingo de la semana.
func (k Key) EndDate() time.Time {
	return k.StartDate().AddDate(0, 0, 6)
}

// StartOf normaliza cualquier fecha al lunes de su semana (fecha sin hora, UTC).
func StartOf(t time.Time) time.Time {
	d := DateOnly(t)
	return d.AddDate(0, 0, -daysSinceMonday(d))
}

// DateOnly descarta la hora conservando el día calendario de t.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
