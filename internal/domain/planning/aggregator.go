// Package planning contiene el motor de la lista de compras semanal:
// agregación de ingredientes del plan de comidas y descuento de la despensa.
// Servicios de dominio puros: no hacen I/O, operan sobre copias de sus entradas.
package planning

import (
	"time"

	"github.com/shopspring/decimal"
)

// Occurrence es una comida planificada: una receta en una fecha/tipo de comida.
// Servings nil o <= 0 significa "las porciones base de la receta".
type Occurrence struct {
	Date       time.Time
	MealTypeID string
	RecipeID   string
	Servings   *int
}

// IngredientLine es una línea de ingrediente de una receta.
// Quantity nil o <= 0 significa "sin cuantificar" y no aporta nada.
type IngredientLine struct {
	IngredientID string
	Quantity     *decimal.Decimal
	Unit         string // unidad de la línea (vacía si no se indicó)
	DefaultUnit  string // unidad por defecto del ingrediente
}

// Recipe es la vista mínima de una receta que necesita el agregador.
type Recipe struct {
	Servings *int
	Lines    []IngredientLine
}

// RecipeLookup resuelve recetas por ID (solo lectura).
type RecipeLookup interface {
	Lookup(recipeID string) (Recipe, bool)
}

// RecipeSet implementación en memoria de RecipeLookup.
type RecipeSet map[string]Recipe

// Lookup implementa RecipeLookup.
func (s RecipeSet) Lookup(recipeID string) (Recipe, bool) {
	r, ok := s[recipeID]
	return r, ok
}

// NeedLine cantidad total requerida de un ingrediente en la semana.
type NeedLine struct {
	IngredientID string
	Quantity     decimal.Decimal
	Unit         string
}

// Need es el resultado de la agregación: ingrediente → cantidad, en orden de inserción.
type Need struct {
	order []string
	lines map[string]*NeedLine

	// SkippedOccurrences cuenta las comidas cuya receta no se pudo resolver.
	SkippedOccurrences int
}

func newNeed() *Need {
	return &Need{lines: make(map[string]*NeedLine)}
}

// Len número de ingredientes distintos.
func (n *Need) Len() int { return len(n.order) }

// Lines devuelve una copia de las líneas en orden de inserción.
func (n *Need) Lines() []NeedLine {
	out := make([]NeedLine, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, *n.lines[id])
	}
	return out
}

// Get devuelve la línea de un ingrediente.
func (n *Need) Get(ingredientID string) (NeedLine, bool) {
	l, ok := n.lines[ingredientID]
	if !ok {
		return NeedLine{}, false
	}
	return *l, true
}

func (n *Need) add(ingredientID string, qty decimal.Decimal, unit string) {
	l, ok := n.lines[ingredientID]
	if !ok {
		// La primera unidad vista para el ingrediente se conserva.
		l = &NeedLine{IngredientID: ingredientID, Quantity: decimal.Zero, Unit: unit}
		n.lines[ingredientID] = l
		n.order = append(n.order, ingredientID)
	}
	l.Quantity = l.Quantity.Add(qty)
}

// Aggregate suma, por ingrediente, las cantidades de todas las recetas planificadas,
// escaladas por porciones de la comida / porciones base de la receta.
// Una receta inexistente hace que se omita esa comida, no falla la semana completa.
func Aggregate(occurrences []Occurrence, recipes RecipeLookup) *Need {
	need := newNeed()
	for _, occ := range occurrences {
		recipe, ok := recipes.Lookup(occ.RecipeID)
		if !ok {
			need.SkippedOccurrences++
			continue
		}

		recipeServings := positiveOr(recipe.Servings, 1)
		occServings := positiveOr(occ.Servings, recipeServings)
		num := decimal.NewFromInt(int64(occServings))
		den := decimal.NewFromInt(int64(recipeServings))

		for _, line := range recipe.Lines {
			if line.Quantity == nil || line.Quantity.LessThanOrEqual(decimal.Zero) {
				continue
			}
			// quantity * (occ / recipe); se multiplica antes de dividir para no perder precisión.
			contribution := line.Quantity.Mul(num).Div(den)
			need.add(line.IngredientID, contribution, unitOf(line))
		}
	}
	return need
}

func positiveOr(v *int, def int) int {
	if v != nil && *v > 0 {
		return *v
	}
	return def
}

func unitOf(line IngredientLine) string {
	if line.Unit != "" {
		return line.Unit
	}
	return line.DefaultUnit
}
