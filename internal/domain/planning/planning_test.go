package planning_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/planning"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func intp(v int) *int { return &v }

func qty(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func occ(recipeID string, servings *int) planning.Occurrence {
	return planning.Occurrence{Date: day(2025, time.December, 1), RecipeID: recipeID, Servings: servings}
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_SinPorciones_FactorUno(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Servings: nil, Lines: []planning.IngredientLine{
			{IngredientID: "harina", Quantity: qty("0.5"), Unit: "kg"},
		}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r", nil)}, recipes)

	line, ok := need.Get("harina")
	require.True(t, ok)
	assertDec(t, "0.5", line.Quantity, "cantidad sin escalar")
	assert.Equal(t, "kg", line.Unit)
}

func TestAggregate_DoblePorciones_DuplicaAporte(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Servings: intp(3), Lines: []planning.IngredientLine{
			{IngredientID: "a", Quantity: qty("1.25")},
			{IngredientID: "b", Quantity: qty("7")},
		}},
	}
	base := planning.Aggregate([]planning.Occurrence{occ("r", intp(3))}, recipes)
	double := planning.Aggregate([]planning.Occurrence{occ("r", intp(6))}, recipes)

	for _, id := range []string{"a", "b"} {
		b, _ := base.Get(id)
		d, _ := double.Get(id)
		assert.True(t, b.Quantity.Mul(decimal.NewFromInt(2)).Equal(d.Quantity), id)
	}
}

func TestAggregate_RecetasDistintas_SumanIngredienteComun(t *testing.T) {
	recipes := planning.RecipeSet{
		"r1": {Servings: intp(2), Lines: []planning.IngredientLine{{IngredientID: "x", Quantity: qty("1")}}},
		"r2": {Servings: intp(4), Lines: []planning.IngredientLine{{IngredientID: "x", Quantity: qty("3")}}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r1", nil), occ("r2", intp(2))}, recipes)

	line, ok := need.Get("x")
	require.True(t, ok)
	assertDec(t, "2.5", line.Quantity, "1 + 3*2/4")
	assert.Equal(t, 1, need.Len())
}

func TestAggregate_CantidadNulaOCero_NoAparece(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Servings: intp(2), Lines: []planning.IngredientLine{
			{IngredientID: "sal", Quantity: nil},
			{IngredientID: "pimienta", Quantity: qty("0")},
			{IngredientID: "aceite", Quantity: qty("-1")},
			{IngredientID: "arroz", Quantity: qty("1")},
		}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r", nil)}, recipes)

	assert.Equal(t, 1, need.Len())
	for _, id := range []string{"sal", "pimienta", "aceite"} {
		_, ok := need.Get(id)
		assert.False(t, ok, id)
	}
}

func TestAggregate_RecetaInexistente_SeOmite(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Lines: []planning.IngredientLine{{IngredientID: "x", Quantity: qty("2")}}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("borrada", nil), occ("r", nil)}, recipes)

	assert.Equal(t, 1, need.SkippedOccurrences)
	line, ok := need.Get("x")
	require.True(t, ok)
	assertDec(t, "2", line.Quantity, "solo la receta existente")
}

func TestAggregate_PrimeraUnidadGana(t *testing.T) {
	recipes := planning.RecipeSet{
		"r1": {Lines: []planning.IngredientLine{{IngredientID: "leche", Quantity: qty("1"), Unit: "l"}}},
		"r2": {Lines: []planning.IngredientLine{{IngredientID: "leche", Quantity: qty("200"), Unit: "ml"}}},
		"r3": {Lines: []planning.IngredientLine{{IngredientID: "huevo", Quantity: qty("2"), DefaultUnit: "unidad"}}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r1", nil), occ("r2", nil), occ("r3", nil)}, recipes)

	leche, _ := need.Get("leche")
	assert.Equal(t, "l", leche.Unit)
	assertDec(t, "201", leche.Quantity, "suma sin conversión de unidades")

	huevo, _ := need.Get("huevo")
	assert.Equal(t, "unidad", huevo.Unit, "sin unidad en la línea se usa la del ingrediente")
}

func TestAggregate_OrdenDeInsercion(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Lines: []planning.IngredientLine{
			{IngredientID: "c", Quantity: qty("1")},
			{IngredientID: "a", Quantity: qty("1")},
			{IngredientID: "b", Quantity: qty("1")},
		}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r", nil)}, recipes)

	var ids []string
	for _, l := range need.Lines() {
		ids = append(ids, l.IngredientID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

// ──────────────────────────────────────────────────────────────────────────────
// Net
// ──────────────────────────────────────────────────────────────────────────────

func TestNet_EscenarioArroz(t *testing.T) {
	recipes := planning.RecipeSet{
		"R1": {Servings: intp(4), Lines: []planning.IngredientLine{{IngredientID: "rice", Quantity: qty("2"), Unit: "kg"}}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("R1", intp(2))}, recipes)
	today := day(2025, time.November, 28)
	stock := []planning.StockLine{{IngredientID: "rice", Quantity: dec("0.5")}}

	lines, err := planning.Net(need, stock, today)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assertDec(t, "1.00", lines[0].Needed, "needed")
	assertDec(t, "0.50", lines[0].Pantry, "pantry")
	assertDec(t, "0.50", lines[0].ToBuy, "toBuy")
	assert.Equal(t, "kg", lines[0].Unit)
}

func TestNet_EscenarioHuevos(t *testing.T) {
	recipes := planning.RecipeSet{
		"R2": {Servings: nil, Lines: []planning.IngredientLine{{IngredientID: "egg", Quantity: qty("6"), Unit: "unit"}}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("R2", nil), occ("R2", nil)}, recipes)

	lines, err := planning.Net(need, nil, day(2025, time.December, 1))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assertDec(t, "12.00", lines[0].Needed, "needed")
	assertDec(t, "0", lines[0].Pantry, "pantry")
	assertDec(t, "12.00", lines[0].ToBuy, "toBuy")
}

func TestNet_AgregacionVacia_Error(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Lines: []planning.IngredientLine{{IngredientID: "sal", Quantity: nil}}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r", nil)}, recipes)

	lines, err := planning.Net(need, nil, day(2025, time.December, 1))
	assert.ErrorIs(t, err, domain.ErrEmptyAggregation)
	assert.Nil(t, lines)
}

func TestNet_Vencimiento(t *testing.T) {
	today := day(2025, time.December, 1)
	yesterday := today.AddDate(0, 0, -1)
	later := time.Date(2025, time.December, 1, 23, 0, 0, 0, time.UTC)

	recipes := planning.RecipeSet{
		"r": {Lines: []planning.IngredientLine{
			{IngredientID: "vencido", Quantity: qty("1")},
			{IngredientID: "hoy", Quantity: qty("1")},
		}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r", nil)}, recipes)
	stock := []planning.StockLine{
		{IngredientID: "vencido", Quantity: dec("1"), ExpiresAt: &yesterday},
		{IngredientID: "hoy", Quantity: dec("0.4"), ExpiresAt: &later},
	}

	lines, err := planning.Net(need, stock, today)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "vencido", lines[0].IngredientID)
	assertDec(t, "1", lines[0].ToBuy, "stock vencido ayer no descuenta")
	assertDec(t, "0", lines[0].Pantry, "stock vencido no cuenta")

	assert.Equal(t, "hoy", lines[1].IngredientID)
	assertDec(t, "0.6", lines[1].ToBuy, "stock que vence hoy sí descuenta")
}

func TestNet_DespensaCubre_SeOmiteYNuncaNegativo(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Lines: []planning.IngredientLine{
			{IngredientID: "exacto", Quantity: qty("2")},
			{IngredientID: "sobra", Quantity: qty("1")},
			{IngredientID: "falta", Quantity: qty("3")},
		}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r", nil)}, recipes)
	stock := []planning.StockLine{
		{IngredientID: "exacto", Quantity: dec("1.5")},
		{IngredientID: "exacto", Quantity: dec("0.5")},
		{IngredientID: "sobra", Quantity: dec("10")},
		{IngredientID: "falta", Quantity: dec("1")},
	}

	lines, err := planning.Net(need, stock, day(2025, time.December, 1))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "falta", lines[0].IngredientID)
	for _, l := range lines {
		assert.True(t, l.ToBuy.GreaterThan(decimal.Zero))
	}
}

func TestNet_RedondeoDosDecimales(t *testing.T) {
	recipes := planning.RecipeSet{
		"r": {Servings: intp(3), Lines: []planning.IngredientLine{{IngredientID: "x", Quantity: qty("1")}}},
	}
	need := planning.Aggregate([]planning.Occurrence{occ("r", intp(1))}, recipes)

	lines, err := planning.Net(need, []planning.StockLine{{IngredientID: "x", Quantity: dec("0.004")}}, day(2025, time.December, 1))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assertDec(t, "0.33", lines[0].Needed, "1/3 redondeado")
	assertDec(t, "0", lines[0].Pantry, "0.004 redondeado")
	assertDec(t, "0.33", lines[0].ToBuy, "toBuy")
}
