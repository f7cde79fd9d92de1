package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

// QuantityPlaces decimales de las cantidades de la lista de compras (NUMERIC(10,2)).
const QuantityPlaces = 2

// StockLine existencia de un ingrediente en la despensa del hogar.
// ExpiresAt nil = no vence.
type StockLine struct {
	IngredientID string
	Quantity     decimal.Decimal
	ExpiresAt    *time.Time
}

// BuyLine una fila de la lista de compras.
type BuyLine struct {
	IngredientID string
	Needed       decimal.Decimal
	Pantry       decimal.Decimal
	ToBuy        decimal.Decimal
	Unit         string
}

// Eligible indica si la existencia cuenta para el descuento en la fecha today:
// sin vencimiento o vence hoy o después.
func (s StockLine) Eligible(today time.Time) bool {
	if s.ExpiresAt == nil {
		return true
	}
	return !week.DateOnly(*s.ExpiresAt).Before(week.DateOnly(today))
}

// Net descuenta la despensa de lo requerido y devuelve lo que falta comprar,
// en el orden de need. Los ingredientes totalmente cubiertos se omiten.
// La unidad de la despensa no se compara con la del requerimiento.
// Con need vacío devuelve domain.ErrEmptyAggregation.
func Net(need *Need, stock []StockLine, today time.Time) ([]BuyLine, error) {
	if need == nil || need.Len() == 0 {
		return nil, domain.ErrEmptyAggregation
	}

	available := make(map[string]decimal.Decimal)
	for _, s := range stock {
		if !s.Eligible(today) {
			continue
		}
		available[s.IngredientID] = available[s.IngredientID].Add(s.Quantity)
	}

	out := make([]BuyLine, 0, need.Len())
	for _, line := range need.Lines() {
		needed := line.Quantity.Round(QuantityPlaces)
		pantry := available[line.IngredientID].Round(QuantityPlaces)
		toBuy := decimal.Max(needed.Sub(pantry), decimal.Zero)
		if toBuy.LessThanOrEqual(decimal.Zero) {
			continue
		}
		out = append(out, BuyLine{
			IngredientID: line.IngredientID,
			Needed:       needed,
			Pantry:       pantry,
			ToBuy:        toBuy,
			Unit:         line.Unit,
		})
	}
	return out, nil
}
