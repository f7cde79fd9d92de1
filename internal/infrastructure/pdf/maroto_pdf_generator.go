// Package pdf genera la versión imprimible de la lista de compras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la lista   │  Estado + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS                                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ☐ | Ingrediente | Necesario | Despensa | Comprar    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con los pendientes + total de ítems             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Despensa-api/internal/application/shopping"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/planning"
)

var _ shopping.ShoppingListPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 125, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// maxQRItems límite de líneas dentro del QR para que siga siendo legible.
const maxQRItems = 40

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa shopping.ShoppingListPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateShoppingListPDF genera el PDF de la lista y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateShoppingListPDF(_ context.Context, list *entity.ShoppingList) ([]byte, error) {
	if list == nil {
		return nil, fmt.Errorf("pdf: lista nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(list.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(list))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if list.Notes != "" {
		m.AddRows(notesRow(list.Notes))
	}

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if len(list.Items) == 0 {
		m.AddRows(emptyRow())
	}
	for _, r := range itemRows(list.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(list))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(list *entity.ShoppingList) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(list.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(strings.ToUpper(list.Status), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+list.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func notesRow(notes string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("", 1, align.Center),
		h("Ingrediente", 5, align.Left),
		h("Necesario", 2, align.Right),
		h("Despensa", 2, align.Right),
		h("Comprar", 2, align.Right),
	)
}

// itemRows una fila por ingrediente, con casilla para marcar al comprar.
func itemRows(items []entity.ShoppingListItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New("[  ]", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(
				nonEmpty(it.IngredientName, it.IngredientID),
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				quantity(it.NeededQuantity.StringFixed(planning.QuantityPlaces), it.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				quantity(it.PantryQuantity.StringFixed(planning.QuantityPlaces), it.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				quantity(it.ToBuyQuantity.StringFixed(planning.QuantityPlaces), it.Unit),
				props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("La despensa cubre todo el plan: no hay nada que comprar.", props.Text{
			Size: 9, Align: align.Center, Top: 3, Color: colorGray,
		}),
	))
}

// footerRow QR con los pendientes para llevarlos en el teléfono.
func footerRow(list *entity.ShoppingList) core.Row {
	summary := fmt.Sprintf("%d ingrediente(s) por comprar", len(list.Items))
	if len(list.Items) == 0 {
		return row.New(8).Add(col.New(12).Add(
			text.New(summary, props.Text{Size: 8, Top: 2, Color: colorGray}),
		))
	}
	return row.New(45).Add(
		col.New(4).Add(code.NewQr(qrPayload(list), props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New(summary, props.Text{Style: fontstyle.Bold, Size: 10, Top: 4, Left: 3, Color: colorPrimary}),
			text.New("Escanea el código para llevar la lista en el teléfono.", props.Text{
				Size: 8, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// qrPayload una línea "nombre cantidad unidad" por ingrediente.
func qrPayload(list *entity.ShoppingList) string {
	var b strings.Builder
	b.WriteString(list.Name)
	for i, it := range list.Items {
		if i == maxQRItems {
			fmt.Fprintf(&b, "\n(+%d)", len(list.Items)-maxQRItems)
			break
		}
		fmt.Fprintf(&b, "\n%s %s",
			nonEmpty(it.IngredientName, it.IngredientID),
			quantity(it.ToBuyQuantity.StringFixed(planning.QuantityPlaces), it.Unit))
	}
	return b.String()
}

func quantity(q, unit string) string {
	if unit == "" {
		return q
	}
	return q + " " + unit
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
