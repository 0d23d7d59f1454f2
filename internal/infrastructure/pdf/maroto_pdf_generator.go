// Package pdf gera o mapa comparativo de preços de uma cotação em PDF
// usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Mapa Comparativo │ Rubrica + data da cotação       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por item:                                                   │
//	│    ITEM: código - descrição (quantidade unidade)             │
//	│    TABELA: Fornecedor | Preço Unit. | Prazo | Condições      │
//	│    Menor preço: R$ X por fornecedor                          │
//	│  ─────────────────────────────────────────────────────────  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/gabrielxlive96/portaldecompras/internal/application/dto"
	"github.com/gabrielxlive96/portaldecompras/internal/application/usecase"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWinner  = &props.Color{Red: 0, Green: 128, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ComparisonPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.ComparisonPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateComparisonPDF gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateComparisonPDF(_ context.Context, mapa *dto.ComparisonMap) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Mapa Comparativo de Cotações", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(mapa.Quotation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, item := range mapa.Items {
		m.AddRows(itemHeaderRow(item.Item))
		if len(item.Responses) == 0 {
			m.AddRows(row.New(7).Add(
				col.New(12).Add(text.New("Nenhuma proposta recebida.", props.Text{
					Size: 8, Style: fontstyle.Italic, Color: colorGray, Top: 1, Left: 2,
				})),
			))
		} else {
			m.AddRows(tableHeaderRow())
			for _, r := range responseRows(item) {
				m.AddRows(r)
			}
			if item.Cheapest != nil {
				m.AddRows(cheapestRow(item.Cheapest))
			}
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e rubrica + data da cotação (dir).
func headerRow(q dto.QuotationResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Mapa Comparativo de Cotações", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Rubrica %s (Cotação #%d)", q.Rubrica, q.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Criada em: "+q.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// itemHeaderRow: código, descrição e quantidade do item.
func itemHeaderRow(item dto.LineItemResponse) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s - %s (%d %s)", item.ItemCode, item.Description, item.Quantity, item.Unit), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de propostas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Fornecedor", 4, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Prazo", 2, align.Center),
		h("Condições", 4, align.Left),
	)
}

// responseRows: uma linha por proposta, já em ordem crescente de preço.
func responseRows(item dto.ComparisonItem) []core.Row {
	result := make([]core.Row, 0, len(item.Responses))
	for i, r := range item.Responses {
		style := fontstyle.Normal
		color := colorGray
		if i == 0 { // a mais barata vem primeiro
			style = fontstyle.Bold
			color = colorWinner
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(r.Supplier, props.Text{
				Size: 8, Style: style, Color: color, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New("R$ "+r.UnitPrice.StringFixed(2), props.Text{
				Size: 8, Style: style, Color: color, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(r.DeliveryTerm, props.Text{
				Size: 8, Color: color, Align: align.Center, Top: 1,
			})),
			col.New(4).Add(text.New(r.PaymentTerms, props.Text{
				Size: 8, Color: color, Top: 1, Left: 1,
			})),
		))
	}
	return result
}

// cheapestRow: destaque do menor preço do item.
func cheapestRow(cheapest *dto.SupplierResponseResponse) core.Row {
	return row.New(7).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Menor preço: R$ %s por %s", cheapest.UnitPrice.StringFixed(2), cheapest.Supplier), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorWinner, Top: 1, Left: 1,
			}),
		),
	)
}
