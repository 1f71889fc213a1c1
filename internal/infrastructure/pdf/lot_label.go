// Package pdf genera las etiquetas PDF de lote que se pegan en estibas y cajas.
//
// Layout (100 x 60 mm):
//
//	┌──────────────────────────────────────────┐
//	│  SKU + nombre del producto     │  Estado │
//	│  ──────────────────────────────────────  │
//	│  Código de barras (Code128 del lote)│ QR │
//	│  LOTE <código>   Vence: dd/mm/aaaa       │
//	└──────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain/entity"
)

var _ ports.LabelGenerator = (*LabelGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// Dimensiones de la etiqueta en milímetros.
const (
	labelWidth  = 100.0
	labelHeight = 60.0
)

// LabelGenerator implementa ports.LabelGenerator con Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// QRPayload contenido del QR que lee el escáner móvil: "SKU|LOTE".
func QRPayload(sku, lotCode string) string {
	return sku + "|" + lotCode
}

// LotLabel genera la etiqueta y devuelve los bytes del PDF.
func (g *LabelGenerator) LotLabel(_ context.Context, l ports.LotLabel) ([]byte, error) {
	if strings.TrimSpace(l.LotCode) == "" || strings.TrimSpace(l.SKU) == "" {
		return nil, fmt.Errorf("pdf: la etiqueta requiere lote y SKU")
	}

	cfg := config.NewBuilder().
		WithDimensions(labelWidth, labelHeight).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(2).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiqueta de lote "+l.LotCode, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(l))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(codesRow(l))
	m.AddRows(footerRow(l))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(l ports.LotLabel) core.Row {
	statusColor := colorGray
	if l.Status != "" && l.Status != entity.LotStatusAvailable {
		statusColor = colorAlert
	}
	return row.New(11).Add(
		col.New(9).Add(
			text.New(l.SKU, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary}),
			text.New(truncate(l.ProductName, 48), props.Text{Size: 7, Top: 5, Color: colorGray}),
		),
		col.New(3).Add(
			text.New(statusLabel(l.Status), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: statusColor, Top: 1,
			}),
		),
	)
}

func codesRow(l ports.LotLabel) core.Row {
	return row.New(28).Add(
		col.New(8).Add(code.NewBar(l.LotCode, props.Barcode{Percent: 90, Center: true})),
		col.New(4).Add(code.NewQr(QRPayload(l.SKU, l.LotCode), props.Rect{Percent: 95, Center: true})),
	)
}

func footerRow(l ports.LotLabel) core.Row {
	expires := "Sin vencimiento"
	if l.ExpiresAt != nil {
		expires = "Vence: " + l.ExpiresAt.Format("02/01/2006")
	}
	return row.New(8).Add(
		col.New(7).Add(text.New("LOTE "+l.LotCode, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(5).Add(text.New(expires, props.Text{Size: 8, Align: align.Right, Top: 2})),
	)
}

func statusLabel(s string) string {
	switch s {
	case entity.LotStatusAvailable, "":
		return "DISPONIBLE"
	case entity.LotStatusQuarantine:
		return "CUARENTENA"
	case entity.LotStatusBlocked:
		return "BLOQUEADO"
	case entity.LotStatusExpired:
		return "VENCIDO"
	default:
		return strings.ToUpper(s)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
