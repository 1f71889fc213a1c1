// Package excel genera el reporte de existencias en XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain/entity"
)

var _ ports.InventoryExporter = (*InventoryExporter)(nil)

// Sheet hoja donde se escribe el reporte.
const Sheet = "Sheet1"

// Headers encabezados del reporte, en orden de columna.
var Headers = []any{
	"Sub-almacén", "Ubicación", "SKU", "Producto", "Lote", "Estado lote", "Vence", "Cantidad", "Actualizado",
}

// InventoryExporter implementa ports.InventoryExporter con excelize.
type InventoryExporter struct{}

// NewInventoryExporter construye el exportador.
func NewInventoryExporter() *InventoryExporter { return &InventoryExporter{} }

// ExportInventory escribe una fila por lote+ubicación y devuelve los bytes del libro.
func (e *InventoryExporter) ExportInventory(_ context.Context, rows []*entity.InventoryView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(Sheet, "A1", &Headers); err != nil {
		return nil, fmt.Errorf("excel: encabezados: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	if err := f.SetCellStyle(Sheet, "A1", "I1", bold); err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		expires := ""
		if r.ExpiresAt != nil {
			expires = r.ExpiresAt.Format("2006-01-02")
		}
		values := []any{
			r.SubWarehouseCode, r.LocationCode, r.SKU, r.ProductName, r.LotCode, r.LotStatus,
			expires, r.Quantity.InexactFloat64(), r.UpdatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(Sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
