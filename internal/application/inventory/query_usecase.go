package inventory

import (
	"context"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// QueryUseCase consultas de existencias: listado, stock bajo y exporte.
type QueryUseCase struct {
	repo     repository.InventoryRepository
	exporter ports.InventoryExporter
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repo repository.InventoryRepository, exporter ports.InventoryExporter) *QueryUseCase {
	return &QueryUseCase{repo: repo, exporter: exporter}
}

// List lista existencias por lote y ubicación con filtros.
func (uc *QueryUseCase) List(ctx context.Context, f repository.InventoryFilter, page dto.PageRequest) (*dto.ListResponse[dto.InventoryItemResponse], error) {
	page.Normalize()
	f.Limit, f.Offset = page.Limit, page.Offset
	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toInventoryItem(r))
	}
	return dto.NewList(items, page), nil
}

// LowStock lista productos con existencia total menor al mínimo y cuánto falta.
func (uc *QueryUseCase) LowStock(ctx context.Context) ([]dto.LowStockResponse, error) {
	levels, err := uc.repo.BelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.LowStockResponse{
			ProductID:   l.ProductID,
			SKU:         l.SKU,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			MinStock:    l.MinStock,
			Missing:     l.MinStock.Sub(l.Quantity),
		})
	}
	return out, nil
}

// Export genera el archivo de existencias con los filtros dados (sin paginación).
func (uc *QueryUseCase) Export(ctx context.Context, f repository.InventoryFilter) ([]byte, error) {
	f.Limit, f.Offset = 0, 0
	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportInventory(ctx, rows)
}

func toInventoryItem(r *entity.InventoryView) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:               r.ID,
		ProductID:        r.ProductID,
		SKU:              r.SKU,
		ProductName:      r.ProductName,
		LotID:            r.LotID,
		LotCode:          r.LotCode,
		LotStatus:        r.LotStatus,
		ExpiresAt:        r.ExpiresAt,
		LocationID:       r.LocationID,
		LocationCode:     r.LocationCode,
		SubWarehouseCode: r.SubWarehouseCode,
		Quantity:         r.Quantity,
		UpdatedAt:        r.UpdatedAt,
	}
}
