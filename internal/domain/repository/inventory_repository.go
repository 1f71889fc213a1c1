package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// InventoryFilter filtros para consultar existencias.
type InventoryFilter struct {
	ProductID      string
	LotID          string
	LocationID     string
	SubWarehouseID string
	Limit          int // 0 = sin límite (exportes)
	Offset         int
}

// InventoryRepository define el puerto para existencias por lote y ubicación.
// LockForUpdate y SetQuantity se usan dentro de transacciones del motor de movimientos.
type InventoryRepository interface {
	// LockForUpdate crea la fila lote+ubicación con cantidad 0 si no existe y la bloquea
	// (SELECT FOR UPDATE). La fila siempre existe antes del bloqueo.
	LockForUpdate(ctx context.Context, productID, lotID, locationID string) (*entity.InventoryRecord, error)
	// SetQuantity guarda la cantidad de una fila bloqueada por LockForUpdate.
	SetQuantity(ctx context.Context, rec *entity.InventoryRecord) error
	TotalByProduct(ctx context.Context, productID string) (decimal.Decimal, error)
	List(ctx context.Context, f InventoryFilter) ([]*entity.InventoryView, error)
	// BelowMinimum lista productos activos cuya existencia total es menor al mínimo.
	BelowMinimum(ctx context.Context) ([]*entity.StockLevel, error)
	CountByLocation(ctx context.Context, locationID string) (int, error)
}
