package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es la existencia de un lote en una ubicación (única por lote+ubicación).
type InventoryRecord struct {
	ID         string
	ProductID  string
	LotID      string
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}

// InventoryView es un registro de inventario con los datos descriptivos para listados y exportes.
type InventoryView struct {
	InventoryRecord
	SKU              string
	ProductName      string
	LotCode          string
	LotStatus        string
	ExpiresAt        *time.Time
	LocationCode     string
	SubWarehouseCode string
}

// StockLevel existencia total de un producto comparada con su mínimo.
type StockLevel struct {
	ProductID   string
	SKU         string
	ProductName string
	Quantity    decimal.Decimal
	MinStock    decimal.Decimal
}
