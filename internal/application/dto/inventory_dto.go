package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
// IN: to_location_id; OUT: from_location_id; TRANSFER: ambos; ADJUSTMENT: to_location_id con cantidad con signo.
type RegisterMovementRequest struct {
	Type           string          `json:"type" validate:"required,oneof=IN OUT TRANSFER ADJUSTMENT"`
	ProductID      string          `json:"product_id" validate:"required,uuid"`
	LotID          string          `json:"lot_id" validate:"required,uuid"`
	FromLocationID string          `json:"from_location_id" validate:"omitempty,uuid"`
	ToLocationID   string          `json:"to_location_id" validate:"omitempty,uuid"`
	Quantity       decimal.Decimal `json:"quantity" validate:"required"`
	Reason         string          `json:"reason" validate:"max=500"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	ProductID      string          `json:"product_id"`
	LotID          string          `json:"lot_id"`
	FromLocationID *string         `json:"from_location_id"`
	ToLocationID   *string         `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Reason         string          `json:"reason"`
	ReferenceID    *string         `json:"reference_id"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// InventoryItemResponse existencia de un lote en una ubicación.
type InventoryItemResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	SKU              string          `json:"sku"`
	ProductName      string          `json:"product_name"`
	LotID            string          `json:"lot_id"`
	LotCode          string          `json:"lot_code"`
	LotStatus        string          `json:"lot_status"`
	ExpiresAt        *time.Time      `json:"expires_at"`
	LocationID       string          `json:"location_id"`
	LocationCode     string          `json:"location_code"`
	SubWarehouseCode string          `json:"sub_warehouse_code"`
	Quantity         decimal.Decimal `json:"quantity"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LowStockResponse producto por debajo de su mínimo.
type LowStockResponse struct {
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Missing     decimal.Decimal `json:"missing"`
}

// CreateReceptionRequest body para POST /api/receptions.
type CreateReceptionRequest struct {
	SupplierName   string           `json:"supplier_name" validate:"required,min=1,max=200"`
	DocumentRef    string           `json:"document_ref" validate:"max=100"`
	ProductID      string           `json:"product_id" validate:"required,uuid"`
	LotCode        string           `json:"lot_code" validate:"required,min=1,max=100"`
	ManufacturedAt *Date            `json:"manufactured_at"`
	ExpiresAt      *Date            `json:"expires_at"`
	LocationID     string           `json:"location_id" validate:"required,uuid"`
	Quantity       decimal.Decimal  `json:"quantity" validate:"gt=0"`
	Temperature    *decimal.Decimal `json:"temperature"`
	Notes          string           `json:"notes" validate:"max=1000"`
}

// ReceptionResponse salida de una recepción.
type ReceptionResponse struct {
	ID           string           `json:"id"`
	Code         string           `json:"code"`
	SupplierName string           `json:"supplier_name"`
	DocumentRef  string           `json:"document_ref"`
	ProductID    string           `json:"product_id"`
	LotID        string           `json:"lot_id"`
	LocationID   string           `json:"location_id"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Temperature  *decimal.Decimal `json:"temperature"`
	Quarantined  bool             `json:"quarantined"`
	ReceivedBy   string           `json:"received_by"`
	ReceivedAt   time.Time        `json:"received_at"`
	Notes        string           `json:"notes"`
}

// CreateReplenishmentRequest body para POST /api/replenishments.
type CreateReplenishmentRequest struct {
	ProductID      string          `json:"product_id" validate:"required,uuid"`
	LotID          string          `json:"lot_id" validate:"required,uuid"`
	FromLocationID string          `json:"from_location_id" validate:"required,uuid"`
	ToLocationID   string          `json:"to_location_id" validate:"required,uuid,nefield=FromLocationID"`
	Quantity       decimal.Decimal `json:"quantity" validate:"gt=0"`
}

// ReplenishmentResponse salida de una reposición.
type ReplenishmentResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	ProductID      string          `json:"product_id"`
	LotID          string          `json:"lot_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Status         string          `json:"status"`
	RequestedBy    string          `json:"requested_by"`
	CompletedBy    *string         `json:"completed_by"`
	CompletedAt    *time.Time      `json:"completed_at"`
	CreatedAt      time.Time       `json:"created_at"`
}

// RecordTemperatureRequest body para POST /api/temperature-readings.
type RecordTemperatureRequest struct {
	SubWarehouseID string          `json:"sub_warehouse_id" validate:"required,uuid"`
	Temperature    decimal.Decimal `json:"temperature"`
}

// TemperatureReadingResponse salida de una lectura.
type TemperatureReadingResponse struct {
	ID             string          `json:"id"`
	SubWarehouseID string          `json:"sub_warehouse_id"`
	Temperature    decimal.Decimal `json:"temperature"`
	OutOfRange     bool            `json:"out_of_range"`
	RecordedBy     string          `json:"recorded_by"`
	RecordedAt     time.Time       `json:"recorded_at"`
	Alert          *AlertResponse  `json:"alert,omitempty"`
}

// AlertResponse salida de una alerta.
type AlertResponse struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Severity       string     `json:"severity"`
	Message        string     `json:"message"`
	SubWarehouseID *string    `json:"sub_warehouse_id"`
	ProductID      *string    `json:"product_id"`
	LotID          *string    `json:"lot_id"`
	Resolved       bool       `json:"resolved"`
	ResolvedBy     *string    `json:"resolved_by"`
	ResolvedAt     *time.Time `json:"resolved_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ExpiryScanResponse resultado de la revisión de vencimientos.
type ExpiryScanResponse struct {
	Days    int             `json:"days"`
	Checked int             `json:"checked"`
	Skipped int             `json:"skipped"`
	Alerts  []AlertResponse `json:"alerts"`
}
