package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSubWarehouseRequest entrada para crear un sub-almacén.
type CreateSubWarehouseRequest struct {
	Code           string           `json:"code" validate:"required,min=1,max=50"`
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	Description    string           `json:"description" validate:"max=500"`
	MinTemperature *decimal.Decimal `json:"min_temperature"`
	MaxTemperature *decimal.Decimal `json:"max_temperature"`
}

// UpdateSubWarehouseRequest entrada para actualizar un sub-almacén.
type UpdateSubWarehouseRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description" validate:"omitempty,max=500"`
	MinTemperature *decimal.Decimal `json:"min_temperature"`
	MaxTemperature *decimal.Decimal `json:"max_temperature"`
	Active         *bool            `json:"active"`
}

// SubWarehouseResponse salida de un sub-almacén.
type SubWarehouseResponse struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	MinTemperature *decimal.Decimal `json:"min_temperature"`
	MaxTemperature *decimal.Decimal `json:"max_temperature"`
	Active         bool             `json:"active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	SubWarehouseID string          `json:"sub_warehouse_id" validate:"required,uuid"`
	Code           string          `json:"code" validate:"required,min=1,max=50"`
	Zone           string          `json:"zone" validate:"max=50"`
	Type           string          `json:"type" validate:"required,oneof=rack floor cold dock"`
	Capacity       decimal.Decimal `json:"capacity" validate:"gte=0"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
type UpdateLocationRequest struct {
	Zone     *string          `json:"zone" validate:"omitempty,max=50"`
	Type     *string          `json:"type" validate:"omitempty,oneof=rack floor cold dock"`
	Capacity *decimal.Decimal `json:"capacity" validate:"omitempty,gte=0"`
	Active   *bool            `json:"active"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID             string          `json:"id"`
	SubWarehouseID string          `json:"sub_warehouse_id"`
	Code           string          `json:"code"`
	Zone           string          `json:"zone"`
	Type           string          `json:"type"`
	Capacity       decimal.Decimal `json:"capacity"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode           string          `json:"barcode" validate:"max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	Unit              string          `json:"unit" validate:"max=20"`
	MinStock          decimal.Decimal `json:"min_stock" validate:"gte=0"`
	RequiresColdChain bool            `json:"requires_cold_chain"`
}

// UpdateProductRequest entrada para actualizar un producto (el stock se maneja vía movimientos).
type UpdateProductRequest struct {
	Barcode           *string          `json:"barcode" validate:"omitempty,max=100"`
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	Unit              *string          `json:"unit" validate:"omitempty,max=20"`
	MinStock          *decimal.Decimal `json:"min_stock" validate:"omitempty,gte=0"`
	RequiresColdChain *bool            `json:"requires_cold_chain"`
	Active            *bool            `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Barcode           string          `json:"barcode"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Unit              string          `json:"unit"`
	MinStock          decimal.Decimal `json:"min_stock"`
	RequiresColdChain bool            `json:"requires_cold_chain"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CreateLotRequest entrada para crear un lote.
type CreateLotRequest struct {
	ProductID      string `json:"product_id" validate:"required,uuid"`
	Code           string `json:"code" validate:"required,min=1,max=100"`
	ManufacturedAt *Date  `json:"manufactured_at"`
	ExpiresAt      *Date  `json:"expires_at"`
}

// UpdateLotRequest entrada para actualizar un lote.
type UpdateLotRequest struct {
	ManufacturedAt *Date   `json:"manufactured_at"`
	ExpiresAt      *Date   `json:"expires_at"`
	Status         *string `json:"status" validate:"omitempty,oneof=available quarantine blocked expired"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"product_id"`
	Code           string     `json:"code"`
	ManufacturedAt *time.Time `json:"manufactured_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
