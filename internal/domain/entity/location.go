package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ubicación.
const (
	LocationTypeRack  = "rack"
	LocationTypeFloor = "floor"
	LocationTypeCold  = "cold"
	LocationTypeDock  = "dock"
)

// Location es una posición de almacenamiento dentro de un sub-almacén.
type Location struct {
	ID             string
	SubWarehouseID string
	Code           string // único, es el que se escanea
	Zone           string
	Type           string
	Capacity       decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
