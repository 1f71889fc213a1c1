package entity

import "time"

// Estados de lote.
const (
	LotStatusAvailable  = "available"
	LotStatusQuarantine = "quarantine"
	LotStatusBlocked    = "blocked"
	LotStatusExpired    = "expired"
)

// Lot agrupa unidades de un producto con los mismos datos de fabricación y vencimiento.
type Lot struct {
	ID             string
	ProductID      string
	Code           string // único por producto
	ManufacturedAt *time.Time
	ExpiresAt      *time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
