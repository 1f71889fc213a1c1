package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubWarehouse es un área física del almacén (cámara fría, zona seca, muelle)
// con su propio rango de temperatura opcional.
type SubWarehouse struct {
	ID             string
	Code           string
	Name           string
	Description    string
	MinTemperature *decimal.Decimal // °C; nil = sin límite inferior
	MaxTemperature *decimal.Decimal // °C; nil = sin límite superior
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasTemperatureRange informa si el sub-almacén controla temperatura.
func (s *SubWarehouse) HasTemperatureRange() bool {
	return s.MinTemperature != nil || s.MaxTemperature != nil
}
