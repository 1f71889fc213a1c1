package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TemperatureReading lectura de temperatura de un sub-almacén.
type TemperatureReading struct {
	ID             string
	SubWarehouseID string
	Temperature    decimal.Decimal
	OutOfRange     bool
	RecordedBy     string
	RecordedAt     time.Time
}
