package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reception registra la entrada de mercancía de un proveedor a una ubicación.
type Reception struct {
	ID           string
	Code         string
	SupplierName string
	DocumentRef  string
	ProductID    string
	LotID        string
	LocationID   string
	Quantity     decimal.Decimal
	Temperature  *decimal.Decimal
	ReceivedBy   string
	ReceivedAt   time.Time
	Notes        string
}
