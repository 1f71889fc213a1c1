package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU del almacén. El stock vive en InventoryRecord por lote y ubicación.
type Product struct {
	ID                string
	SKU               string // código único
	Barcode           string
	Name              string
	Description       string
	Unit              string // unidad de medida (und, kg, caja)
	MinStock          decimal.Decimal
	RequiresColdChain bool
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
