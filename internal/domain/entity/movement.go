package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre ubicaciones
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (delta con signo)
)

// Movement representa un movimiento de inventario de un lote.
// IN usa ToLocationID, OUT usa FromLocationID, TRANSFER ambos; ADJUSTMENT usa ToLocationID.
type Movement struct {
	ID             string
	Type           string
	ProductID      string
	LotID          string
	FromLocationID *string
	ToLocationID   *string
	Quantity       decimal.Decimal
	Reason         string
	ReferenceID    *string // recepción o reposición que originó el movimiento
	CreatedBy      string
	CreatedAt      time.Time
}
