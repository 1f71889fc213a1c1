package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de reposición.
const (
	ReplenishmentStatusPending   = "pending"
	ReplenishmentStatusCompleted = "completed"
	ReplenishmentStatusCancelled = "cancelled"
)

// Replenishment solicita mover un lote desde almacenamiento hacia una ubicación de picking.
type Replenishment struct {
	ID             string
	Code           string
	ProductID      string
	LotID          string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
	Status         string
	RequestedBy    string
	CompletedBy    *string
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
