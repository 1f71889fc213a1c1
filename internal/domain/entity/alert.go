package entity

import "time"

// Tipos de alerta.
const (
	AlertTypeTemperature = "temperature"
	AlertTypeLowStock    = "low_stock"
	AlertTypeExpiry      = "expiry"
)

// Severidades de alerta.
const (
	AlertSeverityInfo     = "info"
	AlertSeverityWarning  = "warning"
	AlertSeverityCritical = "critical"
)

// Alert es un aviso operativo (temperatura fuera de rango, stock bajo, vencimiento).
type Alert struct {
	ID             string
	Type           string
	Severity       string
	Message        string
	SubWarehouseID *string
	ProductID      *string
	LotID          *string
	Resolved       bool
	ResolvedBy     *string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
}
