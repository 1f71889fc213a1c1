package entity

import "time"

// Tipos de tarea operativa.
const (
	TaskTypePicking       = "picking"
	TaskTypePacking       = "packing"
	TaskTypePutaway       = "putaway"
	TaskTypeReplenishment = "replenishment"
	TaskTypeCounting      = "counting"
)

// Estados de tarea.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// Prioridades de tarea.
const (
	TaskPriorityLow    = "low"
	TaskPriorityNormal = "normal"
	TaskPriorityHigh   = "high"
)

// Task es una tarea asignable a un operario.
type Task struct {
	ID          string
	Code        string
	Type        string
	Status      string
	Priority    string
	Description string
	AssignedTo  *string
	CreatedBy   string
	DueAt       *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
