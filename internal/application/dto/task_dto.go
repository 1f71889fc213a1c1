package dto

import "time"

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	Type        string  `json:"type" validate:"required,oneof=picking packing putaway replenishment counting"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low normal high"`
	Description string  `json:"description" validate:"max=1000"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,uuid"`
	DueAt       *Date   `json:"due_at"`
}

// UpdateTaskRequest entrada para editar una tarea (supervisión).
type UpdateTaskRequest struct {
	Priority    *string `json:"priority" validate:"omitempty,oneof=low normal high"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	DueAt       *Date   `json:"due_at"`
}

// AssignTaskRequest asigna la tarea a un usuario.
type AssignTaskRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// UpdateTaskStatusRequest cambia el estado de una tarea.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Description string     `json:"description"`
	AssignedTo  *string    `json:"assigned_to"`
	CreatedBy   string     `json:"created_by"`
	DueAt       *time.Time `json:"due_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
