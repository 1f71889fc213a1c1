package repository

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// TaskFilter filtros para listar tareas.
type TaskFilter struct {
	Status     string
	Type       string
	AssignedTo string
	Limit      int
	Offset     int
}

// TaskRepository define el puerto de persistencia para tareas.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	List(ctx context.Context, f TaskFilter) ([]*entity.Task, error)
	Delete(ctx context.Context, id string) error
}
