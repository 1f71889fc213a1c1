package repository

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// ReplenishmentRepository define el puerto de persistencia para reposiciones.
type ReplenishmentRepository interface {
	Create(ctx context.Context, r *entity.Replenishment) error
	GetByID(ctx context.Context, id string) (*entity.Replenishment, error)
	// GetForUpdate bloquea la reposición para completar o cancelar sin carreras.
	GetForUpdate(ctx context.Context, id string) (*entity.Replenishment, error)
	Update(ctx context.Context, r *entity.Replenishment) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Replenishment, error)
}
