package repository

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// MovementFilter filtros para el kardex de movimientos.
type MovementFilter struct {
	ProductID  string
	LotID      string
	LocationID string
	Type       string
	Limit      int
	Offset     int
}

// MovementRepository define el puerto de persistencia de movimientos (solo inserción y consulta).
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	List(ctx context.Context, f MovementFilter) ([]*entity.Movement, error)
}
