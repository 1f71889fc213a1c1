package repository

import (
	"context"
	"time"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// TemperatureFilter rango opcional de consulta de lecturas.
type TemperatureFilter struct {
	SubWarehouseID string
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// TemperatureReadingRepository define el puerto de persistencia para lecturas de temperatura.
type TemperatureReadingRepository interface {
	Create(ctx context.Context, r *entity.TemperatureReading) error
	List(ctx context.Context, f TemperatureFilter) ([]*entity.TemperatureReading, error)
}
