package repository

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// LocationFilter filtros para listar ubicaciones.
type LocationFilter struct {
	SubWarehouseID string
	Zone           string
	Limit          int
	Offset         int
}

// LocationRepository define el puerto de persistencia para ubicaciones.
type LocationRepository interface {
	Create(ctx context.Context, loc *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Update(ctx context.Context, loc *entity.Location) error
	List(ctx context.Context, f LocationFilter) ([]*entity.Location, error)
	Delete(ctx context.Context, id string) error
}
