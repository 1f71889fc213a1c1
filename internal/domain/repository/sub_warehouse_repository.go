package repository

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// SubWarehouseRepository define el puerto de persistencia para sub-almacenes.
type SubWarehouseRepository interface {
	Create(ctx context.Context, sw *entity.SubWarehouse) error
	GetByID(ctx context.Context, id string) (*entity.SubWarehouse, error)
	Update(ctx context.Context, sw *entity.SubWarehouse) error
	List(ctx context.Context, limit, offset int) ([]*entity.SubWarehouse, error)
	Delete(ctx context.Context, id string) error
}
