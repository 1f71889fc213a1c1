package repository

import (
	"context"
	"time"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes. Usable con pool o dentro de tx.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.Lot) error
	GetByID(ctx context.Context, id string) (*entity.Lot, error)
	GetByProductAndCode(ctx context.Context, productID, code string) (*entity.Lot, error)
	Update(ctx context.Context, lot *entity.Lot) error
	List(ctx context.Context, productID string, limit, offset int) ([]*entity.Lot, error)
	// ListExpiring lista lotes no vencidos con fecha de vencimiento anterior a before.
	ListExpiring(ctx context.Context, before time.Time) ([]*entity.Lot, error)
	Delete(ctx context.Context, id string) error
}
