package repository

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// ReceptionRepository define el puerto de persistencia para recepciones.
type ReceptionRepository interface {
	Create(ctx context.Context, r *entity.Reception) error
	GetByID(ctx context.Context, id string) (*entity.Reception, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Reception, error)
}
