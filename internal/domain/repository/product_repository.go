package repository

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// List busca por SKU, código de barras o nombre cuando query no está vacío.
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
