package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// LotUseCase casos de uso de lotes: CRUD, próximos a vencer y etiqueta PDF.
type LotUseCase struct {
	repo        repository.LotRepository
	productRepo repository.ProductRepository
	labels      ports.LabelGenerator
	now         func() time.Time
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository, productRepo repository.ProductRepository, labels ports.LabelGenerator) *LotUseCase {
	return &LotUseCase{repo: repo, productRepo: productRepo, labels: labels, now: time.Now}
}

// Create registra un lote de un producto existente. Código repetido para el producto -> ErrDuplicate.
func (uc *LotUseCase) Create(ctx context.Context, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByProductAndCode(ctx, product.ID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	mfg, exp := in.ManufacturedAt.Ptr(), in.ExpiresAt.Ptr()
	if mfg != nil && exp != nil && exp.Before(*mfg) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	lot := &entity.Lot{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		Code:           code,
		ManufacturedAt: mfg,
		ExpiresAt:      exp,
		Status:         entity.LotStatusAvailable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// GetByID obtiene un lote.
func (uc *LotUseCase) GetByID(ctx context.Context, id string) (*dto.LotResponse, error) {
	lot, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// Update cambia fechas o estado (cuarentena, bloqueo, liberación).
func (uc *LotUseCase) Update(ctx context.Context, id string, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ManufacturedAt != nil {
		lot.ManufacturedAt = in.ManufacturedAt.Ptr()
	}
	if in.ExpiresAt != nil {
		lot.ExpiresAt = in.ExpiresAt.Ptr()
	}
	if lot.ManufacturedAt != nil && lot.ExpiresAt != nil && lot.ExpiresAt.Before(*lot.ManufacturedAt) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil {
		lot.Status = *in.Status
	}
	lot.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// List lista lotes, opcionalmente de un producto.
func (uc *LotUseCase) List(ctx context.Context, productID string, page dto.PageRequest) (*dto.ListResponse[dto.LotResponse], error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(mapList(list, toLotResponse), page), nil
}

// Expiring lista lotes que vencen dentro de los próximos days días (30 por defecto).
func (uc *LotUseCase) Expiring(ctx context.Context, days int) ([]dto.LotResponse, error) {
	if days <= 0 {
		days = 30
	}
	list, err := uc.repo.ListExpiring(ctx, uc.now().AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	return mapList(list, toLotResponse), nil
}

// Delete elimina un lote sin existencias ni movimientos.
func (uc *LotUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Label genera la etiqueta PDF del lote. Devuelve el nombre de archivo sugerido.
func (uc *LotUseCase) Label(ctx context.Context, id string) ([]byte, string, error) {
	lot, err := uc.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	product, err := uc.productRepo.GetByID(ctx, lot.ProductID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.labels.LotLabel(ctx, ports.LotLabel{
		LotCode:     lot.Code,
		SKU:         product.SKU,
		ProductName: product.Name,
		Status:      lot.Status,
		ExpiresAt:   lot.ExpiresAt,
	})
	if err != nil {
		return nil, "", err
	}
	return pdf, "lote-" + product.SKU + "-" + lot.Code + ".pdf", nil
}

func (uc *LotUseCase) get(ctx context.Context, id string) (*entity.Lot, error) {
	lot, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return lot, nil
}
