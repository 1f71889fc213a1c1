package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/inventory"
	"github.com/jhoicas/wms-api/internal/domain/repository"
	"github.com/jhoicas/wms-api/pkg/idgen"
	"github.com/jhoicas/wms-api/pkg/logger"
)

// ReceptionUseCase registra entradas de proveedor: lote, existencia, movimiento IN y recepción
// en una sola transacción, con control de cadena de frío.
type ReceptionUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	locationRepo  repository.LocationRepository
	warehouseRepo repository.SubWarehouseRepository
	receptionRepo repository.ReceptionRepository
	codes         ports.CodeGenerator
	notifier      ports.Notifier
	log           *logger.Logger
	now           func() time.Time
}

// NewReceptionUseCase construye el caso de uso.
func NewReceptionUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	warehouseRepo repository.SubWarehouseRepository,
	receptionRepo repository.ReceptionRepository,
	codes ports.CodeGenerator,
	notifier ports.Notifier,
	log *logger.Logger,
) *ReceptionUseCase {
	return &ReceptionUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		locationRepo:  locationRepo,
		warehouseRepo: warehouseRepo,
		receptionRepo: receptionRepo,
		codes:         codes,
		notifier:      notifier,
		log:           log.Named("receptions"),
		now:           time.Now,
	}
}

// Create registra la recepción. Si el producto exige cadena de frío y la temperatura de llegada
// está fuera del rango del sub-almacén destino, el lote queda en cuarentena y se genera alerta.
func (uc *ReceptionUseCase) Create(ctx context.Context, userID string, in dto.CreateReceptionRequest) (*dto.ReceptionResponse, error) {
	lotCode := strings.TrimSpace(in.LotCode)
	if lotCode == "" || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	mfg, exp := in.ManufacturedAt.Ptr(), in.ExpiresAt.Ptr()
	if mfg != nil && exp != nil && exp.Before(*mfg) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Active {
		return nil, domain.ErrConflict
	}
	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	sw, err := uc.warehouseRepo.GetByID(ctx, loc.SubWarehouseID)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, domain.ErrNotFound
	}

	var check inventory.TemperatureCheck
	if product.RequiresColdChain && sw.HasTemperatureRange() {
		if in.Temperature == nil {
			return nil, domain.ErrInvalidInput
		}
		check = inventory.EvaluateTemperature(*in.Temperature, sw.MinTemperature, sw.MaxTemperature)
	}

	now := uc.now()
	rec := &entity.Reception{
		ID:           uuid.New().String(),
		Code:         uc.codes.Code(idgen.PrefixReception),
		SupplierName: in.SupplierName,
		DocumentRef:  in.DocumentRef,
		ProductID:    product.ID,
		LocationID:   loc.ID,
		Quantity:     in.Quantity,
		Temperature:  in.Temperature,
		ReceivedBy:   userID,
		ReceivedAt:   now,
		Notes:        in.Notes,
	}
	var alert *entity.Alert
	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		lot, err := repos.Lots.GetByProductAndCode(ctx, product.ID, lotCode)
		if err != nil {
			return err
		}
		if lot == nil {
			lot = &entity.Lot{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				Code:           lotCode,
				ManufacturedAt: mfg,
				ExpiresAt:      exp,
				Status:         entity.LotStatusAvailable,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if check.OutOfRange {
				lot.Status = entity.LotStatusQuarantine
			}
			if err := repos.Lots.Create(ctx, lot); err != nil {
				return err
			}
		} else if check.OutOfRange && lot.Status != entity.LotStatusQuarantine {
			lot.Status = entity.LotStatusQuarantine
			lot.UpdatedAt = now
			if err := repos.Lots.Update(ctx, lot); err != nil {
				return err
			}
		}
		rec.LotID = lot.ID

		if err := applyDelta(ctx, repos, product.ID, lot.ID, loc.ID, in.Quantity, now); err != nil {
			return err
		}
		if err := repos.Receptions.Create(ctx, rec); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:           uuid.New().String(),
			Type:         entity.MovementTypeIN,
			ProductID:    product.ID,
			LotID:        lot.ID,
			ToLocationID: &rec.LocationID,
			Quantity:     in.Quantity,
			Reason:       "Recepción " + rec.Code,
			ReferenceID:  &rec.ID,
			CreatedBy:    userID,
			CreatedAt:    now,
		}
		if err := repos.Movements.Create(ctx, mov); err != nil {
			return err
		}
		if check.OutOfRange {
			swID, productID := sw.ID, product.ID
			alert = &entity.Alert{
				ID:       uuid.New().String(),
				Type:     entity.AlertTypeTemperature,
				Severity: check.Severity,
				Message: fmt.Sprintf("Recepción %s: lote %s de %s llegó a %s °C, fuera del rango de %s; lote en cuarentena",
					rec.Code, lot.Code, product.SKU, in.Temperature.String(), sw.Name),
				SubWarehouseID: &swID,
				ProductID:      &productID,
				CreatedAt:      now,
			}
			return repos.Alerts.Create(ctx, alert)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	notifyAll(ctx, uc.notifier, uc.log, alert)
	uc.log.Info().Str("reception", rec.Code).Str("product_id", rec.ProductID).Str("lot_id", rec.LotID).
		Bool("quarantined", check.OutOfRange).Msg("recepción registrada")
	return toReceptionResponse(rec, check.OutOfRange), nil
}

// GetByID obtiene una recepción.
func (uc *ReceptionUseCase) GetByID(ctx context.Context, id string) (*dto.ReceptionResponse, error) {
	rec, err := uc.receptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toReceptionResponse(rec, false), nil
}

// List lista recepciones, las más recientes primero.
func (uc *ReceptionUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.ReceptionResponse], error) {
	page.Normalize()
	list, err := uc.receptionRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceptionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceptionResponse(r, false))
	}
	return dto.NewList(items, page), nil
}

func toReceptionResponse(r *entity.Reception, quarantined bool) *dto.ReceptionResponse {
	return &dto.ReceptionResponse{
		ID:           r.ID,
		Code:         r.Code,
		SupplierName: r.SupplierName,
		DocumentRef:  r.DocumentRef,
		ProductID:    r.ProductID,
		LotID:        r.LotID,
		LocationID:   r.LocationID,
		Quantity:     r.Quantity,
		Temperature:  r.Temperature,
		Quarantined:  quarantined,
		ReceivedBy:   r.ReceivedBy,
		ReceivedAt:   r.ReceivedAt,
		Notes:        r.Notes,
	}
}
