package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
	"github.com/jhoicas/wms-api/pkg/logger"
)

// MovementUseCase registra movimientos de inventario de forma transaccional
// (IN, OUT, ADJUSTMENT, TRANSFER) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	lotRepo      repository.LotRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
	notifier     ports.Notifier
	log          *logger.Logger
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
	notifier ports.Notifier,
	log *logger.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		lotRepo:      lotRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
		notifier:     notifier,
		log:          log.Named("movements"),
		now:          time.Now,
	}
}

// Register valida el movimiento, inicia una transacción, bloquea las filas afectadas,
// aplica la lógica según tipo y guarda el registro del movimiento.
func (uc *MovementUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if err := validateMovement(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	lot, err := uc.lotRepo.GetByID(ctx, in.LotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	if lot.ProductID != product.ID {
		return nil, domain.ErrInvalidInput
	}
	// Un lote en cuarentena, bloqueado o vencido no puede despacharse.
	if in.Type == entity.MovementTypeOUT && lot.Status != entity.LotStatusAvailable {
		return nil, domain.ErrConflict
	}
	for _, id := range []string{in.FromLocationID, in.ToLocationID} {
		if id == "" {
			continue
		}
		loc, err := uc.locationRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := uc.now()
	mov := &entity.Movement{
		ID:             uuid.New().String(),
		Type:           in.Type,
		ProductID:      product.ID,
		LotID:          lot.ID,
		FromLocationID: strPtr(in.FromLocationID),
		ToLocationID:   strPtr(in.ToLocationID),
		Quantity:       in.Quantity,
		Reason:         in.Reason,
		CreatedBy:      userID,
		CreatedAt:      now,
	}

	var alert *entity.Alert
	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		removed, err := applyMovement(ctx, repos, mov, now)
		if err != nil {
			return err
		}
		if err := repos.Movements.Create(ctx, mov); err != nil {
			return err
		}
		if removed.IsPositive() {
			alert, err = checkLowStock(ctx, repos, product, removed, now)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	notifyAll(ctx, uc.notifier, uc.log, alert)
	uc.log.Info().Str("movement_id", mov.ID).Str("type", mov.Type).Str("product_id", mov.ProductID).
		Str("quantity", mov.Quantity.String()).Str("user_id", userID).Msg("movimiento registrado")
	return toMovementResponse(mov), nil
}

// List consulta el kardex de movimientos.
func (uc *MovementUseCase) List(ctx context.Context, f repository.MovementFilter, page dto.PageRequest) (*dto.ListResponse[dto.MovementResponse], error) {
	page.Normalize()
	f.Limit, f.Offset = page.Limit, page.Offset
	list, err := uc.movementRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return dto.NewList(items, page), nil
}

func validateMovement(in dto.RegisterMovementRequest) error {
	switch in.Type {
	case entity.MovementTypeIN:
		if in.ToLocationID == "" || in.FromLocationID != "" || !in.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeOUT:
		if in.FromLocationID == "" || in.ToLocationID != "" || !in.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTRANSFER:
		if in.FromLocationID == "" || in.ToLocationID == "" || in.FromLocationID == in.ToLocationID || !in.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if in.ToLocationID == "" || in.FromLocationID != "" || in.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// applyMovement actualiza existencias según el tipo y devuelve las unidades que salieron
// del producto (0 en entradas y traslados, que no cambian el total).
func applyMovement(ctx context.Context, repos TxRepos, mov *entity.Movement, now time.Time) (decimal.Decimal, error) {
	switch mov.Type {
	case entity.MovementTypeIN:
		return decimal.Zero, applyDelta(ctx, repos, mov.ProductID, mov.LotID, *mov.ToLocationID, mov.Quantity, now)
	case entity.MovementTypeOUT:
		return mov.Quantity, applyDelta(ctx, repos, mov.ProductID, mov.LotID, *mov.FromLocationID, mov.Quantity.Neg(), now)
	case entity.MovementTypeADJUSTMENT:
		removed := decimal.Zero
		if mov.Quantity.IsNegative() {
			removed = mov.Quantity.Neg()
		}
		return removed, applyDelta(ctx, repos, mov.ProductID, mov.LotID, *mov.ToLocationID, mov.Quantity, now)
	case entity.MovementTypeTRANSFER:
		return decimal.Zero, transfer(ctx, repos, mov.ProductID, mov.LotID, *mov.FromLocationID, *mov.ToLocationID, mov.Quantity, now)
	}
	return decimal.Zero, domain.ErrInvalidInput
}

// transfer resta en origen y suma en destino en la misma transacción. Las filas se bloquean
// siempre en el mismo orden (por ID de ubicación) para evitar interbloqueos entre traslados opuestos.
func transfer(ctx context.Context, repos TxRepos, productID, lotID, from, to string, qty decimal.Decimal, now time.Time) error {
	steps := []struct {
		location string
		delta    decimal.Decimal
	}{{from, qty.Neg()}, {to, qty}}
	if to < from {
		steps[0], steps[1] = steps[1], steps[0]
	}
	for _, s := range steps {
		if err := applyDelta(ctx, repos, productID, lotID, s.location, s.delta, now); err != nil {
			return err
		}
	}
	return nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:             m.ID,
		Type:           m.Type,
		ProductID:      m.ProductID,
		LotID:          m.LotID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Quantity:       m.Quantity,
		Reason:         m.Reason,
		ReferenceID:    m.ReferenceID,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
}
