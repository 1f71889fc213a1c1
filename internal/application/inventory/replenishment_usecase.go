package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
	"github.com/jhoicas/wms-api/pkg/idgen"
	"github.com/jhoicas/wms-api/pkg/logger"
)

// ReplenishmentUseCase gestiona solicitudes de reposición desde almacenamiento hacia picking.
// Completar una reposición ejecuta el traslado en la misma transacción que cambia su estado.
type ReplenishmentUseCase struct {
	txRunner     TxRunner
	repo         repository.ReplenishmentRepository
	lotRepo      repository.LotRepository
	locationRepo repository.LocationRepository
	codes        ports.CodeGenerator
	log          *logger.Logger
	now          func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	txRunner TxRunner,
	repo repository.ReplenishmentRepository,
	lotRepo repository.LotRepository,
	locationRepo repository.LocationRepository,
	codes ports.CodeGenerator,
	log *logger.Logger,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		txRunner:     txRunner,
		repo:         repo,
		lotRepo:      lotRepo,
		locationRepo: locationRepo,
		codes:        codes,
		log:          log.Named("replenishments"),
		now:          time.Now,
	}
}

// Create registra una reposición pendiente.
func (uc *ReplenishmentUseCase) Create(ctx context.Context, userID string, in dto.CreateReplenishmentRequest) (*dto.ReplenishmentResponse, error) {
	if in.FromLocationID == in.ToLocationID || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	lot, err := uc.lotRepo.GetByID(ctx, in.LotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	if lot.ProductID != in.ProductID {
		return nil, domain.ErrInvalidInput
	}
	for _, id := range []string{in.FromLocationID, in.ToLocationID} {
		loc, err := uc.locationRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := uc.now()
	r := &entity.Replenishment{
		ID:             uuid.New().String(),
		Code:           uc.codes.Code(idgen.PrefixReplenishment),
		ProductID:      in.ProductID,
		LotID:          lot.ID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Status:         entity.ReplenishmentStatusPending,
		RequestedBy:    userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toReplenishmentResponse(r), nil
}

// Complete ejecuta el traslado y marca la reposición como completada. Solo pendientes.
func (uc *ReplenishmentUseCase) Complete(ctx context.Context, userID, id string) (*dto.ReplenishmentResponse, error) {
	var out *entity.Replenishment
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		r, err := lockPending(ctx, repos, id)
		if err != nil {
			return err
		}
		now := uc.now()
		if err := transfer(ctx, repos, r.ProductID, r.LotID, r.FromLocationID, r.ToLocationID, r.Quantity, now); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:             uuid.New().String(),
			Type:           entity.MovementTypeTRANSFER,
			ProductID:      r.ProductID,
			LotID:          r.LotID,
			FromLocationID: &r.FromLocationID,
			ToLocationID:   &r.ToLocationID,
			Quantity:       r.Quantity,
			Reason:         "Reposición " + r.Code,
			ReferenceID:    &r.ID,
			CreatedBy:      userID,
			CreatedAt:      now,
		}
		if err := repos.Movements.Create(ctx, mov); err != nil {
			return err
		}
		r.Status = entity.ReplenishmentStatusCompleted
		r.CompletedBy = &userID
		r.CompletedAt = &now
		r.UpdatedAt = now
		out = r
		return repos.Replenishments.Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("replenishment", out.Code).Str("user_id", userID).Msg("reposición completada")
	return toReplenishmentResponse(out), nil
}

// Cancel cancela una reposición pendiente.
func (uc *ReplenishmentUseCase) Cancel(ctx context.Context, userID, id string) (*dto.ReplenishmentResponse, error) {
	var out *entity.Replenishment
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		r, err := lockPending(ctx, repos, id)
		if err != nil {
			return err
		}
		r.Status = entity.ReplenishmentStatusCancelled
		r.UpdatedAt = uc.now()
		out = r
		return repos.Replenishments.Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("replenishment", out.Code).Str("user_id", userID).Msg("reposición cancelada")
	return toReplenishmentResponse(out), nil
}

// GetByID obtiene una reposición.
func (uc *ReplenishmentUseCase) GetByID(ctx context.Context, id string) (*dto.ReplenishmentResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toReplenishmentResponse(r), nil
}

// List lista reposiciones, opcionalmente por estado.
func (uc *ReplenishmentUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.ListResponse[dto.ReplenishmentResponse], error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReplenishmentResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReplenishmentResponse(r))
	}
	return dto.NewList(items, page), nil
}

func lockPending(ctx context.Context, repos TxRepos, id string) (*entity.Replenishment, error) {
	r, err := repos.Replenishments.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.Status != entity.ReplenishmentStatusPending {
		return nil, domain.ErrConflict
	}
	return r, nil
}

func toReplenishmentResponse(r *entity.Replenishment) *dto.ReplenishmentResponse {
	return &dto.ReplenishmentResponse{
		ID:             r.ID,
		Code:           r.Code,
		ProductID:      r.ProductID,
		LotID:          r.LotID,
		FromLocationID: r.FromLocationID,
		ToLocationID:   r.ToLocationID,
		Quantity:       r.Quantity,
		Status:         r.Status,
		RequestedBy:    r.RequestedBy,
		CompletedBy:    r.CompletedBy,
		CompletedAt:    r.CompletedAt,
		CreatedAt:      r.CreatedAt,
	}
}
