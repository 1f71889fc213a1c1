package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// SubWarehouseUseCase CRUD de sub-almacenes.
type SubWarehouseUseCase struct {
	repo repository.SubWarehouseRepository
}

// NewSubWarehouseUseCase construye el caso de uso.
func NewSubWarehouseUseCase(repo repository.SubWarehouseRepository) *SubWarehouseUseCase {
	return &SubWarehouseUseCase{repo: repo}
}

// Create crea un sub-almacén. Si define rango de temperatura, min <= max.
func (uc *SubWarehouseUseCase) Create(ctx context.Context, in dto.CreateSubWarehouseRequest) (*dto.SubWarehouseResponse, error) {
	if in.MinTemperature != nil && in.MaxTemperature != nil && in.MinTemperature.GreaterThan(*in.MaxTemperature) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sw := &entity.SubWarehouse{
		ID:             uuid.New().String(),
		Code:           strings.TrimSpace(in.Code),
		Name:           in.Name,
		Description:    in.Description,
		MinTemperature: in.MinTemperature,
		MaxTemperature: in.MaxTemperature,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, sw); err != nil {
		return nil, err
	}
	return toSubWarehouseResponse(sw), nil
}

// GetByID obtiene un sub-almacén.
func (uc *SubWarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.SubWarehouseResponse, error) {
	sw, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, domain.ErrNotFound
	}
	return toSubWarehouseResponse(sw), nil
}

// Update actualiza nombre, descripción, rango de temperatura o estado.
func (uc *SubWarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateSubWarehouseRequest) (*dto.SubWarehouseResponse, error) {
	sw, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		sw.Name = *in.Name
	}
	if in.Description != nil {
		sw.Description = *in.Description
	}
	if in.MinTemperature != nil {
		sw.MinTemperature = in.MinTemperature
	}
	if in.MaxTemperature != nil {
		sw.MaxTemperature = in.MaxTemperature
	}
	if sw.MinTemperature != nil && sw.MaxTemperature != nil && sw.MinTemperature.GreaterThan(*sw.MaxTemperature) {
		return nil, domain.ErrInvalidInput
	}
	if in.Active != nil {
		sw.Active = *in.Active
	}
	sw.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sw); err != nil {
		return nil, err
	}
	return toSubWarehouseResponse(sw), nil
}

// List lista sub-almacenes.
func (uc *SubWarehouseUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.SubWarehouseResponse], error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(mapList(list, toSubWarehouseResponse), page), nil
}

// Delete elimina un sub-almacén sin ubicaciones.
func (uc *SubWarehouseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// LocationUseCase CRUD de ubicaciones.
type LocationUseCase struct {
	repo          repository.LocationRepository
	warehouseRepo repository.SubWarehouseRepository
	inventoryRepo repository.InventoryRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, warehouseRepo repository.SubWarehouseRepository, inventoryRepo repository.InventoryRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, warehouseRepo: warehouseRepo, inventoryRepo: inventoryRepo}
}

// Create crea una ubicación en un sub-almacén existente.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	sw, err := uc.warehouseRepo.GetByID(ctx, in.SubWarehouseID)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	loc := &entity.Location{
		ID:             uuid.New().String(),
		SubWarehouseID: sw.ID,
		Code:           strings.TrimSpace(in.Code),
		Zone:           in.Zone,
		Type:           in.Type,
		Capacity:       in.Capacity,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// GetByID obtiene una ubicación.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(loc), nil
}

// Update actualiza zona, tipo, capacidad o estado.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Zone != nil {
		loc.Zone = *in.Zone
	}
	if in.Type != nil {
		loc.Type = *in.Type
	}
	if in.Capacity != nil {
		loc.Capacity = *in.Capacity
	}
	if in.Active != nil {
		loc.Active = *in.Active
	}
	loc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// List lista ubicaciones filtrando por sub-almacén y zona.
func (uc *LocationUseCase) List(ctx context.Context, subWarehouseID, zone string, page dto.PageRequest) (*dto.ListResponse[dto.LocationResponse], error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, repository.LocationFilter{
		SubWarehouseID: subWarehouseID,
		Zone:           zone,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewList(mapList(list, toLocationResponse), page), nil
}

// Delete elimina una ubicación. Con existencias registradas -> ErrInUse.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.inventoryRepo.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrInUse
	}
	return uc.repo.Delete(ctx, id)
}
