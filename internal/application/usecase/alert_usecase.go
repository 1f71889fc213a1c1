package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// AlertUseCase consulta y resolución de alertas.
type AlertUseCase struct {
	repo repository.AlertRepository
	now  func() time.Time
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo, now: time.Now}
}

// List lista alertas por tipo y estado (resolved nil = todas).
func (uc *AlertUseCase) List(ctx context.Context, alertType string, resolved *bool, page dto.PageRequest) (*dto.ListResponse[dto.AlertResponse], error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, repository.AlertFilter{
		Type:     alertType,
		Resolved: resolved,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewList(mapList(list, ToAlertResponse), page), nil
}

// Resolve marca la alerta como resuelta. Ya resuelta -> ErrConflict.
// La condición "sigue pendiente" se evalúa en la misma sentencia que la actualiza.
func (uc *AlertUseCase) Resolve(ctx context.Context, userID, id string) (*dto.AlertResponse, error) {
	alert, err := uc.repo.MarkResolved(ctx, id, userID, uc.now())
	if err != nil {
		return nil, err
	}
	if alert != nil {
		return ToAlertResponse(alert), nil
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrConflict
}
