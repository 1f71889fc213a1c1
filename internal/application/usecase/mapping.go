package usecase

import (
	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/rbac"
)

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.RoleName,
		Status:       u.Status,
		Capabilities: rbac.ResolveName(u.RoleName),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToUserResponse expone el mapeo para otros paquetes de aplicación (auth).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return toUserResponse(u)
}

func toRoleResponse(r *entity.Role) dto.RoleResponse {
	return dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Grants:      rbac.ResolveName(r.Name),
	}
}

func toSubWarehouseResponse(s *entity.SubWarehouse) *dto.SubWarehouseResponse {
	return &dto.SubWarehouseResponse{
		ID:             s.ID,
		Code:           s.Code,
		Name:           s.Name,
		Description:    s.Description,
		MinTemperature: s.MinTemperature,
		MaxTemperature: s.MaxTemperature,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:             l.ID,
		SubWarehouseID: l.SubWarehouseID,
		Code:           l.Code,
		Zone:           l.Zone,
		Type:           l.Type,
		Capacity:       l.Capacity,
		Active:         l.Active,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Barcode:           p.Barcode,
		Name:              p.Name,
		Description:       p.Description,
		Unit:              p.Unit,
		MinStock:          p.MinStock,
		RequiresColdChain: p.RequiresColdChain,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	return &dto.LotResponse{
		ID:             l.ID,
		ProductID:      l.ProductID,
		Code:           l.Code,
		ManufacturedAt: l.ManufacturedAt,
		ExpiresAt:      l.ExpiresAt,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          t.ID,
		Code:        t.Code,
		Type:        t.Type,
		Status:      t.Status,
		Priority:    t.Priority,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		DueAt:       t.DueAt,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToAlertResponse mapea una alerta a su DTO; usado también por monitoreo.
func ToAlertResponse(a *entity.Alert) *dto.AlertResponse {
	if a == nil {
		return nil
	}
	return &dto.AlertResponse{
		ID:             a.ID,
		Type:           a.Type,
		Severity:       a.Severity,
		Message:        a.Message,
		SubWarehouseID: a.SubWarehouseID,
		ProductID:      a.ProductID,
		LotID:          a.LotID,
		Resolved:       a.Resolved,
		ResolvedBy:     a.ResolvedBy,
		ResolvedAt:     a.ResolvedAt,
		CreatedAt:      a.CreatedAt,
	}
}

func mapList[E any, R any](list []E, fn func(E) *R) []R {
	out := make([]R, 0, len(list))
	for _, e := range list {
		out = append(out, *fn(e))
	}
	return out
}
