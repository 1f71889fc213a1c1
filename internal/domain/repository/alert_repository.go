package repository

import (
	"context"
	"time"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// AlertFilter filtros para listar alertas. Resolved nil = todas.
type AlertFilter struct {
	Type     string
	LotID    string
	Resolved *bool
	Limit    int
	Offset   int
}

// AlertRepository define el puerto de persistencia para alertas.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	GetByID(ctx context.Context, id string) (*entity.Alert, error)
	// MarkResolved resuelve la alerta solo si sigue pendiente, en una única sentencia.
	// Devuelve nil si no existe o ya estaba resuelta.
	MarkResolved(ctx context.Context, id, userID string, at time.Time) (*entity.Alert, error)
	List(ctx context.Context, f AlertFilter) ([]*entity.Alert, error)
}
