package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo alertas operativas sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

const alertColumns = `id, type, severity, message, sub_warehouse_id, product_id, resolved, resolved_by, resolved_at, created_at, lot_id`

func scanAlert(row pgx.Row) (*entity.Alert, error) {
	var a entity.Alert
	err := row.Scan(&a.ID, &a.Type, &a.Severity, &a.Message, &a.SubWarehouseID, &a.ProductID,
		&a.Resolved, &a.ResolvedBy, &a.ResolvedAt, &a.CreatedAt, &a.LotID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create registra una alerta.
func (r *AlertRepo) Create(ctx context.Context, a *entity.Alert) error {
	query := `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Type, a.Severity, a.Message, a.SubWarehouseID, a.ProductID,
		a.Resolved, a.ResolvedBy, a.ResolvedAt, a.CreatedAt, a.LotID,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta; nil si no existe.
func (r *AlertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	a, err := scanAlert(r.q.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// MarkResolved resuelve la alerta si sigue pendiente; nil si no existe o ya estaba resuelta.
func (r *AlertRepo) MarkResolved(ctx context.Context, id, userID string, at time.Time) (*entity.Alert, error) {
	a, err := scanAlert(r.q.QueryRow(ctx, `
		UPDATE alerts SET resolved = TRUE, resolved_by = $2, resolved_at = $3
		WHERE id = $1 AND NOT resolved
		RETURNING `+alertColumns, id, userID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve alert: %w", err)
	}
	return a, nil
}

// List lista alertas, las más recientes primero.
func (r *AlertRepo) List(ctx context.Context, f repository.AlertFilter) ([]*entity.Alert, error) {
	var w where
	if f.Type != "" {
		w.add("type = $%d", f.Type)
	}
	if f.LotID != "" {
		w.add("lot_id = $%d", f.LotID)
	}
	if f.Resolved != nil {
		w.add("resolved = $%d", *f.Resolved)
	}
	query := `SELECT ` + alertColumns + ` FROM alerts` + w.sql() + ` ORDER BY created_at DESC` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.Alert, error) { return scanAlert(row) })
}
