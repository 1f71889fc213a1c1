package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

var _ repository.ReplenishmentRepository = (*ReplenishmentRepo)(nil)

// ReplenishmentRepo reposiciones sobre PostgreSQL (usable con pool o tx).
type ReplenishmentRepo struct {
	q Querier
}

// NewReplenishmentRepository construye el adaptador de reposiciones.
func NewReplenishmentRepository(q Querier) *ReplenishmentRepo {
	return &ReplenishmentRepo{q: q}
}

const replenishmentColumns = `id, code, product_id, lot_id, from_location_id, to_location_id, quantity, status, requested_by, completed_by, completed_at, created_at, updated_at`

func scanReplenishment(row pgx.Row) (*entity.Replenishment, error) {
	var x entity.Replenishment
	err := row.Scan(&x.ID, &x.Code, &x.ProductID, &x.LotID, &x.FromLocationID, &x.ToLocationID, &x.Quantity,
		&x.Status, &x.RequestedBy, &x.CompletedBy, &x.CompletedAt, &x.CreatedAt, &x.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// Create registra una reposición.
func (r *ReplenishmentRepo) Create(ctx context.Context, x *entity.Replenishment) error {
	query := `
		INSERT INTO replenishments (` + replenishmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.Code, x.ProductID, x.LotID, x.FromLocationID, x.ToLocationID, x.Quantity,
		x.Status, x.RequestedBy, x.CompletedBy, x.CompletedAt, x.CreatedAt, x.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert replenishment", err)
	}
	return nil
}

func (r *ReplenishmentRepo) get(ctx context.Context, id, suffix string) (*entity.Replenishment, error) {
	x, err := scanReplenishment(r.q.QueryRow(ctx, `SELECT `+replenishmentColumns+` FROM replenishments WHERE id = $1`+suffix, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get replenishment: %w", err)
	}
	return x, nil
}

// GetByID obtiene una reposición; nil si no existe.
func (r *ReplenishmentRepo) GetByID(ctx context.Context, id string) (*entity.Replenishment, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate obtiene y bloquea la reposición (SELECT FOR UPDATE).
func (r *ReplenishmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Replenishment, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

// Update guarda estado y datos de cierre.
func (r *ReplenishmentRepo) Update(ctx context.Context, x *entity.Replenishment) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE replenishments SET status = $2, completed_by = $3, completed_at = $4, updated_at = $5 WHERE id = $1`,
		x.ID, x.Status, x.CompletedBy, x.CompletedAt, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update replenishment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista reposiciones, opcionalmente por estado.
func (r *ReplenishmentRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Replenishment, error) {
	var w where
	if status != "" {
		w.add("status = $%d", status)
	}
	query := `SELECT ` + replenishmentColumns + ` FROM replenishments` + w.sql() + ` ORDER BY created_at DESC` + w.page(limit, offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list replenishments: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.Replenishment, error) { return scanReplenishment(row) })
}
