package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo kardex de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create registra un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, product_id, lot_id, from_location_id, to_location_id, quantity, reason, reference_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Type, m.ProductID, m.LotID, m.FromLocationID, m.ToLocationID,
		m.Quantity, m.Reason, m.ReferenceID, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List consulta movimientos, los más recientes primero. LocationID coincide con origen o destino.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	var w where
	if f.ProductID != "" {
		w.add("product_id = $%d", f.ProductID)
	}
	if f.LotID != "" {
		w.add("lot_id = $%d", f.LotID)
	}
	if f.LocationID != "" {
		w.args = append(w.args, f.LocationID)
		n := len(w.args)
		w.conds = append(w.conds, fmt.Sprintf("(from_location_id = $%d OR to_location_id = $%d)", n, n))
	}
	if f.Type != "" {
		w.add("type = $%d", f.Type)
	}
	query := `
		SELECT id, type, product_id, lot_id, from_location_id, to_location_id, quantity, reason, reference_id, created_by, created_at
		FROM movements` + w.sql() + ` ORDER BY created_at DESC` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.Movement, error) {
		var m entity.Movement
		err := row.Scan(&m.ID, &m.Type, &m.ProductID, &m.LotID, &m.FromLocationID, &m.ToLocationID,
			&m.Quantity, &m.Reason, &m.ReferenceID, &m.CreatedBy, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		return &m, nil
	})
}
