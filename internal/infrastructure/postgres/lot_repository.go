package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes.
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, product_id, code, manufactured_at, expires_at, status, created_at, updated_at`

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(&l.ID, &l.ProductID, &l.Code, &l.ManufacturedAt, &l.ExpiresAt, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste un lote. Código repetido en el producto -> ErrDuplicate.
func (r *LotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, product_id, code, manufactured_at, expires_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		lot.ID, lot.ProductID, lot.Code, lot.ManufacturedAt, lot.ExpiresAt, lot.Status, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert lot", err)
	}
	return nil
}

// GetByID obtiene un lote; nil si no existe.
func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.Lot, error) {
	l, err := scanLot(r.q.QueryRow(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return l, nil
}

// GetByProductAndCode obtiene el lote de un producto por código; nil si no existe.
func (r *LotRepo) GetByProductAndCode(ctx context.Context, productID, code string) (*entity.Lot, error) {
	l, err := scanLot(r.q.QueryRow(ctx, `SELECT `+lotColumns+` FROM lots WHERE product_id = $1 AND code = $2`, productID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot by code: %w", err)
	}
	return l, nil
}

// Update actualiza fechas y estado de un lote.
func (r *LotRepo) Update(ctx context.Context, lot *entity.Lot) error {
	query := `
		UPDATE lots SET manufactured_at = $2, expires_at = $3, status = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, lot.ID, lot.ManufacturedAt, lot.ExpiresAt, lot.Status, lot.UpdatedAt)
	if err != nil {
		return writeErr("update lot", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista lotes, opcionalmente de un producto, por vencimiento.
func (r *LotRepo) List(ctx context.Context, productID string, limit, offset int) ([]*entity.Lot, error) {
	var w where
	if productID != "" {
		w.add("product_id = $%d", productID)
	}
	query := `SELECT ` + lotColumns + ` FROM lots` + w.sql() + ` ORDER BY expires_at NULLS LAST, code` + w.page(limit, offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.Lot, error) { return scanLot(row) })
}

// ListExpiring lista lotes no vencidos cuya fecha de vencimiento es anterior a before.
func (r *LotRepo) ListExpiring(ctx context.Context, before time.Time) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots
		WHERE expires_at IS NOT NULL AND expires_at < $1 AND status <> 'expired'
		ORDER BY expires_at`
	rows, err := r.q.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("list expiring lots: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.Lot, error) { return scanLot(row) })
}

// Delete elimina un lote sin existencias ni movimientos.
func (r *LotRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "lots", id)
}
