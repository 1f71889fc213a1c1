package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

var _ repository.ReceptionRepository = (*ReceptionRepo)(nil)

// ReceptionRepo recepciones de proveedor sobre PostgreSQL (usable con pool o tx).
type ReceptionRepo struct {
	q Querier
}

// NewReceptionRepository construye el adaptador de recepciones.
func NewReceptionRepository(q Querier) *ReceptionRepo {
	return &ReceptionRepo{q: q}
}

const receptionColumns = `id, code, supplier_name, document_ref, product_id, lot_id, location_id, quantity, temperature, received_by, received_at, notes`

func scanReception(row pgx.Row) (*entity.Reception, error) {
	var x entity.Reception
	err := row.Scan(&x.ID, &x.Code, &x.SupplierName, &x.DocumentRef, &x.ProductID, &x.LotID, &x.LocationID,
		&x.Quantity, &x.Temperature, &x.ReceivedBy, &x.ReceivedAt, &x.Notes)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// Create registra una recepción.
func (r *ReceptionRepo) Create(ctx context.Context, x *entity.Reception) error {
	query := `
		INSERT INTO receptions (` + receptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.Code, x.SupplierName, x.DocumentRef, x.ProductID, x.LotID, x.LocationID,
		x.Quantity, x.Temperature, x.ReceivedBy, x.ReceivedAt, x.Notes,
	)
	if err != nil {
		return writeErr("insert reception", err)
	}
	return nil
}

// GetByID obtiene una recepción; nil si no existe.
func (r *ReceptionRepo) GetByID(ctx context.Context, id string) (*entity.Reception, error) {
	x, err := scanReception(r.q.QueryRow(ctx, `SELECT `+receptionColumns+` FROM receptions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reception: %w", err)
	}
	return x, nil
}

// List lista recepciones, las más recientes primero.
func (r *ReceptionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Reception, error) {
	rows, err := r.q.Query(ctx, `SELECT `+receptionColumns+` FROM receptions ORDER BY received_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receptions: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.Reception, error) { return scanReception(row) })
}
