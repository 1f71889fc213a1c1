package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo existencias por lote y ubicación sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// LockForUpdate asegura la fila lote+ubicación y la bloquea. El INSERT ... DO NOTHING espera a
// una inserción concurrente de la misma pareja, así el SELECT siguiente ve la fila confirmada.
func (r *InventoryRepo) LockForUpdate(ctx context.Context, productID, lotID, locationID string) (*entity.InventoryRecord, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory (id, product_id, lot_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, 0, now())
		ON CONFLICT (lot_id, location_id) DO NOTHING`,
		uuid.New().String(), productID, lotID, locationID)
	if err != nil {
		return nil, writeErr("ensure inventory row", err)
	}

	query := `
		SELECT id, product_id, lot_id, location_id, quantity, updated_at
		FROM inventory WHERE lot_id = $1 AND location_id = $2
		FOR UPDATE`
	var rec entity.InventoryRecord
	err = r.q.QueryRow(ctx, query, lotID, locationID).Scan(
		&rec.ID, &rec.ProductID, &rec.LotID, &rec.LocationID, &rec.Quantity, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("lock inventory: %w", err)
	}
	return &rec, nil
}

// SetQuantity actualiza la cantidad de la fila (ya bloqueada en la transacción).
func (r *InventoryRepo) SetQuantity(ctx context.Context, rec *entity.InventoryRecord) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE inventory SET quantity = $2, updated_at = $3 WHERE id = $1`,
		rec.ID, rec.Quantity, rec.UpdatedAt)
	if err != nil {
		return writeErr("set inventory quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TotalByProduct suma la existencia de un producto en todas las ubicaciones.
func (r *InventoryRepo) TotalByProduct(ctx context.Context, productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM inventory WHERE product_id = $1`, productID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total inventory: %w", err)
	}
	return total, nil
}

// List lista existencias con datos de producto, lote y ubicación. Omite filas en cero.
func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryView, error) {
	var w where
	w.conds = append(w.conds, "i.quantity > 0")
	if f.ProductID != "" {
		w.add("i.product_id = $%d", f.ProductID)
	}
	if f.LotID != "" {
		w.add("i.lot_id = $%d", f.LotID)
	}
	if f.LocationID != "" {
		w.add("i.location_id = $%d", f.LocationID)
	}
	if f.SubWarehouseID != "" {
		w.add("l.sub_warehouse_id = $%d", f.SubWarehouseID)
	}
	query := `
		SELECT i.id, i.product_id, i.lot_id, i.location_id, i.quantity, i.updated_at,
			p.sku, p.name, lt.code, lt.status, lt.expires_at, l.code, sw.code
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN lots lt ON lt.id = i.lot_id
		JOIN locations l ON l.id = i.location_id
		JOIN sub_warehouses sw ON sw.id = l.sub_warehouse_id` +
		w.sql() + ` ORDER BY p.sku, lt.expires_at NULLS LAST, l.code` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.InventoryView, error) {
		var v entity.InventoryView
		err := row.Scan(&v.ID, &v.ProductID, &v.LotID, &v.LocationID, &v.Quantity, &v.UpdatedAt,
			&v.SKU, &v.ProductName, &v.LotCode, &v.LotStatus, &v.ExpiresAt, &v.LocationCode, &v.SubWarehouseCode)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		return &v, nil
	})
}

// BelowMinimum lista productos activos con mínimo configurado y existencia total menor.
func (r *InventoryRepo) BelowMinimum(ctx context.Context) ([]*entity.StockLevel, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(SUM(i.quantity), 0) AS total, p.min_stock
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
		WHERE p.active AND p.min_stock > 0
		GROUP BY p.id, p.sku, p.name, p.min_stock
		HAVING COALESCE(SUM(i.quantity), 0) < p.min_stock
		ORDER BY p.sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("below minimum: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.StockLevel, error) {
		var s entity.StockLevel
		if err := row.Scan(&s.ProductID, &s.SKU, &s.ProductName, &s.Quantity, &s.MinStock); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		return &s, nil
	})
}

// CountByLocation cuenta filas con existencia positiva en una ubicación.
func (r *InventoryRepo) CountByLocation(ctx context.Context, locationID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory WHERE location_id = $1 AND quantity > 0`, locationID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inventory by location: %w", err)
	}
	return n, nil
}
