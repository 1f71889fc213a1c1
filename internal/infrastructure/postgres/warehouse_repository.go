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

var _ repository.SubWarehouseRepository = (*SubWarehouseRepo)(nil)

// SubWarehouseRepo implementación de SubWarehouseRepository sobre PostgreSQL.
type SubWarehouseRepo struct {
	q Querier
}

// NewSubWarehouseRepository construye el adaptador.
func NewSubWarehouseRepository(q Querier) *SubWarehouseRepo {
	return &SubWarehouseRepo{q: q}
}

const subWarehouseColumns = `id, code, name, description, min_temperature, max_temperature, active, created_at, updated_at`

func scanSubWarehouse(row pgx.Row) (*entity.SubWarehouse, error) {
	var s entity.SubWarehouse
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &s.MinTemperature, &s.MaxTemperature, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un sub-almacén. Código repetido -> ErrDuplicate.
func (r *SubWarehouseRepo) Create(ctx context.Context, sw *entity.SubWarehouse) error {
	query := `
		INSERT INTO sub_warehouses (id, code, name, description, min_temperature, max_temperature, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		sw.ID, sw.Code, sw.Name, sw.Description, sw.MinTemperature, sw.MaxTemperature, sw.Active, sw.CreatedAt, sw.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert sub_warehouse", err)
	}
	return nil
}

// GetByID obtiene un sub-almacén; nil si no existe.
func (r *SubWarehouseRepo) GetByID(ctx context.Context, id string) (*entity.SubWarehouse, error) {
	s, err := scanSubWarehouse(r.q.QueryRow(ctx, `SELECT `+subWarehouseColumns+` FROM sub_warehouses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_warehouse: %w", err)
	}
	return s, nil
}

// Update actualiza un sub-almacén.
func (r *SubWarehouseRepo) Update(ctx context.Context, sw *entity.SubWarehouse) error {
	query := `
		UPDATE sub_warehouses SET name = $2, description = $3, min_temperature = $4, max_temperature = $5, active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, sw.ID, sw.Name, sw.Description, sw.MinTemperature, sw.MaxTemperature, sw.Active, sw.UpdatedAt)
	if err != nil {
		return writeErr("update sub_warehouse", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista sub-almacenes por código.
func (r *SubWarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.SubWarehouse, error) {
	rows, err := r.q.Query(ctx, `SELECT `+subWarehouseColumns+` FROM sub_warehouses ORDER BY code LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sub_warehouses: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.SubWarehouse, error) { return scanSubWarehouse(row) })
}

// Delete elimina un sub-almacén sin ubicaciones.
func (r *SubWarehouseRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "sub_warehouses", id)
}

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, sub_warehouse_id, code, zone, type, capacity, active, created_at, updated_at`

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	err := row.Scan(&l.ID, &l.SubWarehouseID, &l.Code, &l.Zone, &l.Type, &l.Capacity, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste una ubicación. Código repetido -> ErrDuplicate.
func (r *LocationRepo) Create(ctx context.Context, loc *entity.Location) error {
	query := `
		INSERT INTO locations (id, sub_warehouse_id, code, zone, type, capacity, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		loc.ID, loc.SubWarehouseID, loc.Code, loc.Zone, loc.Type, loc.Capacity, loc.Active, loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert location", err)
	}
	return nil
}

// GetByID obtiene una ubicación; nil si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	l, err := scanLocation(r.q.QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// Update actualiza una ubicación.
func (r *LocationRepo) Update(ctx context.Context, loc *entity.Location) error {
	query := `
		UPDATE locations SET zone = $2, type = $3, capacity = $4, active = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, loc.ID, loc.Zone, loc.Type, loc.Capacity, loc.Active, loc.UpdatedAt)
	if err != nil {
		return writeErr("update location", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ubicaciones filtrando por sub-almacén y zona.
func (r *LocationRepo) List(ctx context.Context, f repository.LocationFilter) ([]*entity.Location, error) {
	var w where
	if f.SubWarehouseID != "" {
		w.add("sub_warehouse_id = $%d", f.SubWarehouseID)
	}
	if f.Zone != "" {
		w.add("zone = $%d", f.Zone)
	}
	query := `SELECT ` + locationColumns + ` FROM locations` + w.sql() + ` ORDER BY code` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.Location, error) { return scanLocation(row) })
}

// Delete elimina una ubicación sin referencias.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "locations", id)
}
