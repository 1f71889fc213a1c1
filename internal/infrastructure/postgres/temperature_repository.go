package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

var _ repository.TemperatureReadingRepository = (*TemperatureReadingRepo)(nil)

// TemperatureReadingRepo lecturas de temperatura sobre PostgreSQL.
type TemperatureReadingRepo struct {
	q Querier
}

// NewTemperatureReadingRepository construye el adaptador.
func NewTemperatureReadingRepository(q Querier) *TemperatureReadingRepo {
	return &TemperatureReadingRepo{q: q}
}

// Create registra una lectura.
func (r *TemperatureReadingRepo) Create(ctx context.Context, x *entity.TemperatureReading) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO temperature_readings (id, sub_warehouse_id, temperature, out_of_range, recorded_by, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		x.ID, x.SubWarehouseID, x.Temperature, x.OutOfRange, x.RecordedBy, x.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert temperature reading: %w", err)
	}
	return nil
}

// List consulta lecturas por sub-almacén y rango [From, To], las más recientes primero.
func (r *TemperatureReadingRepo) List(ctx context.Context, f repository.TemperatureFilter) ([]*entity.TemperatureReading, error) {
	var w where
	if f.SubWarehouseID != "" {
		w.add("sub_warehouse_id = $%d", f.SubWarehouseID)
	}
	if f.From != nil {
		w.add("recorded_at >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("recorded_at <= $%d", *f.To)
	}
	query := `
		SELECT id, sub_warehouse_id, temperature, out_of_range, recorded_by, recorded_at
		FROM temperature_readings` + w.sql() + ` ORDER BY recorded_at DESC` + w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list temperature readings: %w", err)
	}
	return collect(rows, func(row pgx.Rows) (*entity.TemperatureReading, error) {
		var x entity.TemperatureReading
		if err := row.Scan(&x.ID, &x.SubWarehouseID, &x.Temperature, &x.OutOfRange, &x.RecordedBy, &x.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan temperature reading: %w", err)
		}
		return &x, nil
	})
}
