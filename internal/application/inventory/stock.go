package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/inventory"
	"github.com/jhoicas/wms-api/pkg/logger"
)

// applyDelta bloquea la fila lote+ubicación (creándola si es el primer depósito), aplica el
// delta y la guarda. Devuelve ErrInsufficientStock si la existencia quedaría negativa.
func applyDelta(ctx context.Context, repos TxRepos, productID, lotID, locationID string, delta decimal.Decimal, now time.Time) error {
	rec, err := repos.Inventory.LockForUpdate(ctx, productID, lotID, locationID)
	if err != nil {
		return err
	}
	next, ok := inventory.StockAfter(rec.Quantity, delta)
	if !ok {
		return domain.ErrInsufficientStock
	}
	rec.Quantity = next
	rec.UpdatedAt = now
	return repos.Inventory.SetQuantity(ctx, rec)
}

// checkLowStock crea una alerta low_stock si la salida de removed unidades hizo cruzar
// la existencia total del producto por debajo de su mínimo. Sin cruce no hay alerta nueva.
func checkLowStock(ctx context.Context, repos TxRepos, product *entity.Product, removed decimal.Decimal, now time.Time) (*entity.Alert, error) {
	if !product.MinStock.IsPositive() {
		return nil, nil
	}
	total, err := repos.Inventory.TotalByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	before := total.Add(removed)
	if !inventory.IsBelowMinimum(total, product.MinStock) || inventory.IsBelowMinimum(before, product.MinStock) {
		return nil, nil
	}
	productID := product.ID
	alert := &entity.Alert{
		ID:        uuid.New().String(),
		Type:      entity.AlertTypeLowStock,
		Severity:  entity.AlertSeverityWarning,
		Message:   fmt.Sprintf("Stock bajo de %s (%s): %s de mínimo %s", product.Name, product.SKU, total.String(), product.MinStock.String()),
		ProductID: &productID,
		CreatedAt: now,
	}
	if err := repos.Alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// notifyAll envía las alertas generadas después del commit; un fallo del canal solo se registra.
func notifyAll(ctx context.Context, n ports.Notifier, log *logger.Logger, alerts ...*entity.Alert) {
	for _, a := range alerts {
		if a == nil {
			continue
		}
		if err := n.NotifyAlert(ctx, a); err != nil {
			log.Warn().Err(err).Str("alert_id", a.ID).Str("type", a.Type).Msg("no se pudo encolar la notificación de alerta")
		}
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
