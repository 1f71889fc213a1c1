package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/application/usecase"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
	"github.com/jhoicas/wms-api/pkg/logger"
)

// DefaultExpiryDays ventana de revisión cuando no se indica.
const DefaultExpiryDays = 30

// ExpiryUseCase genera alertas de vencimiento para lotes próximos a vencer.
type ExpiryUseCase struct {
	lots     repository.LotRepository
	products repository.ProductRepository
	alerts   repository.AlertRepository
	notifier ports.Notifier
	log      *logger.Logger
	now      func() time.Time
}

// NewExpiryUseCase construye el caso de uso.
func NewExpiryUseCase(
	lots repository.LotRepository,
	products repository.ProductRepository,
	alerts repository.AlertRepository,
	notifier ports.Notifier,
	log *logger.Logger,
) *ExpiryUseCase {
	return &ExpiryUseCase{
		lots:     lots,
		products: products,
		alerts:   alerts,
		notifier: notifier,
		log:      log.Named("expiry"),
		now:      time.Now,
	}
}

// Scan revisa los lotes que vencen dentro de days días y crea una alerta por lote.
// Un lote con alerta de vencimiento pendiente se omite. Lote ya vencido: critical; si no, warning.
func (uc *ExpiryUseCase) Scan(ctx context.Context, days int) (*dto.ExpiryScanResponse, error) {
	if days <= 0 {
		days = DefaultExpiryDays
	}
	now := uc.now()
	lots, err := uc.lots.ListExpiring(ctx, now.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	out := &dto.ExpiryScanResponse{Days: days, Checked: len(lots), Alerts: []dto.AlertResponse{}}
	pending := false
	for _, lot := range lots {
		open, err := uc.alerts.List(ctx, repository.AlertFilter{
			Type:     entity.AlertTypeExpiry,
			LotID:    lot.ID,
			Resolved: &pending,
			Limit:    1,
		})
		if err != nil {
			return nil, err
		}
		if len(open) > 0 {
			out.Skipped++
			continue
		}

		alert, err := uc.newAlert(ctx, lot, now)
		if err != nil {
			return nil, err
		}
		if err := uc.alerts.Create(ctx, alert); err != nil {
			return nil, fmt.Errorf("crear alerta de vencimiento del lote %s: %w", lot.Code, err)
		}
		if err := uc.notifier.NotifyAlert(ctx, alert); err != nil {
			uc.log.Warn().Err(err).Str("alert_id", alert.ID).Msg("no se pudo encolar la notificación de vencimiento")
		}
		out.Alerts = append(out.Alerts, *usecase.ToAlertResponse(alert))
	}

	uc.log.Info().Int("days", days).Int("checked", out.Checked).Int("created", len(out.Alerts)).Msg("revisión de vencimientos")
	return out, nil
}

func (uc *ExpiryUseCase) newAlert(ctx context.Context, lot *entity.Lot, now time.Time) (*entity.Alert, error) {
	name := lot.ProductID
	product, err := uc.products.GetByID(ctx, lot.ProductID)
	if err != nil {
		return nil, err
	}
	if product != nil {
		name = product.SKU + " " + product.Name
	}

	expires := lot.ExpiresAt.Format("2006-01-02")
	severity := entity.AlertSeverityWarning
	msg := fmt.Sprintf("Lote %s de %s vence el %s", lot.Code, name, expires)
	if !lot.ExpiresAt.After(now) {
		severity = entity.AlertSeverityCritical
		msg = fmt.Sprintf("Lote %s de %s venció el %s", lot.Code, name, expires)
	}

	productID, lotID := lot.ProductID, lot.ID
	return &entity.Alert{
		ID:        uuid.New().String(),
		Type:      entity.AlertTypeExpiry,
		Severity:  severity,
		Message:   msg,
		ProductID: &productID,
		LotID:     &lotID,
		CreatedAt: now,
	}, nil
}
