// Package monitoring registra lecturas de temperatura de los sub-almacenes y genera alertas
// cuando salen del rango configurado.
package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-api/internal/application/dto"
	appinventory "github.com/jhoicas/wms-api/internal/application/inventory"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/application/usecase"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/inventory"
	"github.com/jhoicas/wms-api/internal/domain/repository"
	"github.com/jhoicas/wms-api/pkg/logger"
)

// TemperatureUseCase registra lecturas y dispara alertas de temperatura.
type TemperatureUseCase struct {
	txRunner   appinventory.TxRunner
	readings   repository.TemperatureReadingRepository
	warehouses repository.SubWarehouseRepository
	notifier   ports.Notifier
	log        *logger.Logger
	now        func() time.Time
}

// NewTemperatureUseCase construye el caso de uso.
// La lectura y su alerta se guardan en la misma transacción.
func NewTemperatureUseCase(
	txRunner appinventory.TxRunner,
	readings repository.TemperatureReadingRepository,
	warehouses repository.SubWarehouseRepository,
	notifier ports.Notifier,
	log *logger.Logger,
) *TemperatureUseCase {
	return &TemperatureUseCase{
		txRunner:   txRunner,
		readings:   readings,
		warehouses: warehouses,
		notifier:   notifier,
		log:        log.Named("temperature"),
		now:        time.Now,
	}
}

// Record guarda la lectura. Fuera de rango: la marca out_of_range, crea una alerta
// (critical si se desvía más de 2 °C, si no warning) y la notifica.
func (uc *TemperatureUseCase) Record(ctx context.Context, userID string, in dto.RecordTemperatureRequest) (*dto.TemperatureReadingResponse, error) {
	sw, err := uc.warehouses.GetByID(ctx, in.SubWarehouseID)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, domain.ErrNotFound
	}
	check := inventory.EvaluateTemperature(in.Temperature, sw.MinTemperature, sw.MaxTemperature)
	now := uc.now()
	reading := &entity.TemperatureReading{
		ID:             uuid.New().String(),
		SubWarehouseID: sw.ID,
		Temperature:    in.Temperature,
		OutOfRange:     check.OutOfRange,
		RecordedBy:     userID,
		RecordedAt:     now,
	}
	var alert *entity.Alert
	if check.OutOfRange {
		swID := sw.ID
		alert = &entity.Alert{
			ID:             uuid.New().String(),
			Type:           entity.AlertTypeTemperature,
			Severity:       check.Severity,
			Message:        fmt.Sprintf("%s (%s) registró %s °C, %s °C fuera del rango %s", sw.Name, sw.Code, in.Temperature.String(), check.Deviation.String(), rangeText(sw)),
			SubWarehouseID: &swID,
			CreatedAt:      now,
		}
	}
	err = uc.txRunner.Run(ctx, func(repos appinventory.TxRepos) error {
		if err := repos.Readings.Create(ctx, reading); err != nil {
			return err
		}
		if alert != nil {
			return repos.Alerts.Create(ctx, alert)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toReadingResponse(reading)
	if alert == nil {
		return resp, nil
	}

	if err := uc.notifier.NotifyAlert(ctx, alert); err != nil {
		uc.log.Warn().Err(err).Str("alert_id", alert.ID).Msg("no se pudo encolar la notificación de temperatura")
	}
	uc.log.Warn().Str("sub_warehouse", sw.Code).Str("temperature", in.Temperature.String()).
		Str("severity", check.Severity).Msg("temperatura fuera de rango")
	resp.Alert = usecase.ToAlertResponse(alert)
	return resp, nil
}

// List consulta lecturas por sub-almacén y rango de fechas.
func (uc *TemperatureUseCase) List(ctx context.Context, f repository.TemperatureFilter, page dto.PageRequest) (*dto.ListResponse[dto.TemperatureReadingResponse], error) {
	page.Normalize()
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.ErrInvalidInput
	}
	f.Limit, f.Offset = page.Limit, page.Offset
	list, err := uc.readings.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemperatureReadingResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReadingResponse(r))
	}
	return dto.NewList(items, page), nil
}

func rangeText(sw *entity.SubWarehouse) string {
	lo, hi := "-∞", "+∞"
	if sw.MinTemperature != nil {
		lo = sw.MinTemperature.String()
	}
	if sw.MaxTemperature != nil {
		hi = sw.MaxTemperature.String()
	}
	return "[" + lo + ", " + hi + "]"
}

func toReadingResponse(r *entity.TemperatureReading) *dto.TemperatureReadingResponse {
	return &dto.TemperatureReadingResponse{
		ID:             r.ID,
		SubWarehouseID: r.SubWarehouseID,
		Temperature:    r.Temperature,
		OutOfRange:     r.OutOfRange,
		RecordedBy:     r.RecordedBy,
		RecordedAt:     r.RecordedAt,
	}
}
