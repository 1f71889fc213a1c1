// Package ports define los puertos de salida de la capa de aplicación que no son persistencia:
// notificaciones, etiquetas PDF y exportes.
package ports

import (
	"context"
	"time"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// Notifier envía avisos de alertas (correo u otro canal). Debe ser no bloqueante.
type Notifier interface {
	NotifyAlert(ctx context.Context, alert *entity.Alert) error
}

// LotLabel datos impresos en la etiqueta de un lote.
type LotLabel struct {
	LotCode     string
	SKU         string
	ProductName string
	Status      string
	ExpiresAt   *time.Time
}

// LabelGenerator genera la etiqueta PDF de un lote (código de barras + QR).
type LabelGenerator interface {
	LotLabel(ctx context.Context, label LotLabel) ([]byte, error)
}

// InventoryExporter genera el archivo de existencias para descarga.
type InventoryExporter interface {
	ExportInventory(ctx context.Context, rows []*entity.InventoryView) ([]byte, error)
}

// NopNotifier descarta las alertas (SMTP no configurado, tests).
type NopNotifier struct{}

// NotifyAlert no hace nada.
func (NopNotifier) NotifyAlert(context.Context, *entity.Alert) error { return nil }

// CodeGenerator produce códigos de documento legibles (REC-..., REP-..., TSK-...).
type CodeGenerator interface {
	Code(prefix string) string
}
