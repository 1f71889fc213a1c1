package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/monitoring"
	"github.com/jhoicas/wms-api/internal/application/usecase"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// MonitoringHandler lecturas de temperatura y alertas.
type MonitoringHandler struct {
	temperature *monitoring.TemperatureUseCase
	expiry      *monitoring.ExpiryUseCase
	alerts      *usecase.AlertUseCase
}

// NewMonitoringHandler construye el handler.
func NewMonitoringHandler(temperature *monitoring.TemperatureUseCase, expiry *monitoring.ExpiryUseCase, alerts *usecase.AlertUseCase) *MonitoringHandler {
	return &MonitoringHandler{temperature: temperature, expiry: expiry, alerts: alerts}
}

// RecordTemperature godoc
// @Summary      Registrar lectura de temperatura
// @Description  Fuera del rango del sub-almacén genera una alerta (crítica si se desvía más de 2 °C).
// @Tags         monitoring
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTemperatureRequest  true  "Lectura"
// @Success      201   {object}  dto.TemperatureReadingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/temperature-readings [post]
func (h *MonitoringHandler) RecordTemperature(c *fiber.Ctx) error {
	var in dto.RecordTemperatureRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.temperature.Record(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	msg := "lectura registrada"
	if out.Alert != nil {
		msg = "lectura fuera de rango; alerta generada"
	}
	return created(c, msg, out)
}

// ListTemperature godoc
// @Summary      Consultar lecturas de temperatura
// @Tags         monitoring
// @Security     Bearer
// @Produce      json
// @Param        sub_warehouse_id  query  string  false  "Sub-almacén"
// @Param        from              query  string  false  "Desde (YYYY-MM-DD o RFC3339)"
// @Param        to                query  string  false  "Hasta (YYYY-MM-DD o RFC3339)"
// @Success      200  {object}  dto.Envelope
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/temperature-readings [get]
func (h *MonitoringHandler) ListTemperature(c *fiber.Ctx) error {
	from, okFrom := queryTime(c, "from", false)
	to, okTo := queryTime(c, "to", true)
	if !okFrom || !okTo {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", "from/to deben tener formato YYYY-MM-DD o RFC3339")
	}
	f := repository.TemperatureFilter{SubWarehouseID: c.Query("sub_warehouse_id"), From: from, To: to}
	out, err := h.temperature.List(c.UserContext(), f, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ListAlerts godoc
// @Summary      Listar alertas
// @Tags         monitoring
// @Security     Bearer
// @Produce      json
// @Param        type      query  string  false  "temperature, low_stock, expiry"
// @Param        resolved  query  bool    false  "true / false"
// @Success      200  {object}  dto.Envelope
// @Router       /api/alerts [get]
func (h *MonitoringHandler) ListAlerts(c *fiber.Ctx) error {
	out, err := h.alerts.List(c.UserContext(), c.Query("type"), queryBool(c, "resolved"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ScanExpiry godoc
// @Summary      Revisar vencimientos
// @Description  Crea una alerta por cada lote que vence dentro de la ventana y aún no tiene una pendiente.
// @Tags         monitoring
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200  {object}  dto.ExpiryScanResponse
// @Router       /api/alerts/expiry-scan [post]
func (h *MonitoringHandler) ScanExpiry(c *fiber.Ctx) error {
	out, err := h.expiry.Scan(c.UserContext(), c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// ResolveAlert godoc
// @Summary      Resolver alerta
// @Tags         monitoring
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *MonitoringHandler) ResolveAlert(c *fiber.Ctx) error {
	out, err := h.alerts.Resolve(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "alerta resuelta", out)
}

// queryTime lee una fecha opcional. Para el límite superior, una fecha sin hora cubre el día completo.
func queryTime(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, true
}
