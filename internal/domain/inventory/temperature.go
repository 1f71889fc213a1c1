package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-api/internal/domain/entity"
)

// CriticalDeviation desviación (°C) fuera del rango a partir de la cual la alerta es crítica.
var CriticalDeviation = decimal.NewFromInt(2)

// TemperatureCheck resultado de comparar una lectura con el rango de un sub-almacén.
type TemperatureCheck struct {
	OutOfRange bool
	Deviation  decimal.Decimal // grados fuera del rango (0 si está dentro)
	Severity   string          // "", warning o critical
}

// EvaluateTemperature compara la lectura contra [lo, hi]; límites nil no se evalúan.
// Los límites son inclusivos.
func EvaluateTemperature(reading decimal.Decimal, lo, hi *decimal.Decimal) TemperatureCheck {
	var dev decimal.Decimal
	switch {
	case lo != nil && reading.LessThan(*lo):
		dev = lo.Sub(reading)
	case hi != nil && reading.GreaterThan(*hi):
		dev = reading.Sub(*hi)
	default:
		return TemperatureCheck{}
	}
	sev := entity.AlertSeverityWarning
	if dev.GreaterThan(CriticalDeviation) {
		sev = entity.AlertSeverityCritical
	}
	return TemperatureCheck{OutOfRange: true, Deviation: dev, Severity: sev}
}
