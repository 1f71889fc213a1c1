package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func TestEvaluateTemperature(t *testing.T) {
	lo, hi := ptr(d("2")), ptr(d("8"))

	cases := []struct {
		name     string
		reading  string
		out      bool
		severity string
		dev      string
	}{
		{"dentro del rango", "5", false, "", "0"},
		{"límite inferior inclusivo", "2", false, "", "0"},
		{"límite superior inclusivo", "8", false, "", "0"},
		{"levemente alta", "9.5", true, entity.AlertSeverityWarning, "1.5"},
		{"desviación exacta de 2 es warning", "10", true, entity.AlertSeverityWarning, "2"},
		{"muy alta es crítica", "10.1", true, entity.AlertSeverityCritical, "2.1"},
		{"baja crítica", "-1", true, entity.AlertSeverityCritical, "3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.EvaluateTemperature(d(tc.reading), lo, hi)
			assert.Equal(t, tc.out, got.OutOfRange)
			assert.Equal(t, tc.severity, got.Severity)
			assert.True(t, d(tc.dev).Equal(got.Deviation), "desviación %s, esperada %s", got.Deviation, tc.dev)
		})
	}
}

func TestEvaluateTemperature_SinLimites(t *testing.T) {
	assert.False(t, inventory.EvaluateTemperature(d("40"), nil, nil).OutOfRange)
	assert.True(t, inventory.EvaluateTemperature(d("40"), nil, ptr(d("25"))).OutOfRange)
	assert.False(t, inventory.EvaluateTemperature(d("-30"), nil, ptr(d("25"))).OutOfRange)
}

func TestStockAfter(t *testing.T) {
	next, ok := inventory.StockAfter(d("10"), d("-4"))
	assert.True(t, ok)
	assert.True(t, d("6").Equal(next))

	next, ok = inventory.StockAfter(d("3"), d("-4"))
	assert.False(t, ok)
	assert.True(t, d("3").Equal(next), "en error la existencia no cambia")
}

func TestIsBelowMinimum(t *testing.T) {
	assert.True(t, inventory.IsBelowMinimum(d("4"), d("5")))
	assert.False(t, inventory.IsBelowMinimum(d("5"), d("5")))
	assert.False(t, inventory.IsBelowMinimum(d("0"), d("0")), "mínimo 0 desactiva la alerta")
}
