package excel_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/infrastructure/excel"
)

func TestExportInventory_FilasYEncabezados(t *testing.T) {
	exp := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := []*entity.InventoryView{
		{
			InventoryRecord: entity.InventoryRecord{Quantity: decimal.RequireFromString("12.5"), UpdatedAt: time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)},
			SKU:             "VAC-001", ProductName: "Vacuna", LotCode: "L1", LotStatus: "available",
			ExpiresAt: &exp, LocationCode: "CF-A1", SubWarehouseCode: "FRIO",
		},
		{
			InventoryRecord: entity.InventoryRecord{Quantity: decimal.NewFromInt(3)},
			SKU:             "GUA-010", ProductName: "Guantes", LotCode: "G7", LotStatus: "quarantine",
			LocationCode: "SECO-01", SubWarehouseCode: "SECO",
		},
	}

	out, err := excel.NewInventoryExporter().ExportInventory(context.Background(), rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(excel.Sheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "SKU", got[0][2])
	assert.Equal(t, []string{"FRIO", "CF-A1", "VAC-001", "Vacuna", "L1", "available", "2027-01-15", "12.5", "2026-05-01 08:30"}, got[1])
	assert.Equal(t, "", got[2][6], "sin vencimiento la celda queda vacía")
	assert.Equal(t, "3", got[2][7])
}

func TestExportInventory_Vacio(t *testing.T) {
	out, err := excel.NewInventoryExporter().ExportInventory(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(excel.Sheet)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
