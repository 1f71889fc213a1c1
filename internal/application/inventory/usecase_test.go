package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/inventory"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
	"github.com/jhoicas/wms-api/pkg/logger"
)

const (
	userID    = "11111111-1111-1111-1111-111111111111"
	productID = "22222222-2222-2222-2222-222222222222"
	lotID     = "33333333-3333-3333-3333-333333333333"
	locA      = "44444444-4444-4444-4444-44444444444a"
	locB      = "44444444-4444-4444-4444-44444444444b"
	coldLoc   = "44444444-4444-4444-4444-44444444444c"
	dryWh     = "55555555-5555-5555-5555-55555555555d"
	coldWh    = "55555555-5555-5555-5555-55555555555c"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixture struct {
	db       *memDB
	notifier *recordingNotifier
	codes    *seqCodes
	movs     *inventory.MovementUseCase
	recs     *inventory.ReceptionUseCase
	reps     *inventory.ReplenishmentUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newMemDB()
	db.warehouses[dryWh] = &entity.SubWarehouse{ID: dryWh, Code: "SECO", Name: "Zona seca", Active: true}
	db.warehouses[coldWh] = &entity.SubWarehouse{ID: coldWh, Code: "FRIO", Name: "Cámara fría", MinTemperature: decPtr("2"), MaxTemperature: decPtr("8"), Active: true}
	db.locations[locA] = &entity.Location{ID: locA, SubWarehouseID: dryWh, Code: "A-01", Type: entity.LocationTypeRack, Active: true}
	db.locations[locB] = &entity.Location{ID: locB, SubWarehouseID: dryWh, Code: "B-01", Type: entity.LocationTypeRack, Active: true}
	db.locations[coldLoc] = &entity.Location{ID: coldLoc, SubWarehouseID: coldWh, Code: "F-01", Type: entity.LocationTypeCold, Active: true}
	db.products[productID] = &entity.Product{ID: productID, SKU: "VAC-01", Name: "Vacuna", MinStock: dec("10"), RequiresColdChain: true, Active: true}
	db.lots[lotID] = &entity.Lot{ID: lotID, ProductID: productID, Code: "L1", Status: entity.LotStatusAvailable}

	f := &fixture{db: db, notifier: &recordingNotifier{}, codes: &seqCodes{}}
	tx := memTx{db: db}
	log := logger.Nop()
	f.movs = inventory.NewMovementUseCase(tx, productRepo{db}, lotRepo{db}, locationRepo{db}, movementRepo{db}, f.notifier, log)
	f.recs = inventory.NewReceptionUseCase(tx, productRepo{db}, locationRepo{db}, warehouseRepo{db}, receptionRepo{db}, f.codes, f.notifier, log)
	f.reps = inventory.NewReplenishmentUseCase(tx, replenishmentRepo{db}, lotRepo{db}, locationRepo{db}, f.codes, log)
	return f
}

func (f *fixture) move(t *testing.T, typ, from, to, qty string) error {
	t.Helper()
	_, err := f.movs.Register(context.Background(), userID, dto.RegisterMovementRequest{
		Type: typ, ProductID: productID, LotID: lotID,
		FromLocationID: from, ToLocationID: to, Quantity: dec(qty),
	})
	return err
}

func TestRegister_EntradaYSalida(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.move(t, entity.MovementTypeIN, "", locA, "50"))
	require.NoError(t, f.move(t, entity.MovementTypeOUT, locA, "", "20"))

	assert.True(t, f.db.qty(lotID, locA).Equal(dec("30")))
	assert.Len(t, f.db.movements, 2)
	assert.Empty(t, f.db.alerts, "30 sigue por encima del mínimo 10")
}

func TestRegister_SalidaSinStockNoCambiaNada(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, entity.MovementTypeIN, "", locA, "5"))

	err := f.move(t, entity.MovementTypeOUT, locA, "", "6")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.db.qty(lotID, locA).Equal(dec("5")))
	assert.Len(t, f.db.movements, 1, "el movimiento fallido no se guarda")
}

func TestRegister_TrasladoAtomico(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, entity.MovementTypeIN, "", locA, "12"))

	require.NoError(t, f.move(t, entity.MovementTypeTRANSFER, locA, locB, "7"))
	assert.True(t, f.db.qty(lotID, locA).Equal(dec("5")))
	assert.True(t, f.db.qty(lotID, locB).Equal(dec("7")))

	// Origen insuficiente: el destino no debe quedar incrementado.
	err := f.move(t, entity.MovementTypeTRANSFER, locB, locA, "8")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.db.qty(lotID, locA).Equal(dec("5")))
	assert.True(t, f.db.qty(lotID, locB).Equal(dec("7")))
}

func TestRegister_AjusteConSigno(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, entity.MovementTypeADJUSTMENT, "", locA, "15"))
	require.NoError(t, f.move(t, entity.MovementTypeADJUSTMENT, "", locA, "-3"))
	assert.True(t, f.db.qty(lotID, locA).Equal(dec("12")))

	err := f.move(t, entity.MovementTypeADJUSTMENT, "", locA, "-13")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRegister_Validaciones(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name          string
		typ, from, to string
		qty           string
	}{
		{"IN sin destino", entity.MovementTypeIN, "", "", "1"},
		{"OUT cantidad negativa", entity.MovementTypeOUT, locA, "", "-1"},
		{"TRANSFER misma ubicación", entity.MovementTypeTRANSFER, locA, locA, "1"},
		{"ajuste cero", entity.MovementTypeADJUSTMENT, "", locA, "0"},
		{"tipo desconocido", "LOAN", "", locA, "1"},
	}
	for _, tc := range cases {
		err := f.move(t, tc.typ, tc.from, tc.to, tc.qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc.name)
	}
}

func TestRegister_LoteDeOtroProducto(t *testing.T) {
	f := newFixture(t)
	f.db.lots["otro"] = &entity.Lot{ID: "otro", ProductID: "x", Code: "L9", Status: entity.LotStatusAvailable}

	_, err := f.movs.Register(context.Background(), userID, dto.RegisterMovementRequest{
		Type: entity.MovementTypeIN, ProductID: productID, LotID: "otro", ToLocationID: locA, Quantity: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_SalidaDeLoteEnCuarentena(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, entity.MovementTypeIN, "", locA, "5"))
	f.db.lots[lotID].Status = entity.LotStatusQuarantine

	err := f.move(t, entity.MovementTypeOUT, locA, "", "1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegister_AlertaStockBajoAlCruzarMinimo(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, entity.MovementTypeIN, "", locA, "12"))

	require.NoError(t, f.move(t, entity.MovementTypeOUT, locA, "", "4"))
	require.Len(t, f.db.alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, f.db.alerts[0].Type)
	assert.Equal(t, productID, *f.db.alerts[0].ProductID)
	require.Len(t, f.notifier.alerts, 1, "la alerta se notifica tras el commit")

	// Ya por debajo: otra salida no repite la alerta.
	require.NoError(t, f.move(t, entity.MovementTypeOUT, locA, "", "1"))
	assert.Len(t, f.db.alerts, 1)
}

func TestReception_CreaLoteStockYMovimiento(t *testing.T) {
	f := newFixture(t)
	f.db.products[productID].RequiresColdChain = false

	resp, err := f.recs.Create(context.Background(), userID, dto.CreateReceptionRequest{
		SupplierName: "Proveedor S.A.", ProductID: productID, LotCode: "L-NEW",
		LocationID: locA, Quantity: dec("40"),
	})
	require.NoError(t, err)
	assert.Equal(t, "REC-1", resp.Code)
	assert.False(t, resp.Quarantined)

	lot, _ := lotRepo{f.db}.GetByProductAndCode(context.Background(), productID, "L-NEW")
	require.NotNil(t, lot)
	assert.Equal(t, entity.LotStatusAvailable, lot.Status)
	assert.True(t, f.db.qty(lot.ID, locA).Equal(dec("40")))
	require.Len(t, f.db.movements, 1)
	assert.Equal(t, entity.MovementTypeIN, f.db.movements[0].Type)
	assert.Equal(t, resp.ID, *f.db.movements[0].ReferenceID)
}

func TestReception_TemperaturaFueraDeRangoPoneCuarentena(t *testing.T) {
	f := newFixture(t)

	resp, err := f.recs.Create(context.Background(), userID, dto.CreateReceptionRequest{
		SupplierName: "Frío Ltda", ProductID: productID, LotCode: "L1",
		LocationID: coldLoc, Quantity: dec("10"), Temperature: decPtr("11.5"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Quarantined)
	assert.Equal(t, entity.LotStatusQuarantine, f.db.lots[lotID].Status, "lote existente pasa a cuarentena")
	require.Len(t, f.db.alerts, 1)
	assert.Equal(t, entity.AlertTypeTemperature, f.db.alerts[0].Type)
	assert.Equal(t, entity.AlertSeverityCritical, f.db.alerts[0].Severity)
	assert.Len(t, f.notifier.alerts, 1)
}

func TestReception_CadenaDeFrioSinTemperatura(t *testing.T) {
	f := newFixture(t)
	_, err := f.recs.Create(context.Background(), userID, dto.CreateReceptionRequest{
		SupplierName: "Frío Ltda", ProductID: productID, LotCode: "L1",
		LocationID: coldLoc, Quantity: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReception_CodigoDeLoteEnBlanco(t *testing.T) {
	f := newFixture(t)
	f.db.products[productID].RequiresColdChain = false

	_, err := f.recs.Create(context.Background(), userID, dto.CreateReceptionRequest{
		SupplierName: "Proveedor S.A.", ProductID: productID, LotCode: "   ",
		LocationID: locA, Quantity: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, f.db.lots, 1, "no se crea un lote sin código")
	assert.Empty(t, f.db.movements)
	assert.Empty(t, f.db.receptions)
}

func TestReplenishment_CompletarYCancelar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.move(t, entity.MovementTypeIN, "", locA, "20"))

	rep, err := f.reps.Create(ctx, userID, dto.CreateReplenishmentRequest{
		ProductID: productID, LotID: lotID, FromLocationID: locA, ToLocationID: locB, Quantity: dec("8"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReplenishmentStatusPending, rep.Status)

	done, err := f.reps.Complete(ctx, userID, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReplenishmentStatusCompleted, done.Status)
	assert.True(t, f.db.qty(lotID, locA).Equal(dec("12")))
	assert.True(t, f.db.qty(lotID, locB).Equal(dec("8")))

	_, err = f.reps.Complete(ctx, userID, rep.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "solo las pendientes se completan")
	_, err = f.reps.Cancel(ctx, userID, rep.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReplenishment_SinStockQuedaPendiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rep, err := f.reps.Create(ctx, userID, dto.CreateReplenishmentRequest{
		ProductID: productID, LotID: lotID, FromLocationID: locA, ToLocationID: locB, Quantity: dec("3"),
	})
	require.NoError(t, err)

	_, err = f.reps.Complete(ctx, userID, rep.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	got, err := f.reps.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReplenishmentStatusPending, got.Status)
}

func TestQuery_StockBajoYExporte(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.move(t, entity.MovementTypeIN, "", locA, "4"))

	exp := &fakeExporter{}
	q := inventory.NewQueryUseCase(inventoryRepo{f.db}, exp)

	low, err := q.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.True(t, low[0].Missing.Equal(dec("6")))

	data, err := q.Export(context.Background(), repository.InventoryFilter{ProductID: productID})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 1, exp.rows)
}
