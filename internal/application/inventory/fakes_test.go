package inventory_test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-api/internal/application/inventory"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// memDB almacén en memoria que emula las tablas tocadas por el motor de inventario.
// El TxRunner de prueba toma una copia antes de fn y la restaura si fn falla.
type memDB struct {
	mu             sync.Mutex
	products       map[string]*entity.Product
	lots           map[string]*entity.Lot
	locations      map[string]*entity.Location
	warehouses     map[string]*entity.SubWarehouse
	stock          map[string]*entity.InventoryRecord // lotID|locationID
	movements      []*entity.Movement
	alerts         []*entity.Alert
	receptions     map[string]*entity.Reception
	replenishments map[string]*entity.Replenishment
}

func newMemDB() *memDB {
	return &memDB{
		products:       map[string]*entity.Product{},
		lots:           map[string]*entity.Lot{},
		locations:      map[string]*entity.Location{},
		warehouses:     map[string]*entity.SubWarehouse{},
		stock:          map[string]*entity.InventoryRecord{},
		receptions:     map[string]*entity.Reception{},
		replenishments: map[string]*entity.Replenishment{},
	}
}

func stockKey(lotID, locationID string) string { return lotID + "|" + locationID }

func (db *memDB) qty(lotID, locationID string) decimal.Decimal {
	if r, ok := db.stock[stockKey(lotID, locationID)]; ok {
		return r.Quantity
	}
	return decimal.Zero
}

type snapshot struct {
	lots           map[string]entity.Lot
	stock          map[string]entity.InventoryRecord
	movements      int
	alerts         int
	receptions     map[string]*entity.Reception
	replenishments map[string]entity.Replenishment
}

func (db *memDB) snapshot() snapshot {
	s := snapshot{
		lots:           map[string]entity.Lot{},
		stock:          map[string]entity.InventoryRecord{},
		movements:      len(db.movements),
		alerts:         len(db.alerts),
		receptions:     map[string]*entity.Reception{},
		replenishments: map[string]entity.Replenishment{},
	}
	for k, v := range db.lots {
		s.lots[k] = *v
	}
	for k, v := range db.stock {
		s.stock[k] = *v
	}
	for k, v := range db.receptions {
		s.receptions[k] = v
	}
	for k, v := range db.replenishments {
		s.replenishments[k] = *v
	}
	return s
}

func (db *memDB) restore(s snapshot) {
	db.lots = map[string]*entity.Lot{}
	for k, v := range s.lots {
		v := v
		db.lots[k] = &v
	}
	db.stock = map[string]*entity.InventoryRecord{}
	for k, v := range s.stock {
		v := v
		db.stock[k] = &v
	}
	db.movements = db.movements[:s.movements]
	db.alerts = db.alerts[:s.alerts]
	db.receptions = s.receptions
	db.replenishments = map[string]*entity.Replenishment{}
	for k, v := range s.replenishments {
		v := v
		db.replenishments[k] = &v
	}
}

// --- TxRunner ---

type memTx struct{ db *memDB }

func (t memTx) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	snap := t.db.snapshot()
	err := fn(inventory.TxRepos{
		Movements:      movementRepo{t.db},
		Inventory:      inventoryRepo{t.db},
		Lots:           lotRepo{t.db},
		Receptions:     receptionRepo{t.db},
		Replenishments: replenishmentRepo{t.db},
		Alerts:         alertRepo{t.db},
	})
	if err != nil {
		t.db.restore(snap)
	}
	return err
}

// --- repos ---

type productRepo struct{ db *memDB }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.db.products[p.ID] = p
	return nil
}
func (r productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.db.products[id], nil
}
func (r productRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.db.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.db.products[p.ID] = p
	return nil
}
func (r productRepo) List(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r productRepo) Delete(_ context.Context, id string) error {
	delete(r.db.products, id)
	return nil
}

type lotRepo struct{ db *memDB }

func (r lotRepo) Create(_ context.Context, l *entity.Lot) error {
	cp := *l
	r.db.lots[l.ID] = &cp
	return nil
}
func (r lotRepo) GetByID(_ context.Context, id string) (*entity.Lot, error) {
	if l, ok := r.db.lots[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}
func (r lotRepo) GetByProductAndCode(_ context.Context, productID, code string) (*entity.Lot, error) {
	for _, l := range r.db.lots {
		if l.ProductID == productID && l.Code == code {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}
func (r lotRepo) Update(_ context.Context, l *entity.Lot) error {
	cp := *l
	r.db.lots[l.ID] = &cp
	return nil
}
func (r lotRepo) List(context.Context, string, int, int) ([]*entity.Lot, error) { return nil, nil }
func (r lotRepo) ListExpiring(context.Context, time.Time) ([]*entity.Lot, error) {
	return nil, nil
}
func (r lotRepo) Delete(_ context.Context, id string) error { delete(r.db.lots, id); return nil }

type locationRepo struct{ db *memDB }

func (r locationRepo) Create(_ context.Context, l *entity.Location) error {
	r.db.locations[l.ID] = l
	return nil
}
func (r locationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.db.locations[id], nil
}
func (r locationRepo) Update(_ context.Context, l *entity.Location) error {
	r.db.locations[l.ID] = l
	return nil
}
func (r locationRepo) List(context.Context, repository.LocationFilter) ([]*entity.Location, error) {
	return nil, nil
}
func (r locationRepo) Delete(_ context.Context, id string) error {
	delete(r.db.locations, id)
	return nil
}

type warehouseRepo struct{ db *memDB }

func (r warehouseRepo) Create(_ context.Context, s *entity.SubWarehouse) error {
	r.db.warehouses[s.ID] = s
	return nil
}
func (r warehouseRepo) GetByID(_ context.Context, id string) (*entity.SubWarehouse, error) {
	return r.db.warehouses[id], nil
}
func (r warehouseRepo) Update(_ context.Context, s *entity.SubWarehouse) error {
	r.db.warehouses[s.ID] = s
	return nil
}
func (r warehouseRepo) List(context.Context, int, int) ([]*entity.SubWarehouse, error) {
	return nil, nil
}
func (r warehouseRepo) Delete(_ context.Context, id string) error {
	delete(r.db.warehouses, id)
	return nil
}

// inventoryRepo guarda existencias en memoria. memTx serializa las transacciones con un mutex,
// así que aquí no se reproduce la carrera del primer depósito en una pareja lote+ubicación nueva;
// esa garantía depende del INSERT ... ON CONFLICT DO NOTHING + SELECT FOR UPDATE de
// postgres.InventoryRepo.LockForUpdate (ver inventory_repository_test.go con DB real).
type inventoryRepo struct{ db *memDB }

func (r inventoryRepo) LockForUpdate(_ context.Context, productID, lotID, locationID string) (*entity.InventoryRecord, error) {
	key := stockKey(lotID, locationID)
	rec, ok := r.db.stock[key]
	if !ok {
		rec = &entity.InventoryRecord{
			ID: uuid.New().String(), ProductID: productID, LotID: lotID, LocationID: locationID, Quantity: decimal.Zero,
		}
		r.db.stock[key] = rec
	}
	cp := *rec
	return &cp, nil
}
func (r inventoryRepo) SetQuantity(_ context.Context, rec *entity.InventoryRecord) error {
	cur, ok := r.db.stock[stockKey(rec.LotID, rec.LocationID)]
	if !ok || cur.ID != rec.ID {
		return domain.ErrNotFound
	}
	cur.Quantity = rec.Quantity
	cur.UpdatedAt = rec.UpdatedAt
	return nil
}
func (r inventoryRepo) TotalByProduct(_ context.Context, productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range r.db.stock {
		if rec.ProductID == productID {
			total = total.Add(rec.Quantity)
		}
	}
	return total, nil
}
func (r inventoryRepo) List(_ context.Context, f repository.InventoryFilter) ([]*entity.InventoryView, error) {
	keys := make([]string, 0, len(r.db.stock))
	for k := range r.db.stock {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []*entity.InventoryView
	for _, k := range keys {
		rec := r.db.stock[k]
		if f.ProductID != "" && rec.ProductID != f.ProductID {
			continue
		}
		v := &entity.InventoryView{InventoryRecord: *rec}
		if p := r.db.products[rec.ProductID]; p != nil {
			v.SKU, v.ProductName = p.SKU, p.Name
		}
		if l := r.db.lots[rec.LotID]; l != nil {
			v.LotCode, v.LotStatus = l.Code, l.Status
		}
		out = append(out, v)
	}
	return out, nil
}
func (r inventoryRepo) BelowMinimum(ctx context.Context) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, p := range r.db.products {
		total, _ := r.TotalByProduct(ctx, p.ID)
		if p.MinStock.IsPositive() && total.LessThan(p.MinStock) {
			out = append(out, &entity.StockLevel{ProductID: p.ID, SKU: p.SKU, ProductName: p.Name, Quantity: total, MinStock: p.MinStock})
		}
	}
	return out, nil
}
func (r inventoryRepo) CountByLocation(_ context.Context, locationID string) (int, error) {
	n := 0
	for _, rec := range r.db.stock {
		if rec.LocationID == locationID && rec.Quantity.IsPositive() {
			n++
		}
	}
	return n, nil
}

type movementRepo struct{ db *memDB }

func (r movementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.db.movements = append(r.db.movements, m)
	return nil
}
func (r movementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.db.movements {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type alertRepo struct{ db *memDB }

func (r alertRepo) Create(_ context.Context, a *entity.Alert) error {
	r.db.alerts = append(r.db.alerts, a)
	return nil
}
func (r alertRepo) GetByID(_ context.Context, id string) (*entity.Alert, error) {
	for _, a := range r.db.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (r alertRepo) MarkResolved(context.Context, string, string, time.Time) (*entity.Alert, error) {
	return nil, nil
}
func (r alertRepo) List(context.Context, repository.AlertFilter) ([]*entity.Alert, error) {
	return r.db.alerts, nil
}

type receptionRepo struct{ db *memDB }

func (r receptionRepo) Create(_ context.Context, rec *entity.Reception) error {
	r.db.receptions[rec.ID] = rec
	return nil
}
func (r receptionRepo) GetByID(_ context.Context, id string) (*entity.Reception, error) {
	return r.db.receptions[id], nil
}
func (r receptionRepo) List(context.Context, int, int) ([]*entity.Reception, error) {
	out := make([]*entity.Reception, 0, len(r.db.receptions))
	for _, rec := range r.db.receptions {
		out = append(out, rec)
	}
	return out, nil
}

type replenishmentRepo struct{ db *memDB }

func (r replenishmentRepo) Create(_ context.Context, x *entity.Replenishment) error {
	cp := *x
	r.db.replenishments[x.ID] = &cp
	return nil
}
func (r replenishmentRepo) GetByID(_ context.Context, id string) (*entity.Replenishment, error) {
	if x, ok := r.db.replenishments[id]; ok {
		cp := *x
		return &cp, nil
	}
	return nil, nil
}
func (r replenishmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Replenishment, error) {
	return r.GetByID(ctx, id)
}
func (r replenishmentRepo) Update(_ context.Context, x *entity.Replenishment) error {
	cp := *x
	r.db.replenishments[x.ID] = &cp
	return nil
}
func (r replenishmentRepo) List(context.Context, string, int, int) ([]*entity.Replenishment, error) {
	return nil, nil
}

// --- puertos auxiliares ---

type seqCodes struct{ n int }

func (s *seqCodes) Code(prefix string) string {
	s.n++
	return prefix + "-" + strconv.Itoa(s.n)
}

type recordingNotifier struct{ alerts []*entity.Alert }

func (n *recordingNotifier) NotifyAlert(_ context.Context, a *entity.Alert) error {
	n.alerts = append(n.alerts, a)
	return nil
}

type fakeExporter struct{ rows int }

func (e *fakeExporter) ExportInventory(_ context.Context, rows []*entity.InventoryView) ([]byte, error) {
	e.rows = len(rows)
	return []byte("xlsx"), nil
}
