// Package setup carga los datos iniciales del sistema: roles base, usuario administrador
// y, opcionalmente, una bodega de demostración.
package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// ErrAdminPasswordRequired se devuelve si hay que crear el administrador y no hay contraseña configurada.
var ErrAdminPasswordRequired = errors.New("setup: SEED_ADMIN_PASSWORD es obligatorio para crear el administrador")

// BaseRoles roles que el sistema espera encontrar.
var BaseRoles = []entity.Role{
	{Name: entity.RoleAdmin, Description: "Acceso total al sistema"},
	{Name: entity.RoleSupervisor, Description: "Supervisa tareas, reposiciones y maestros"},
	{Name: entity.RoleOperator, Description: "Ejecuta movimientos, recepciones y tareas asignadas"},
	{Name: entity.RoleQuality, Description: "Registra temperaturas y resuelve alertas"},
}

// Options parámetros de la carga inicial.
type Options struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	Demo          bool
}

// Report resume lo que se creó en esta ejecución (lo existente se omite).
type Report struct {
	RolesCreated   []string
	AdminCreated   bool
	DemoWarehouses int
	DemoLocations  int
	DemoProducts   int
}

// Seeder carga datos iniciales de forma idempotente.
type Seeder struct {
	roles      repository.RoleRepository
	users      repository.UserRepository
	warehouses repository.SubWarehouseRepository
	locations  repository.LocationRepository
	products   repository.ProductRepository
	now        func() time.Time
}

// NewSeeder construye el seeder a partir de los repositorios.
func NewSeeder(
	roles repository.RoleRepository,
	users repository.UserRepository,
	warehouses repository.SubWarehouseRepository,
	locations repository.LocationRepository,
	products repository.ProductRepository,
) *Seeder {
	return &Seeder{
		roles:      roles,
		users:      users,
		warehouses: warehouses,
		locations:  locations,
		products:   products,
		now:        time.Now,
	}
}

// Run ejecuta la carga. Puede repetirse sin duplicar registros.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Report, error) {
	rep := &Report{}
	adminRoleID := ""
	for _, base := range BaseRoles {
		role, created, err := s.ensureRole(ctx, base)
		if err != nil {
			return rep, err
		}
		if created {
			rep.RolesCreated = append(rep.RolesCreated, role.Name)
		}
		if role.Name == entity.RoleAdmin {
			adminRoleID = role.ID
		}
	}

	created, err := s.ensureAdmin(ctx, adminRoleID, opts)
	if err != nil {
		return rep, err
	}
	rep.AdminCreated = created

	if opts.Demo {
		if err := s.seedDemo(ctx, rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func (s *Seeder) ensureRole(ctx context.Context, base entity.Role) (*entity.Role, bool, error) {
	existing, err := s.roles.GetByName(ctx, base.Name)
	if err != nil {
		return nil, false, fmt.Errorf("setup: rol %s: %w", base.Name, err)
	}
	if existing != nil {
		return existing, false, nil
	}
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        base.Name,
		Description: base.Description,
		CreatedAt:   s.now(),
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, false, fmt.Errorf("setup: crear rol %s: %w", base.Name, err)
	}
	return role, true, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, roleID string, opts Options) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	if email == "" {
		return false, fmt.Errorf("setup: SEED_ADMIN_EMAIL vacío: %w", domain.ErrInvalidInput)
	}
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("setup: buscar administrador: %w", err)
	}
	if existing != nil {
		return false, nil
	}
	if opts.AdminPassword == "" {
		return false, ErrAdminPasswordRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	name := strings.TrimSpace(opts.AdminName)
	if name == "" {
		name = "Administrador"
	}
	now := s.now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		RoleName:     entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrEmailAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("setup: crear administrador: %w", err)
	}
	return true, nil
}

type demoLocation struct {
	code, zone, typ string
	capacity        int64
}

type demoWarehouse struct {
	code, name, description string
	min, max                *decimal.Decimal
	locations               []demoLocation
}

func temp(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func demoWarehouses() []demoWarehouse {
	return []demoWarehouse{
		{
			code: "FRIO", name: "Cuarto frío", description: "Cadena de frío 2 a 8 °C",
			min: temp("2"), max: temp("8"),
			locations: []demoLocation{
				{code: "CF-A1", zone: "A", typ: entity.LocationTypeCold, capacity: 200},
				{code: "CF-A2", zone: "A", typ: entity.LocationTypeCold, capacity: 200},
			},
		},
		{
			code: "SECO", name: "Bodega seca", description: "Almacenamiento a temperatura ambiente",
			locations: []demoLocation{
				{code: "SC-R01", zone: "R", typ: entity.LocationTypeRack, capacity: 500},
				{code: "SC-MUELLE", zone: "M", typ: entity.LocationTypeDock, capacity: 1000},
			},
		},
	}
}

func demoProducts() []entity.Product {
	return []entity.Product{
		{SKU: "VAC-001", Barcode: "7701234000011", Name: "Vacuna demo 10 dosis", Unit: "caja",
			MinStock: decimal.NewFromInt(20), RequiresColdChain: true},
		{SKU: "JER-005", Barcode: "7701234000028", Name: "Jeringa 5 ml", Unit: "und",
			MinStock: decimal.NewFromInt(100)},
	}
}

func (s *Seeder) seedDemo(ctx context.Context, rep *Report) error {
	existing, err := s.warehouses.List(ctx, 1000, 0)
	if err != nil {
		return fmt.Errorf("setup: listar subbodegas: %w", err)
	}
	byCode := make(map[string]*entity.SubWarehouse, len(existing))
	for _, sw := range existing {
		byCode[sw.Code] = sw
	}

	now := s.now()
	for _, dw := range demoWarehouses() {
		sw, ok := byCode[dw.code]
		if !ok {
			sw = &entity.SubWarehouse{
				ID:             uuid.New().String(),
				Code:           dw.code,
				Name:           dw.name,
				Description:    dw.description,
				MinTemperature: dw.min,
				MaxTemperature: dw.max,
				Active:         true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := s.warehouses.Create(ctx, sw); err != nil {
				return fmt.Errorf("setup: crear subbodega %s: %w", dw.code, err)
			}
			rep.DemoWarehouses++
		}
		for _, dl := range dw.locations {
			loc := &entity.Location{
				ID:             uuid.New().String(),
				SubWarehouseID: sw.ID,
				Code:           dl.code,
				Zone:           dl.zone,
				Type:           dl.typ,
				Capacity:       decimal.NewFromInt(dl.capacity),
				Active:         true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := s.locations.Create(ctx, loc); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					continue
				}
				return fmt.Errorf("setup: crear ubicación %s: %w", dl.code, err)
			}
			rep.DemoLocations++
		}
	}

	for _, p := range demoProducts() {
		found, err := s.products.GetBySKU(ctx, p.SKU)
		if err != nil {
			return fmt.Errorf("setup: buscar producto %s: %w", p.SKU, err)
		}
		if found != nil {
			continue
		}
		product := p
		product.ID = uuid.New().String()
		product.Active = true
		product.CreatedAt = now
		product.UpdatedAt = now
		if err := s.products.Create(ctx, &product); err != nil {
			return fmt.Errorf("setup: crear producto %s: %w", p.SKU, err)
		}
		rep.DemoProducts++
	}
	return nil
}
