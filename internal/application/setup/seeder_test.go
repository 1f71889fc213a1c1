package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-api/internal/application/setup"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	"github.com/jhoicas/wms-api/internal/domain/repository"
)

type roleRepo struct{ roles []*entity.Role }

func (r *roleRepo) Create(_ context.Context, role *entity.Role) error {
	r.roles = append(r.roles, role)
	return nil
}
func (r *roleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	for _, x := range r.roles {
		if x.ID == id {
			return x, nil
		}
	}
	return nil, nil
}
func (r *roleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	for _, x := range r.roles {
		if x.Name == name {
			return x, nil
		}
	}
	return nil, nil
}
func (r *roleRepo) List(context.Context) ([]*entity.Role, error) { return r.roles, nil }

type userRepo struct{ users []*entity.User }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}
func (r *userRepo) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }
func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *userRepo) Update(context.Context, *entity.User) error { return nil }
func (r *userRepo) List(context.Context, int, int) ([]*entity.User, error) {
	return r.users, nil
}
func (r *userRepo) Delete(context.Context, string) error { return nil }

type warehouseRepo struct{ items []*entity.SubWarehouse }

func (r *warehouseRepo) Create(_ context.Context, sw *entity.SubWarehouse) error {
	r.items = append(r.items, sw)
	return nil
}
func (r *warehouseRepo) GetByID(context.Context, string) (*entity.SubWarehouse, error) {
	return nil, nil
}
func (r *warehouseRepo) Update(context.Context, *entity.SubWarehouse) error { return nil }
func (r *warehouseRepo) List(context.Context, int, int) ([]*entity.SubWarehouse, error) {
	return r.items, nil
}
func (r *warehouseRepo) Delete(context.Context, string) error { return nil }

// locationRepo simula el índice único de código.
type locationRepo struct{ items map[string]*entity.Location }

func (r *locationRepo) Create(_ context.Context, loc *entity.Location) error {
	if _, ok := r.items[loc.Code]; ok {
		return domain.ErrDuplicate
	}
	r.items[loc.Code] = loc
	return nil
}
func (r *locationRepo) GetByID(context.Context, string) (*entity.Location, error) { return nil, nil }
func (r *locationRepo) Update(context.Context, *entity.Location) error            { return nil }
func (r *locationRepo) List(context.Context, repository.LocationFilter) ([]*entity.Location, error) {
	return nil, nil
}
func (r *locationRepo) Delete(context.Context, string) error { return nil }

type productRepo struct{ items map[string]*entity.Product }

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	r.items[p.SKU] = p
	return nil
}
func (r *productRepo) GetByID(context.Context, string) (*entity.Product, error) { return nil, nil }
func (r *productRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.items[sku], nil
}
func (r *productRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *productRepo) List(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *productRepo) Delete(context.Context, string) error { return nil }

type fixture struct {
	roles      *roleRepo
	users      *userRepo
	warehouses *warehouseRepo
	locations  *locationRepo
	products   *productRepo
	seeder     *setup.Seeder
}

func newFixture() *fixture {
	f := &fixture{
		roles:      &roleRepo{},
		users:      &userRepo{},
		warehouses: &warehouseRepo{},
		locations:  &locationRepo{items: map[string]*entity.Location{}},
		products:   &productRepo{items: map[string]*entity.Product{}},
	}
	f.seeder = setup.NewSeeder(f.roles, f.users, f.warehouses, f.locations, f.products)
	return f
}

var adminOpts = setup.Options{
	AdminName:     "Admin",
	AdminEmail:    " Admin@WMS.local ",
	AdminPassword: "cambiar123",
}

func TestRun_CreaRolesYAdministrador(t *testing.T) {
	f := newFixture()

	rep, err := f.seeder.Run(context.Background(), adminOpts)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{entity.RoleAdmin, entity.RoleSupervisor, entity.RoleOperator, entity.RoleQuality},
		rep.RolesCreated)
	assert.True(t, rep.AdminCreated)
	require.Len(t, f.users.users, 1)

	admin := f.users.users[0]
	assert.Equal(t, "admin@wms.local", admin.Email)
	assert.Equal(t, entity.UserStatusActive, admin.Status)
	adminRole, _ := f.roles.GetByName(context.Background(), entity.RoleAdmin)
	assert.Equal(t, adminRole.ID, admin.RoleID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("cambiar123")))
	assert.Zero(t, rep.DemoWarehouses, "sin --demo no se crean datos de ejemplo")
}

func TestRun_Idempotente(t *testing.T) {
	f := newFixture()
	opts := adminOpts
	opts.Demo = true

	_, err := f.seeder.Run(context.Background(), opts)
	require.NoError(t, err)

	rep, err := f.seeder.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, rep.RolesCreated)
	assert.False(t, rep.AdminCreated)
	assert.Zero(t, rep.DemoWarehouses)
	assert.Zero(t, rep.DemoLocations)
	assert.Zero(t, rep.DemoProducts)

	assert.Len(t, f.roles.roles, 4)
	assert.Len(t, f.users.users, 1)
	assert.Len(t, f.warehouses.items, 2)
	assert.Len(t, f.locations.items, 4)
	assert.Len(t, f.products.items, 2)
}

func TestRun_DemoCuartoFrio(t *testing.T) {
	f := newFixture()
	opts := adminOpts
	opts.Demo = true

	rep, err := f.seeder.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.DemoWarehouses)
	assert.Equal(t, 4, rep.DemoLocations)
	assert.Equal(t, 2, rep.DemoProducts)

	var cold *entity.SubWarehouse
	for _, sw := range f.warehouses.items {
		if sw.Code == "FRIO" {
			cold = sw
		}
	}
	require.NotNil(t, cold)
	require.True(t, cold.HasTemperatureRange())
	assert.Equal(t, "2", cold.MinTemperature.String())
	assert.Equal(t, "8", cold.MaxTemperature.String())
	assert.Equal(t, cold.ID, f.locations.items["CF-A1"].SubWarehouseID)
	assert.True(t, f.products.items["VAC-001"].RequiresColdChain)
}

func TestRun_SinPasswordNoCreaAdministrador(t *testing.T) {
	f := newFixture()
	opts := adminOpts
	opts.AdminPassword = ""

	_, err := f.seeder.Run(context.Background(), opts)
	assert.ErrorIs(t, err, setup.ErrAdminPasswordRequired)
	assert.Len(t, f.roles.roles, 4, "los roles se crean antes de validar el administrador")
}

func TestRun_AdministradorExistenteNoExigePassword(t *testing.T) {
	f := newFixture()
	_, err := f.seeder.Run(context.Background(), adminOpts)
	require.NoError(t, err)

	opts := adminOpts
	opts.AdminPassword = ""
	rep, err := f.seeder.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, rep.AdminCreated)
}

func TestRun_EmailVacio(t *testing.T) {
	f := newFixture()
	_, err := f.seeder.Run(context.Background(), setup.Options{AdminPassword: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
