package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-api/internal/application/auth"
	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/domain"
	"github.com/jhoicas/wms-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/wms-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

type userRepo struct{ users []*entity.User }

func (r *userRepo) Create(context.Context, *entity.User) error { return nil }
func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *userRepo) Update(context.Context, *entity.User) error             { return nil }
func (r *userRepo) List(context.Context, int, int) ([]*entity.User, error) { return r.users, nil }
func (r *userRepo) Delete(context.Context, string) error                   { return nil }

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &userRepo{users: []*entity.User{
		{ID: "u1", Email: "sup@wms.test", PasswordHash: string(hash), RoleName: "Supervisor", Status: entity.UserStatusActive},
		{ID: "u2", Email: "baja@wms.test", PasswordHash: string(hash), RoleName: "operador", Status: entity.UserStatusInactive},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "wms-test"})
}

func TestLogin_OK(t *testing.T) {
	uc := newAuth(t)
	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "SUP@wms.test", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.True(t, resp.User.Capabilities.IsSupervisor)

	userID, role, err := pkgjwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "Supervisor", role)
}

func TestLogin_Errores(t *testing.T) {
	uc := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "sup@wms.test", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@wms.test", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "no se revela si el email existe")

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "baja@wms.test", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe(t *testing.T) {
	uc := newAuth(t)
	me, err := uc.Me(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "sup@wms.test", me.Email)

	_, err = uc.Me(context.Background(), "borrado")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
