package postgres

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-api/pkg/config"
)

func TestBuildPoolConfig_Tamanos(t *testing.T) {
	pc, err := buildPoolConfig(config.DBConfig{
		Host: "db", Port: 5432, User: "wms", Password: "secreto", DBName: "wms", SSLMode: "disable",
		MaxConns: 10, MinConns: 3, ConnectTimeout: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, 7*time.Second, pc.ConnConfig.ConnectTimeout)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "wms", pc.ConnConfig.Database)
	assert.NotNil(t, pc.AfterConnect, "el codec decimal se registra al conectar")
}

func TestBuildPoolConfig_DatabaseURLTienePrioridad(t *testing.T) {
	pc, err := buildPoolConfig(config.DBConfig{
		DatabaseURL: "postgres://app:x@primario:6543/bodega?sslmode=disable",
		Host:        "ignorado",
	})
	require.NoError(t, err)
	assert.Equal(t, "primario", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Equal(t, "bodega", pc.ConnConfig.Database)
}

func TestBuildPoolConfig_MinMayorQueMaxSeIgnora(t *testing.T) {
	pc, err := buildPoolConfig(config.DBConfig{
		DatabaseURL: "postgres://app:x@db:5432/wms?sslmode=disable",
		MaxConns:    2,
		MinConns:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), pc.MaxConns)
	assert.LessOrEqual(t, pc.MinConns, pc.MaxConns)
}

func TestBuildPoolConfig_IPv4SoloConBandera(t *testing.T) {
	base := config.DBConfig{DatabaseURL: "postgres://app:x@db:5432/wms?sslmode=disable"}

	ipv4 := reflect.ValueOf(dialIPv4).Pointer()

	pc, err := buildPoolConfig(base)
	require.NoError(t, err)
	assert.NotEqual(t, ipv4, reflect.ValueOf(pc.ConnConfig.DialFunc).Pointer(), "sin DB_FORCE_IPV4 se usa el dial de pgx")

	base.ForceIPv4 = true
	pc, err = buildPoolConfig(base)
	require.NoError(t, err)
	assert.Equal(t, ipv4, reflect.ValueOf(pc.ConnConfig.DialFunc).Pointer())
}

func TestBuildPoolConfig_DSNInvalido(t *testing.T) {
	_, err := buildPoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}
