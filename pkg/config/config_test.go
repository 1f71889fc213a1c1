package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "wms-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.CORS.AllowedOriginPatterns)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.False(t, cfg.SMTP.Enabled(), "sin SMTP_HOST las notificaciones quedan deshabilitadas")
}

func TestLoad_ListasDesdeEntorno(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://wms.example.com, ,https://admin.example.com")
	t.Setenv("CORS_ALLOWED_ORIGIN_PATTERNS", `https://*\.vercel\.app`)
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("ALERT_RECIPIENTS", "calidad@example.com,jefe@example.com")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://wms.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{`https://*\.vercel\.app`}, cfg.CORS.AllowedOriginPatterns)
	assert.False(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, []string{"calidad@example.com", "jefe@example.com"}, cfg.Alerts.Recipients)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_ExpiracionInvalida(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "0")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "wms", Password: "p@ss:w/rd", DBName: "wms", SSLMode: "disable"}
	assert.Equal(t, "postgres://wms:p%40ss%3Aw%2Frd@db:5432/wms?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
