package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-api/internal/application/navigation"
	apphttp "github.com/jhoicas/wms-api/internal/interfaces/http"
)

// Las rutas se prueban solo hasta los guardas: ninguna de estas peticiones llega a un caso de uso.
func newRouterApp(t *testing.T) *fiber.App {
	t.Helper()
	cat, err := navigation.Default()
	require.NoError(t, err)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Navigation: cat, JWTSecret: testJWTSecret})
	return app
}

func TestRouter_Guardas(t *testing.T) {
	app := newRouterApp(t)
	cases := []struct {
		method, path, role string
		want               int
	}{
		{http.MethodGet, "/api/inventory", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/users", "operador", http.StatusForbidden},
		{http.MethodGet, "/api/roles", "supervisor", http.StatusForbidden},
		{http.MethodPost, "/api/products", "operario", http.StatusForbidden},
		{http.MethodPost, "/api/sub-warehouses", "supervisor", http.StatusForbidden},
		{http.MethodPost, "/api/movements", "calidad", http.StatusForbidden},
		{http.MethodPost, "/api/alerts/x/resolve", "operador", http.StatusForbidden},
		{http.MethodPost, "/api/alerts/expiry-scan", "operador", http.StatusForbidden},
		{http.MethodPost, "/api/alerts/expiry-scan", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/inventory/export", "operador", http.StatusForbidden},
		{http.MethodPost, "/api/tasks", "calidad", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.role != "" {
			req.Header.Set("Authorization", tokenForRole(t, tc.role))
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tc.want, resp.StatusCode, "%s %s como %q", tc.method, tc.path, tc.role)
	}
}

func TestRouter_NavegacionSegunRol(t *testing.T) {
	app := newRouterApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me/navigation", nil)
	req.Header.Set("Authorization", tokenForRole(t, "Operador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []struct {
				Key string `json:"key"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, decodeJSON(resp, &body))
	assert.True(t, body.Success)

	keys := make([]string, 0, len(body.Data.Items))
	for _, it := range body.Data.Items {
		keys = append(keys, it.Key)
	}
	assert.Contains(t, keys, "home")
	assert.NotContains(t, keys, "admin", "un operador no ve el menú de administración")
	assert.NotContains(t, keys, "catalog")
}
