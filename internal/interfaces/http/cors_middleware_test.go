package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/wms-api/internal/interfaces/http"
	"github.com/jhoicas/wms-api/pkg/config"
)

var corsCfg = config.CORSConfig{
	AllowedOrigins:        []string{"http://localhost:3000", "https://wms.example.com"},
	AllowedOriginPatterns: []string{`https://*\.vercel\.app`, "https://*.ngrok.io"},
	AllowedMethods:        []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders:        []string{"Content-Type", "Authorization"},
	ExposedHeaders:        []string{"Content-Disposition"},
	AllowCredentials:      true,
	MaxAge:                600,
}

func TestOriginMatcher_ListaExactaSiemprePermitida(t *testing.T) {
	m, err := apphttp.NewOriginMatcher(corsCfg.AllowedOrigins, corsCfg.AllowedOriginPatterns)
	require.NoError(t, err)
	for _, o := range corsCfg.AllowedOrigins {
		assert.True(t, m.Allowed(o), "origen de la lista exacta: %s", o)
	}
}

func TestOriginMatcher_Patrones(t *testing.T) {
	m, err := apphttp.NewOriginMatcher(corsCfg.AllowedOrigins, corsCfg.AllowedOriginPatterns)
	require.NoError(t, err)

	allowed := []string{
		"https://wms-git-main.vercel.app",
		"https://a.b.vercel.app",
		"https://abc123.ngrok.io",
	}
	for _, o := range allowed {
		assert.True(t, m.Allowed(o), o)
	}

	rejected := []string{
		"",
		"http://wms-git-main.vercel.app",        // esquema distinto
		"https://x.vercelxapp",                  // el punto es literal
		"https://evil.com/https://x.vercel.app", // el comodín no cruza '/'
		"https://evil.com?.vercel.app",          // ni '?'
		"https://evil.com#.vercel.app",          // ni '#'
		"https://x.vercel.app.evil.com",         // anclado al final
		"http://localhost:3001",
		"https://wms.example.com.evil.com",
	}
	for _, o := range rejected {
		assert.False(t, m.Allowed(o), o)
	}
}

func TestOriginMatcher_Asterisco(t *testing.T) {
	m, err := apphttp.NewOriginMatcher([]string{"*"}, nil)
	require.NoError(t, err)
	assert.True(t, m.Allowed("https://cualquiera.test"))
	assert.False(t, m.Allowed(""), "sin Origin no hay CORS")
}

func TestPatternToRegexp(t *testing.T) {
	assert.Equal(t, `^https://[^/?#]*\.vercel\.app$`, apphttp.PatternToRegexp(`https://*\.vercel\.app`))
	assert.Equal(t, `^https://[^/?#]*\.vercel\.app$`, apphttp.PatternToRegexp(`https://*.vercel.app`))
	assert.Equal(t, `^http://localhost:\\d$`, apphttp.PatternToRegexp(`http://localhost:\d`),
		"la barra que no precede a un punto se escapa como literal")
}

func newCORSApp(t *testing.T, reached *int) *fiber.App {
	t.Helper()
	mw, err := apphttp.CORSMiddleware(corsCfg)
	require.NoError(t, err)
	app := fiber.New()
	app.Use(mw)
	handler := func(c *fiber.Ctx) error {
		*reached++
		return c.SendString("ok")
	}
	app.Get("/api/items", handler)
	app.Options("/api/items", handler)
	app.Get("/api/boom", func(c *fiber.Ctx) error {
		*reached++
		return fiber.NewError(fiber.StatusTeapot, "boom")
	})
	return app
}

func TestCORS_PreflightPermitido(t *testing.T) {
	reached := 0
	app := newCORSApp(t, &reached)

	req := httptest.NewRequest(http.MethodOptions, "/api/items", nil)
	req.Header.Set("Origin", "https://preview.vercel.app")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://preview.vercel.app", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "600", resp.Header.Get("Access-Control-Max-Age"))
	assert.Equal(t, "Origin", resp.Header.Get("Vary"))
	assert.Zero(t, reached, "el preflight no llega al handler")
}

func TestCORS_PreflightNoPermitidoNoLlegaAlHandler(t *testing.T) {
	reached := 0
	app := newCORSApp(t, &reached)

	req := httptest.NewRequest(http.MethodOptions, "/api/items", nil)
	req.Header.Set("Origin", "https://evil.example.org")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Zero(t, reached)
}

func TestCORS_PeticionNormalRecibeCabeceras(t *testing.T) {
	reached := 0
	app := newCORSApp(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, reached)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Disposition", resp.Header.Get("Access-Control-Expose-Headers"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"), "métodos solo en preflight")
}

func TestCORS_CabecerasTambienEnError(t *testing.T) {
	reached := 0
	app := newCORSApp(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/api/boom", nil)
	req.Header.Set("Origin", "https://wms.example.com")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "https://wms.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_OrigenNoPermitidoSinCabeceras(t *testing.T) {
	reached := 0
	app := newCORSApp(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Origin", "https://evil.example.org")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", resp.Header.Get("Vary"))
}

func TestCORSMiddleware_PatronInvalido(t *testing.T) {
	for _, p := range []string{"*", "*.vercel.app", "ftp://*.example.com"} {
		_, err := apphttp.CORSMiddleware(config.CORSConfig{AllowedOriginPatterns: []string{p}})
		assert.Error(t, err, "patrón %q", p)
	}
}
