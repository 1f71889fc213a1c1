package http

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-api/pkg/config"
)

// OriginMatcher decide si un Origin está permitido: lista exacta primero y luego patrones.
type OriginMatcher struct {
	exact    map[string]struct{}
	allowAll bool
	patterns []*regexp.Regexp
}

// NewOriginMatcher compila los patrones una sola vez. Un patrón inválido es error de configuración.
// Notación de patrón: `*` cualquier secuencia de caracteres, `\.` o `.` punto literal.
// Todo patrón debe empezar por http:// o https://.
func NewOriginMatcher(origins, patterns []string) (*OriginMatcher, error) {
	m := &OriginMatcher{exact: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			m.allowAll = true
			continue
		}
		m.exact[o] = struct{}{}
	}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "http://") && !strings.HasPrefix(p, "https://") {
			return nil, fmt.Errorf("cors: el patrón %q debe empezar por http:// o https://", p)
		}
		re, err := regexp.Compile(PatternToRegexp(p))
		if err != nil {
			return nil, fmt.Errorf("cors: patrón inválido %q: %w", p, err)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

const hostWildcard = `[^/?#]*`

// PatternToRegexp convierte la notación de comodines en una expresión anclada.
// El comodín solo cubre caracteres de host: no cruza '/', '?' ni '#'.
func PatternToRegexp(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == '\\' && i+1 < len(pattern) && pattern[i+1] == '.':
			b.WriteString(`\.`)
			i++
		case ch == '*':
			b.WriteString(hostWildcard)
		default:
			b.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	b.WriteString("$")
	return b.String()
}

// Allowed informa si el origen está permitido.
func (m *OriginMatcher) Allowed(origin string) bool {
	if origin == "" {
		return false
	}
	if m.allowAll {
		return true
	}
	if _, ok := m.exact[origin]; ok {
		return true
	}
	for _, re := range m.patterns {
		if re.MatchString(origin) {
			return true
		}
	}
	return false
}

// CORSMiddleware aplica la política CORS configurada.
// OPTIONS corta la cadena con 204: con cabeceras CORS si el origen está permitido y sin ellas
// si no. El resto de peticiones sigue al handler y recibe las cabeceras al volver, incluso con error.
func CORSMiddleware(cfg config.CORSConfig) (fiber.Handler, error) {
	matcher, err := NewOriginMatcher(cfg.AllowedOrigins, cfg.AllowedOriginPatterns)
	if err != nil {
		return nil, err
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	exposed := strings.Join(cfg.ExposedHeaders, ", ")
	maxAge := ""
	if cfg.MaxAge > 0 {
		maxAge = strconv.Itoa(cfg.MaxAge)
	}

	setHeaders := func(c *fiber.Ctx, origin string, preflight bool) {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		if cfg.AllowCredentials {
			c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		}
		if preflight {
			if methods != "" {
				c.Set(fiber.HeaderAccessControlAllowMethods, methods)
			}
			if headers != "" {
				c.Set(fiber.HeaderAccessControlAllowHeaders, headers)
			}
			if maxAge != "" {
				c.Set(fiber.HeaderAccessControlMaxAge, maxAge)
			}
			return
		}
		if exposed != "" {
			c.Set(fiber.HeaderAccessControlExposeHeaders, exposed)
		}
	}

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin != "" {
			c.Vary(fiber.HeaderOrigin)
		}
		allowed := matcher.Allowed(origin)

		if c.Method() == fiber.MethodOptions {
			if allowed {
				setHeaders(c, origin, true)
			}
			return c.SendStatus(fiber.StatusNoContent)
		}

		err := c.Next()
		if allowed {
			setHeaders(c, origin, false)
		}
		return err
	}, nil
}
