package rbac

import (
	"fmt"
	"strings"
)

// Capability es una capacidad derivada del rol.
type Capability string

// Capacidades conocidas.
const (
	CapAdmin      Capability = "admin"
	CapSupervisor Capability = "supervisor"
	CapOperator   Capability = "operator"
	CapQuality    Capability = "quality"
)

// ParseCapability valida un nombre de capacidad (usado por el catálogo de navegación).
func ParseCapability(s string) (Capability, error) {
	switch c := Capability(strings.TrimSpace(strings.ToLower(s))); c {
	case CapAdmin, CapSupervisor, CapOperator, CapQuality:
		return c, nil
	default:
		return "", fmt.Errorf("rbac: capacidad desconocida %q", s)
	}
}

// Capabilities banderas derivadas del rol del usuario.
type Capabilities struct {
	IsAdmin      bool `json:"is_admin"`
	IsSupervisor bool `json:"is_supervisor"`
	IsOperator   bool `json:"is_operator"`
	IsQuality    bool `json:"is_quality"`
}

// Has informa si las banderas incluyen la capacidad. Admin las incluye todas.
func (c Capabilities) Has(want Capability) bool {
	if c.IsAdmin {
		return true
	}
	switch want {
	case CapSupervisor:
		return c.IsSupervisor
	case CapOperator:
		return c.IsOperator
	case CapQuality:
		return c.IsQuality
	}
	return false
}

// HasAny informa si incluye al menos una de las capacidades. Sin capacidades pedidas = true.
func (c Capabilities) HasAny(caps ...Capability) bool {
	if len(caps) == 0 {
		return true
	}
	for _, want := range caps {
		if c.Has(want) {
			return true
		}
	}
	return false
}

// None informa si el rol no otorgó ninguna capacidad.
func (c Capabilities) None() bool {
	return !c.IsAdmin && !c.IsSupervisor && !c.IsOperator && !c.IsQuality
}

// roleRule asocia una capacidad con nombres exactos o fragmentos del rol normalizado.
type roleRule struct {
	cap      Capability
	exact    []string
	contains []string
}

var rules = []roleRule{
	{cap: CapAdmin, exact: []string{"admin", "administrador", "administrator"}, contains: []string{"admin"}},
	{cap: CapSupervisor, exact: []string{"supervisor"}, contains: []string{"supervisor", "jefe de bodega"}},
	{cap: CapOperator, exact: []string{"operador", "operario", "operator"}, contains: []string{"operador", "operario", "operator"}},
	{cap: CapQuality, exact: []string{"calidad", "quality"}, contains: []string{"calidad", "quality"}},
}

// Resolve deriva las capacidades de un rol. Rol vacío = sin capacidades.
func Resolve(role RoleRef) Capabilities {
	return ResolveName(role.Name)
}

// ResolveName igual que Resolve a partir del nombre en texto.
func ResolveName(name string) Capabilities {
	var c Capabilities
	n := Normalize(name)
	if n == "" {
		return c
	}
	for _, r := range rules {
		if !matches(n, r) {
			continue
		}
		switch r.cap {
		case CapAdmin:
			c.IsAdmin = true
		case CapSupervisor:
			c.IsSupervisor = true
		case CapOperator:
			c.IsOperator = true
		case CapQuality:
			c.IsQuality = true
		}
	}
	return c
}

func matches(normalized string, r roleRule) bool {
	for _, e := range r.exact {
		if normalized == e {
			return true
		}
	}
	for _, frag := range r.contains {
		if strings.Contains(normalized, frag) {
			return true
		}
	}
	return false
}
