// Package rbac resuelve el rol de un usuario en banderas de capacidad.
//
// El rol llega en dos formas: como texto ("Supervisor") o como objeto con nombre
// ({"name": "Supervisor"}). RoleRef unifica ambas en el borde JSON y Resolve
// deriva las capacidades comparando el nombre normalizado contra los roles conocidos.
package rbac

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RoleRef es un rol expresado como texto u objeto {"name": ...}.
type RoleRef struct {
	Name string
}

// Role construye un RoleRef a partir de un nombre.
func Role(name string) RoleRef {
	return RoleRef{Name: name}
}

// UnmarshalJSON acepta "admin", {"name": "admin"} o null.
func (r *RoleRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		r.Name = ""
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &r.Name)
	case '{':
		var obj struct {
			Name *string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		r.Name = ""
		if obj.Name != nil {
			r.Name = *obj.Name
		}
		return nil
	default:
		return fmt.Errorf("rbac: rol debe ser texto u objeto con name, recibido %s", string(data))
	}
}

// MarshalJSON serializa siempre como texto.
func (r RoleRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Name)
}

// Normalized devuelve el nombre normalizado (ver Normalize).
func (r RoleRef) Normalized() string {
	return Normalize(r.Name)
}

// IsZero informa si no hay rol.
func (r RoleRef) IsZero() bool {
	return r.Normalized() == ""
}

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// Normalize pasa a minúsculas, elimina tildes y diacríticos, recorta y colapsa espacios.
// Es idempotente: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, stripMarks, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
