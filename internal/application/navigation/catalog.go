// Package navigation arma el menú visible para un usuario según las capacidades de su rol.
package navigation

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/wms-api/internal/domain/rbac"
)

//go:embed menu.yaml
var defaultMenu []byte

// Item entrada del menú. Requires son capacidades alternativas; vacío = cualquier usuario autenticado.
type Item struct {
	Key      string            `yaml:"key" json:"key"`
	Title    string            `yaml:"title" json:"title"`
	Path     string            `yaml:"path" json:"path,omitempty"`
	Icon     string            `yaml:"icon" json:"icon,omitempty"`
	Requires []rbac.Capability `yaml:"requires" json:"-"`
	Children []Item            `yaml:"children" json:"children,omitempty"`
}

// Catalog menú completo, en el orden en que se muestra.
type Catalog struct {
	items []Item
}

// Default devuelve el catálogo embebido. Falla solo si menu.yaml es inválido.
func Default() (*Catalog, error) {
	return Parse(defaultMenu)
}

// Parse lee un catálogo YAML y valida claves y capacidades.
func Parse(data []byte) (*Catalog, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("navigation: yaml inválido: %w", err)
	}
	seen := make(map[string]bool)
	if err := validate(items, seen); err != nil {
		return nil, err
	}
	return &Catalog{items: items}, nil
}

func validate(items []Item, seen map[string]bool) error {
	for i := range items {
		it := &items[i]
		if it.Key == "" || it.Title == "" {
			return fmt.Errorf("navigation: ítem sin key o title")
		}
		if seen[it.Key] {
			return fmt.Errorf("navigation: key repetida %q", it.Key)
		}
		seen[it.Key] = true
		for j, c := range it.Requires {
			parsed, err := rbac.ParseCapability(string(c))
			if err != nil {
				return fmt.Errorf("navigation: ítem %q: %w", it.Key, err)
			}
			it.Requires[j] = parsed
		}
		if it.Path == "" && len(it.Children) == 0 {
			return fmt.Errorf("navigation: ítem %q sin path ni hijos", it.Key)
		}
		if err := validate(it.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

// For devuelve los ítems visibles para las capacidades dadas, conservando el orden.
// Los hijos se filtran igual; un padre sin path cuyos hijos quedaron todos fuera se descarta.
func (c *Catalog) For(caps rbac.Capabilities) []Item {
	return filter(c.items, caps)
}

func filter(items []Item, caps rbac.Capabilities) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !caps.HasAny(it.Requires...) {
			continue
		}
		visible := it
		if len(it.Children) > 0 {
			visible.Children = filter(it.Children, caps)
			if len(visible.Children) == 0 {
				if it.Path == "" {
					continue
				}
				visible.Children = nil
			}
		}
		out = append(out, visible)
	}
	return out
}
