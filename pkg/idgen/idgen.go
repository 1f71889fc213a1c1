// Package idgen genera códigos legibles para documentos (recepciones, reposiciones, tareas).
// Los IDs de base de datos siguen siendo UUID; estos códigos son los que se imprimen y escanean.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Prefijos de documento.
const (
	PrefixReception     = "REC"
	PrefixReplenishment = "REP"
	PrefixTask          = "TSK"
)

// Generator produce códigos únicos del tipo PREFIJO-<snowflake base36>.
type Generator struct {
	node *snowflake.Node
}

// New crea un generador para el nodo indicado (0..1023).
func New(node int64) (*Generator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("idgen: nodo %d: %w", node, err)
	}
	return &Generator{node: n}, nil
}

// Code devuelve un nuevo código con el prefijo dado.
func (g *Generator) Code(prefix string) string {
	return prefix + "-" + g.node.Generate().Base36()
}
