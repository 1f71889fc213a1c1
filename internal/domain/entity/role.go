package entity

import "time"

// Nombres de rol sembrados por defecto. Los usuarios pueden tener otros nombres
// ("Supervisor de turno", "Operario") que el resolvedor RBAC normaliza.
const (
	RoleAdmin      = "administrador"
	RoleSupervisor = "supervisor"
	RoleOperator   = "operador"
	RoleQuality    = "calidad"
)

// Role representa un rol asignable a usuarios.
type Role struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
