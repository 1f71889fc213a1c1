package dto

import (
	"time"

	"github.com/jhoicas/wms-api/internal/domain/rbac"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el caso de uso).
// Role acepta "Supervisor" o {"name": "Supervisor"}.
type CreateUserRequest struct {
	Name     string       `json:"name" validate:"required,min=1,max=200"`
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required,min=8"`
	Role     rbac.RoleRef `json:"role"`
}

// UpdateUserRequest entrada para actualizar un usuario; campos nil no cambian.
type UpdateUserRequest struct {
	Name     *string       `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string       `json:"email" validate:"omitempty,email"`
	Password *string       `json:"password" validate:"omitempty,min=8"`
	Role     *rbac.RoleRef `json:"role"`
	Status   *string       `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	Status       string            `json:"status"`
	Capabilities rbac.Capabilities `json:"capabilities"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"` // segundos
	User      UserResponse `json:"user"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Grants      rbac.Capabilities `json:"grants"`
}
