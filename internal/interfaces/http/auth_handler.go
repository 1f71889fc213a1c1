package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-api/internal/application/auth"
	"github.com/jhoicas/wms-api/internal/application/dto"
	"github.com/jhoicas/wms-api/internal/application/navigation"
	"github.com/jhoicas/wms-api/internal/domain/rbac"
)

// AuthHandler maneja login, perfil y menú de navegación del usuario autenticado.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	catalog *navigation.Catalog
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, catalog *navigation.Catalog) *AuthHandler {
	return &AuthHandler{uc: uc, catalog: catalog}
}

// NavigationResponse menú visible para el rol del usuario.
type NavigationResponse struct {
	Role         string            `json:"role"`
	Capabilities rbac.Capabilities `json:"capabilities"`
	Items        []navigation.Item `json:"items"`
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if okBody, err := parseBody(c, &in); !okBody {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "sesión iniciada", out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, "", out)
}

// Navigation godoc
// @Summary      Menú de navegación según el rol
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  NavigationResponse
// @Router       /api/me/navigation [get]
func (h *AuthHandler) Navigation(c *fiber.Ctx) error {
	caps := GetCapabilities(c)
	items := h.catalog.For(caps)
	if items == nil {
		items = []navigation.Item{}
	}
	return ok(c, "", NavigationResponse{Role: GetRole(c), Capabilities: caps, Items: items})
}
