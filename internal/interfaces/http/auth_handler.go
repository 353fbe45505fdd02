package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/auth"
	"github.com/bwcsoft/zapateria-api/internal/application/dto"
)

// AuthHandler maneja registro, login y consulta de usuarios.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea un usuario nuevo.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	user, err := h.uc.Register(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login valida credenciales y devuelve el token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	resp, err := h.uc.Login(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Me devuelve el usuario del token.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// ListUsers lista usuarios (solo administradores).
// GET /api/users
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	page := parsePage(c)
	users, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
