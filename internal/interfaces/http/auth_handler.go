package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mk-vzla/calidadsoftware/internal/application/auth"
	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
)

// AuthHandler maneja login y logout de sesión.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	cookieName string
	expMinutes int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookieName string, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, expMinutes: expMinutes}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if in.Usuario == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Usuario y contraseña son requeridos"})
	}

	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    out.Token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(h.expMinutes) * time.Minute),
	})

	return respond(c, resultado{
		status:   fiber.StatusOK,
		payload:  out,
		redirect: "/main",
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MensajeResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return respond(c, resultado{
		status:   fiber.StatusOK,
		payload:  dto.MensajeResponse{Mensaje: "Sesión cerrada"},
		redirect: "/",
	})
}
