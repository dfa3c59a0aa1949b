package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mk-vzla/calidadsoftware/internal/application/auth"
	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
)

// Locals keys del usuario autenticado en Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalUsuario   = "usuario"
)

// SessionMiddleware protege /core: toma el token de la cookie de sesión (o del header
// Bearer para clientes API), lo verifica y comprueba que el usuario siga existiendo
// en la base. Clientes JSON reciben 401; los navegadores vuelven al login.
func SessionMiddleware(authUC *auth.AuthUseCase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}
		if token == "" {
			return noAutorizado(c)
		}

		user, err := authUC.VerificarSesion(token)
		if err != nil {
			return noAutorizado(c)
		}

		c.Locals(LocalUsuarioID, user.ID)
		c.Locals(LocalUsuario, user.Usuario)
		return c.Next()
	}
}

func noAutorizado(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No autorizado"})
	}
	return c.Redirect("/", fiber.StatusFound)
}

// UsuarioID devuelve el id del usuario autenticado, o nil si no hay sesión.
// El historial de movimientos lo guarda como autor de la operación.
func UsuarioID(c *fiber.Ctx) *int64 {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}
