package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/domain"
)

// Cookie de mensaje flash para el modo HTML (la lee el frontend tras el redirect).
const flashCookie = "flash"

// resultado es el resultado etiquetado de un handler dual-mode. El respond central
// decide cómo renderizarlo según el cliente: JSON para AJAX/API, redirect+flash
// para navegadores. Los handlers arman el resultado, nunca hacen branching por modo.
type resultado struct {
	status   int    // estado HTTP para clientes JSON
	payload  any    // cuerpo JSON
	redirect string // destino del redirect en modo HTML
	flash    string // mensaje flash para el modo HTML, vacío para omitir
}

// wantsJSON detecta clientes AJAX/API: header X-Requested-With del frontend original
// o Accept: application/json.
func wantsJSON(c *fiber.Ctx) bool {
	if c.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// respond renderiza el resultado según el modo del cliente.
func respond(c *fiber.Ctx, res resultado) error {
	if wantsJSON(c) {
		return c.Status(res.status).JSON(res.payload)
	}
	if res.flash != "" {
		c.Cookie(&fiber.Cookie{
			Name:   flashCookie,
			Value:  url.QueryEscape(res.flash),
			Path:   "/",
			MaxAge: 30,
		})
	}
	return c.Redirect(res.redirect, fiber.StatusFound)
}

// respondError mapea el error de dominio a estado y mensaje y lo renderiza.
// En modo HTML vuelve a la página de origen con el mensaje como flash.
func respondError(c *fiber.Ctx, err error) error {
	status, msg := estadoYMensaje(err)
	return respond(c, resultado{
		status:   status,
		payload:  dto.ErrorResponse{Error: msg},
		redirect: c.Get(fiber.HeaderReferer, "/main"),
		flash:    msg,
	})
}

// estadoYMensaje traduce errores de dominio a estado HTTP + mensaje en español.
// Los textos se preservan tal cual los mostraba el sistema original.
func estadoYMensaje(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNombreRequerido):
		return fiber.StatusBadRequest, "El nombre es obligatorio"
	case errors.Is(err, domain.ErrCategoriaRequerida):
		// Mismo mensaje para categoría ausente y categoría inexistente.
		return fiber.StatusBadRequest, "Categoría requerida"
	case errors.Is(err, domain.ErrCodigoInvalido):
		return fiber.StatusBadRequest, "El código debe comenzar con una letra y contener 3 dígitos. Ej.: M001"
	case errors.Is(err, domain.ErrPrecioInvalido):
		return fiber.StatusBadRequest, "El precio debe ser un número entero no negativo"
	case errors.Is(err, domain.ErrCantidadInvalida):
		return fiber.StatusBadRequest, "La cantidad debe ser un número entero no negativo"
	case errors.Is(err, domain.ErrStockNegativo):
		return fiber.StatusBadRequest, "El stock no puede quedar negativo"
	case errors.Is(err, domain.ErrCodigoDuplicado):
		return fiber.StatusConflict, "El código de producto ya existe"
	case errors.Is(err, domain.ErrNombreDuplicado):
		return fiber.StatusConflict, "Ya existe un producto con ese nombre"
	case errors.Is(err, domain.ErrCategoriaDuplicada):
		return fiber.StatusConflict, "Ya existe una categoría con ese nombre"
	case errors.Is(err, domain.ErrProductoNotFound):
		return fiber.StatusNotFound, "Producto no encontrado"
	case errors.Is(err, domain.ErrUsuarioNotFound), errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "Recurso no encontrado"
	case errors.Is(err, domain.ErrCredencialesInvalidas):
		return fiber.StatusUnauthorized, "Usuario o contraseña incorrectos"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "No autorizado"
	default:
		return fiber.StatusInternalServerError, "Error interno"
	}
}
