package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/application/usecase"
)

// CategoriaHandler maneja las operaciones de categorías.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler de categorías.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Delete godoc
// @Summary      Eliminar categoría (sus productos caen en cascada)
// @Tags         categorias
// @Produce      json
// @Param        id  path  int  true  "id de la categoría"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /core/categorias/delete/{id} [post]
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	nombre, err := h.uc.Eliminar(int64(id))
	if err != nil {
		return respondError(c, err)
	}
	msg := fmt.Sprintf("Categoría '%s' eliminada.", nombre)
	return respond(c, resultado{
		status:   fiber.StatusOK,
		payload:  dto.MensajeResponse{Mensaje: msg},
		redirect: "/main",
		flash:    msg,
	})
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Success      200  {object}  dto.CategoriaListResponse
// @Router       /core/categorias/ [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaFormRequest  true  "nombre, descripcion"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /core/categorias/add [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, resultado{
		status:   fiber.StatusCreated,
		payload:  out,
		redirect: "/main",
		flash:    fmt.Sprintf("Categoría '%s' agregada.", out.Nombre),
	})
}
