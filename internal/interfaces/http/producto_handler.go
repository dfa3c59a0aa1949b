package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/application/inventario"
)

// ProductoHandler maneja las operaciones del catálogo de productos.
type ProductoHandler struct {
	uc *inventario.ProductoUseCase
}

// NewProductoHandler construye el handler de productos.
func NewProductoHandler(uc *inventario.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas"  default(50)
// @Param        offset  query  int  false  "desplazamiento"   default(0)
// @Success      200  {object}  dto.ProductoListResponse
// @Router       /core/producto/ [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoFormRequest  true  "datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /core/producto/add [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.UserContext(), UsuarioID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, resultado{
		status:   fiber.StatusCreated,
		payload:  out,
		redirect: "/main",
		flash:    fmt.Sprintf("Producto '%s' agregado.", out.Nombre),
	})
}

// NextCode godoc
// @Summary      Siguiente código correlativo para una letra
// @Tags         productos
// @Produce      json
// @Param        letter  path  string  true  "letra inicial A-Z"
// @Success      200  {object}  dto.NextCodeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /core/producto/next_code/{letter} [get]
func (h *ProductoHandler) NextCode(c *fiber.Ctx) error {
	out, err := h.uc.SiguienteCodigo(c.Params("letter"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Letra inválida"})
	}
	return c.JSON(out)
}

// Detalle godoc
// @Summary      Detalle de un producto con el catálogo de categorías
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "id del producto"
// @Success      200  {object}  dto.ProductoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /core/producto/{id} [get]
func (h *ProductoHandler) Detalle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	out, err := h.uc.Detalle(int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "id del producto"
// @Param        body  body  dto.ProductoFormRequest  true  "datos del producto"
// @Success      200   {object}  dto.ProductoActualizadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /core/producto/update/{id} [post]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	var in dto.ProductoFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.UserContext(), UsuarioID(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, resultado{
		status:   fiber.StatusOK,
		payload:  out,
		redirect: "/main",
		flash:    fmt.Sprintf("Producto '%s' actualizado.", out.Nombre),
	})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "id del producto"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /core/producto/delete/{id} [post]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	nombre, err := h.uc.Eliminar(c.UserContext(), UsuarioID(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	msg := fmt.Sprintf("Producto '%s' eliminado.", nombre)
	return respond(c, resultado{
		status:   fiber.StatusOK,
		payload:  dto.MensajeResponse{Mensaje: msg},
		redirect: "/main",
		flash:    msg,
	})
}
