package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/application/usecase"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
)

// Tope de filas del reporte PDF.
const reporteMaxFilas = 500

// ReporteGenerator genera el PDF del historial de movimientos.
type ReporteGenerator interface {
	GenerarReporteMovimientos(ctx context.Context, appName string, movimientos []*entity.MovimientoInventario) ([]byte, error)
}

// MovimientoHandler lecturas del historial de inventario y su exportación a PDF.
type MovimientoHandler struct {
	uc      *usecase.MovimientoUseCase
	reporte ReporteGenerator
	appName string
}

// NewMovimientoHandler construye el handler de movimientos.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase, reporte ReporteGenerator, appName string) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, reporte: reporte, appName: appName}
}

// List godoc
// @Summary      Historial de movimientos, del más reciente al más antiguo
// @Tags         movimientos
// @Produce      json
// @Param        limit        query  int  false  "máximo de filas"  default(50)
// @Param        offset       query  int  false  "desplazamiento"   default(0)
// @Param        producto_id  query  int  false  "filtrar por producto"
// @Success      200  {object}  dto.MovimientoListResponse
// @Router       /core/movimientos/ [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if productoID := c.QueryInt("producto_id", 0); productoID > 0 {
		out, err := h.uc.ListByProducto(int64(productoID), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reporte godoc
// @Summary      Exportar el historial de movimientos como PDF
// @Tags         movimientos
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /core/movimientos/reporte [get]
func (h *MovimientoHandler) Reporte(c *fiber.Ctx) error {
	movimientos, err := h.uc.ListEntidades(reporteMaxFilas, 0)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.reporte.GenerarReporteMovimientos(c.UserContext(), h.appName, movimientos)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error generando el reporte"})
	}

	filename := fmt.Sprintf("movimientos_%s.pdf", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
