package usecase

import (
	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

// MovimientoUseCase lecturas del historial de inventario. El historial solo se
// escribe desde el motor de mutación; aquí nunca se modifica.
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

// List devuelve el historial paginado, del más reciente al más antiguo.
func (uc *MovimientoUseCase) List(limit, offset int) (*dto.MovimientoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{Items: items}, nil
}

// ListByProducto devuelve el historial de un producto, del más reciente al más antiguo.
// El historial sobrevive a la baja del producto, pero sus entradas quedan con
// producto_id en NULL; este filtro solo ve productos vivos.
func (uc *MovimientoUseCase) ListByProducto(productoID int64, limit, offset int) (*dto.MovimientoListResponse, error) {
	list, err := uc.repo.ListByProducto(productoID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{Items: items}, nil
}

// ListEntidades devuelve las entidades crudas (para el reporte PDF).
func (uc *MovimientoUseCase) ListEntidades(limit, offset int) ([]*entity.MovimientoInventario, error) {
	return uc.repo.List(limit, offset)
}

func toMovimientoResponse(m *entity.MovimientoInventario) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:               m.ID,
		ProductoID:       m.ProductoID,
		UsuarioID:        m.UsuarioID,
		ProductoNombre:   m.ProductoNombre,
		ProductoCodigo:   m.ProductoCodigo,
		Tipo:             m.Tipo,
		Cantidad:         m.Cantidad,
		ResumenOperacion: m.ResumenOperacion,
		Fecha:            m.Fecha,
	}
}
