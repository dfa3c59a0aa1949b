package repository

import "github.com/mk-vzla/calidadsoftware/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para el historial de movimientos.
// El historial es append-only: solo Create y lecturas.
type MovimientoRepository interface {
	Create(movimiento *entity.MovimientoInventario) error
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	List(limit, offset int) ([]*entity.MovimientoInventario, error)
	ListByProducto(productoID int64, limit, offset int) ([]*entity.MovimientoInventario, error)
}
