package repository

import "github.com/mk-vzla/calidadsoftware/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el stock por producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// GetByProducto devuelve nil (sin error) si el producto no tiene fila de stock.
	GetByProducto(productoID int64) (*entity.Stock, error)
	// GetByProductoForUpdate bloquea la fila para update (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetByProductoForUpdate(productoID int64) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	UpdateCantidad(productoID int64, cantidad int) error
}
