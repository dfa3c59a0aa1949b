package inventario

import (
	"context"

	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Commit si fn devuelve nil; Rollback en caso contrario. Toda mutación del catálogo
// (alta, modificación, baja) pasa por aquí para que Producto, Stock y el historial
// queden consistentes o no se escriba nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
