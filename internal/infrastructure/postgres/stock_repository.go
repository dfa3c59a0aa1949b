package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mk-vzla/calidadsoftware/internal/domain"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepository)(nil)

// StockRepository implementa repository.StockRepository sobre PostgreSQL.
type StockRepository struct {
	db Querier
}

// NewStockRepository crea una nueva instancia del repositorio.
func NewStockRepository(db Querier) *StockRepository {
	return &StockRepository{db: db}
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.ProductoID, &s.Cantidad)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan stock: %w", err)
	}
	return &s, nil
}

// GetByProducto devuelve la fila de stock del producto o nil si no existe.
func (r *StockRepository) GetByProducto(productoID int64) (*entity.Stock, error) {
	ctx := context.Background()
	query := `SELECT id, producto_id, cantidad FROM stock WHERE producto_id = $1`
	return scanStock(r.db.QueryRow(ctx, query, productoID))
}

// GetByProductoForUpdate bloquea la fila para la transacción en curso (SELECT FOR UPDATE).
func (r *StockRepository) GetByProductoForUpdate(productoID int64) (*entity.Stock, error) {
	ctx := context.Background()
	query := `SELECT id, producto_id, cantidad FROM stock WHERE producto_id = $1 FOR UPDATE`
	return scanStock(r.db.QueryRow(ctx, query, productoID))
}

// Create inserta la fila de stock del producto.
func (r *StockRepository) Create(s *entity.Stock) error {
	ctx := context.Background()
	query := `INSERT INTO stock (producto_id, cantidad) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRow(ctx, query, s.ProductoID, s.Cantidad).Scan(&s.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// UpdateCantidad fija la cantidad del stock del producto.
func (r *StockRepository) UpdateCantidad(productoID int64, cantidad int) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `UPDATE stock SET cantidad = $1 WHERE producto_id = $2`, cantidad, productoID)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
