package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepository)(nil)

// MovimientoRepository implementa repository.MovimientoRepository sobre PostgreSQL.
// El historial es append-only: nunca se actualiza ni se borra.
type MovimientoRepository struct {
	db Querier
}

// NewMovimientoRepository crea una nueva instancia del repositorio.
func NewMovimientoRepository(db Querier) *MovimientoRepository {
	return &MovimientoRepository{db: db}
}

const movimientoColumns = `id, producto_id, usuario_id, cantidad, producto_nombre, producto_codigo, tipo, resumen_operacion, fecha`

func scanMovimiento(rows pgx.Rows) (*entity.MovimientoInventario, error) {
	var m entity.MovimientoInventario
	err := rows.Scan(
		&m.ID,
		&m.ProductoID,
		&m.UsuarioID,
		&m.Cantidad,
		&m.ProductoNombre,
		&m.ProductoCodigo,
		&m.Tipo,
		&m.ResumenOperacion,
		&m.Fecha,
	)
	if err != nil {
		return nil, fmt.Errorf("scan movimiento: %w", err)
	}
	return &m, nil
}

// Create inserta una entrada en el historial.
func (r *MovimientoRepository) Create(m *entity.MovimientoInventario) error {
	ctx := context.Background()
	query := `
		INSERT INTO movimientos_inventario (producto_id, usuario_id, cantidad, producto_nombre, producto_codigo, tipo, resumen_operacion, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		m.ProductoID,
		m.UsuarioID,
		m.Cantidad,
		m.ProductoNombre,
		m.ProductoCodigo,
		m.Tipo,
		m.ResumenOperacion,
		m.Fecha,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// List devuelve movimientos del más reciente al más antiguo.
func (r *MovimientoRepository) List(limit, offset int) ([]*entity.MovimientoInventario, error) {
	ctx := context.Background()
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_inventario ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return collectMovimientos(rows)
}

// ListByProducto devuelve los movimientos de un producto, del más reciente al más antiguo.
func (r *MovimientoRepository) ListByProducto(productoID int64, limit, offset int) ([]*entity.MovimientoInventario, error) {
	ctx := context.Background()
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_inventario WHERE producto_id = $1 ORDER BY fecha DESC, id DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, productoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por producto: %w", err)
	}
	defer rows.Close()
	return collectMovimientos(rows)
}

func collectMovimientos(rows pgx.Rows) ([]*entity.MovimientoInventario, error) {
	var movimientos []*entity.MovimientoInventario
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, err
		}
		movimientos = append(movimientos, m)
	}
	return movimientos, rows.Err()
}
