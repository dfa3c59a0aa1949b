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

var _ repository.ProductoRepository = (*ProductoRepository)(nil)

// ProductoRepository implementa repository.ProductoRepository sobre PostgreSQL.
// Funciona igual con el pool o con una transacción (Querier).
type ProductoRepository struct {
	db Querier
}

// NewProductoRepository crea una nueva instancia del repositorio.
func NewProductoRepository(db Querier) *ProductoRepository {
	return &ProductoRepository{db: db}
}

const productoColumns = `id, codigo_producto, nombre, descripcion, categoria_id, precio, cantidad, fecha_creacion, fecha_modificacion`

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID,
		&p.CodigoProducto,
		&p.Nombre,
		&p.Descripcion,
		&p.CategoriaID,
		&p.Precio,
		&p.Cantidad,
		&p.FechaCreacion,
		&p.FechaModificacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}

// Create persiste el producto y asigna el ID generado.
func (r *ProductoRepository) Create(p *entity.Producto) error {
	ctx := context.Background()
	query := `
		INSERT INTO productos (codigo_producto, nombre, descripcion, categoria_id, precio, cantidad, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		p.CodigoProducto,
		p.Nombre,
		p.Descripcion,
		p.CategoriaID,
		p.Precio,
		p.Cantidad,
		p.FechaCreacion,
		p.FechaModificacion,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductoRepository) GetByID(id int64) (*entity.Producto, error) {
	ctx := context.Background()
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return scanProducto(r.db.QueryRow(ctx, query, id))
}

// GetByCodigo devuelve el producto con ese código o nil si no existe.
func (r *ProductoRepository) GetByCodigo(codigo string) (*entity.Producto, error) {
	ctx := context.Background()
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo_producto = $1`
	return scanProducto(r.db.QueryRow(ctx, query, codigo))
}

// GetByNombreClave busca por nombre sin distinguir mayúsculas. Recibe la clave ya normalizada.
func (r *ProductoRepository) GetByNombreClave(clave string) (*entity.Producto, error) {
	ctx := context.Background()
	query := `SELECT ` + productoColumns + ` FROM productos WHERE lower(nombre) = $1`
	return scanProducto(r.db.QueryRow(ctx, query, clave))
}

// Update guarda los campos mutables del producto.
func (r *ProductoRepository) Update(p *entity.Producto) error {
	ctx := context.Background()
	query := `
		UPDATE productos
		SET nombre = $1, descripcion = $2, categoria_id = $3, precio = $4, cantidad = $5, fecha_modificacion = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		p.Nombre,
		p.Descripcion,
		p.CategoriaID,
		p.Precio,
		p.Cantidad,
		p.FechaModificacion,
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductoNotFound
	}
	return nil
}

// List devuelve los productos ordenados por código.
func (r *ProductoRepository) List(limit, offset int) ([]*entity.Producto, error) {
	ctx := context.Background()
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY codigo_producto LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, err
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}

// ListCodigosPorLetra devuelve los códigos que comienzan con la letra dada.
func (r *ProductoRepository) ListCodigosPorLetra(letra string) ([]string, error) {
	ctx := context.Background()
	query := `SELECT codigo_producto FROM productos WHERE codigo_producto LIKE $1 || '%' ORDER BY codigo_producto`

	rows, err := r.db.Query(ctx, query, letra)
	if err != nil {
		return nil, fmt.Errorf("list codigos: %w", err)
	}
	defer rows.Close()

	var codigos []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan codigo: %w", err)
		}
		codigos = append(codigos, c)
	}
	return codigos, rows.Err()
}

// Delete elimina el producto; el stock asociado cae en cascada.
func (r *ProductoRepository) Delete(id int64) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductoNotFound
	}
	return nil
}
