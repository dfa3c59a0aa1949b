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

var _ repository.CategoriaRepository = (*CategoriaRepository)(nil)

// CategoriaRepository implementa repository.CategoriaRepository sobre PostgreSQL.
type CategoriaRepository struct {
	db Querier
}

// NewCategoriaRepository crea una nueva instancia del repositorio.
func NewCategoriaRepository(db Querier) *CategoriaRepository {
	return &CategoriaRepository{db: db}
}

const categoriaColumns = `id, nombre, descripcion, fecha_creacion, fecha_modificacion`

func scanCategoria(row pgx.Row) (*entity.Categoria, error) {
	var c entity.Categoria
	err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.FechaCreacion, &c.FechaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan categoria: %w", err)
	}
	return &c, nil
}

// Create persiste la categoría y asigna el ID generado.
func (r *CategoriaRepository) Create(c *entity.Categoria) error {
	ctx := context.Background()
	query := `
		INSERT INTO categorias (nombre, descripcion, fecha_creacion, fecha_modificacion)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, c.Nombre, c.Descripcion, c.FechaCreacion, c.FechaModificacion).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID devuelve la categoría o nil si no existe.
func (r *CategoriaRepository) GetByID(id int64) (*entity.Categoria, error) {
	ctx := context.Background()
	query := `SELECT ` + categoriaColumns + ` FROM categorias WHERE id = $1`
	return scanCategoria(r.db.QueryRow(ctx, query, id))
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoriaRepository) List() ([]*entity.Categoria, error) {
	ctx := context.Background()
	query := `SELECT ` + categoriaColumns + ` FROM categorias ORDER BY nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Categoria
	for rows.Next() {
		c, err := scanCategoria(rows)
		if err != nil {
			return nil, err
		}
		categorias = append(categorias, c)
	}
	return categorias, rows.Err()
}

// Delete elimina la categoría; sus productos caen en cascada.
func (r *CategoriaRepository) Delete(id int64) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
