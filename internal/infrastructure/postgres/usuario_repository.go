package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mk-vzla/calidadsoftware/internal/domain"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)

// UsuarioRepository implementa repository.UsuarioRepository sobre PostgreSQL.
type UsuarioRepository struct {
	db Querier
}

// NewUsuarioRepository crea una nueva instancia del repositorio.
func NewUsuarioRepository(db Querier) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

const usuarioColumns = `id, nombres, usuario, email, password_hash, fecha_creacion, ultimo_login`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombres, &u.Usuario, &u.Email, &u.PasswordHash, &u.FechaCreacion, &u.UltimoLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	return &u, nil
}

// Create persiste el usuario y asigna el ID generado.
func (r *UsuarioRepository) Create(u *entity.Usuario) error {
	ctx := context.Background()
	query := `
		INSERT INTO usuarios (nombres, usuario, email, password_hash, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, u.Nombres, u.Usuario, u.Email, u.PasswordHash, u.FechaCreacion).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UsuarioRepository) GetByID(id int64) (*entity.Usuario, error) {
	ctx := context.Background()
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return scanUsuario(r.db.QueryRow(ctx, query, id))
}

// GetByUsuario devuelve el usuario con ese login o nil si no existe.
func (r *UsuarioRepository) GetByUsuario(usuario string) (*entity.Usuario, error) {
	ctx := context.Background()
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE usuario = $1`
	return scanUsuario(r.db.QueryRow(ctx, query, usuario))
}

// UpdateUltimoLogin registra la fecha del último login.
func (r *UsuarioRepository) UpdateUltimoLogin(id int64, cuando time.Time) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `UPDATE usuarios SET ultimo_login = $1 WHERE id = $2`, cuando, id)
	if err != nil {
		return fmt.Errorf("update ultimo_login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}

// List devuelve todos los usuarios ordenados por fecha de creación.
func (r *UsuarioRepository) List() ([]*entity.Usuario, error) {
	ctx := context.Background()
	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY fecha_creacion`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}
