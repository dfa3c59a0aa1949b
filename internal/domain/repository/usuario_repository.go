package repository

import (
	"time"

	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByUsuario(usuario string) (*entity.Usuario, error)
	UpdateUltimoLogin(id int64, cuando time.Time) error
	List() ([]*entity.Usuario, error)
}
