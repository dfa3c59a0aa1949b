package usecase

import (
	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

// UsuarioUseCase lecturas de usuarios para las vistas de administración.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List lista todos los usuarios, sin hashes de contraseña.
func (uc *UsuarioUseCase) List() (*dto.UsuarioListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UsuarioResponse{
			ID:            u.ID,
			Nombres:       u.Nombres,
			Usuario:       u.Usuario,
			Email:         u.Email,
			FechaCreacion: u.FechaCreacion,
			UltimoLogin:   u.UltimoLogin,
		})
	}
	return &dto.UsuarioListResponse{Items: items}, nil
}
