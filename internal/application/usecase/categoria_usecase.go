package usecase

import (
	"strings"
	"time"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/domain"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

// CategoriaUseCase casos de uso para categorías. Borrar una categoría arrastra sus
// productos (cascade en storage).
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Crear da de alta una categoría. El nombre es único (constraint en storage).
func (uc *CategoriaUseCase) Crear(in dto.CategoriaFormRequest) (*dto.CategoriaResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrNombreRequerido
	}
	now := time.Now()
	cat := &entity.Categoria{
		Nombre:            nombre,
		Descripcion:       strings.TrimSpace(in.Descripcion),
		FechaCreacion:     now,
		FechaModificacion: now,
	}
	if err := uc.repo.Create(cat); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrCategoriaDuplicada
		}
		return nil, err
	}
	out := toCategoriaResponse(cat)
	return &out, nil
}

// Eliminar borra la categoría; sus productos caen en cascada (constraint en storage).
// Devuelve el nombre para el mensaje flash.
func (uc *CategoriaUseCase) Eliminar(id int64) (string, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if cat == nil {
		return "", domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return "", err
	}
	return cat.Nombre, nil
}

// List lista todas las categorías.
func (uc *CategoriaUseCase) List() (*dto.CategoriaListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoriaResponse(c))
	}
	return &dto.CategoriaListResponse{Items: items}, nil
}

func toCategoriaResponse(c *entity.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:                c.ID,
		Nombre:            c.Nombre,
		Descripcion:       c.Descripcion,
		FechaCreacion:     c.FechaCreacion,
		FechaModificacion: c.FechaModificacion,
	}
}
