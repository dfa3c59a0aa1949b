package repository

import "github.com/mk-vzla/calidadsoftware/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id int64) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
	// Delete elimina la categoría; sus productos caen en cascada (constraint en storage).
	Delete(id int64) error
}
