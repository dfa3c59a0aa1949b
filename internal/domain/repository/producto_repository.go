package repository

import "github.com/mk-vzla/calidadsoftware/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	// Create persiste el producto y asigna su ID.
	Create(producto *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	// GetByNombreClave busca por la clave de nombre normalizada (sin distinguir mayúsculas).
	GetByNombreClave(clave string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	List(limit, offset int) ([]*entity.Producto, error)
	// ListCodigosPorLetra devuelve los códigos existentes que comienzan con la letra dada.
	ListCodigosPorLetra(letra string) ([]string, error)
	Delete(id int64) error
}
