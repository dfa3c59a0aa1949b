package entity

import "time"

// Categoria representa una categoría de productos. Borrarla elimina sus productos (cascade).
type Categoria struct {
	ID                int64
	Nombre            string // único
	Descripcion       string
	FechaCreacion     time.Time
	FechaModificacion time.Time
}
