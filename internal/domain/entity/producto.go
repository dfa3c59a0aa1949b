package entity

import "time"

// Producto representa un producto del catálogo.
// Cantidad es un snapshot desnormalizado; la cantidad autoritativa vive en Stock.
type Producto struct {
	ID                int64
	CodigoProducto    string // formato letra + 3 dígitos (ej: M001), único
	Nombre            string // único sin distinguir mayúsculas
	Descripcion       string
	CategoriaID       int64
	Precio            int // entero, >= 0 (constraint en storage)
	Cantidad          int
	FechaCreacion     time.Time
	FechaModificacion time.Time
}
