package dto

import "time"

// CategoriaFormRequest alta de categoría.
type CategoriaFormRequest struct {
	Nombre      string `json:"nombre" form:"nombre"`
	Descripcion string `json:"descripcion" form:"descripcion"`
}

// CategoriaResponse representación de una categoría.
type CategoriaResponse struct {
	ID                int64     `json:"id"`
	Nombre            string    `json:"nombre"`
	Descripcion       string    `json:"descripcion"`
	FechaCreacion     time.Time `json:"fecha_creacion"`
	FechaModificacion time.Time `json:"fecha_modificacion"`
}

// CategoriaListResponse lista de categorías.
type CategoriaListResponse struct {
	Items []CategoriaResponse `json:"items"`
}
