package dto

import "time"

// ProductoFormRequest campos del formulario/JSON de alta y modificación de producto.
// En la modificación el código no se envía (es inmutable).
type ProductoFormRequest struct {
	CodigoProducto string      `json:"codigo_producto" form:"codigo_producto"`
	Nombre         string      `json:"nombre" form:"nombre"`
	Descripcion    string      `json:"descripcion" form:"descripcion"`
	Categoria      CampoEntero `json:"categoria" form:"categoria"`
	Precio         CampoEntero `json:"precio" form:"precio"`
	Cantidad       CampoEntero `json:"cantidad" form:"cantidad"`
}

// CategoriaRef referencia {id, nombre} embebida en respuestas de producto.
type CategoriaRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoResponse representación completa de un producto.
type ProductoResponse struct {
	ID                int64        `json:"id"`
	CodigoProducto    string       `json:"codigo_producto"`
	Nombre            string       `json:"nombre"`
	Descripcion       string       `json:"descripcion"`
	Categoria         CategoriaRef `json:"categoria"`
	Precio            int          `json:"precio"`
	Cantidad          int          `json:"cantidad"`
	FechaCreacion     time.Time    `json:"fecha_creacion"`
	FechaModificacion time.Time    `json:"fecha_modificacion"`
}

// ProductoActualizadoResponse respuesta mínima de la modificación.
type ProductoActualizadoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoDetalleResponse producto más el catálogo de categorías (para el modal de edición).
type ProductoDetalleResponse struct {
	Producto   ProductoResponse    `json:"producto"`
	Categorias []CategoriaResponse `json:"categorias"`
}

// NextCodeResponse siguiente código correlativo para una letra.
type NextCodeResponse struct {
	NextCode string `json:"next_code"`
	NextSeq  int    `json:"next_seq"`
}

// ProductoListResponse lista de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
}
