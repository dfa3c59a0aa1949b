package dto

import "time"

// MovimientoResponse una entrada del historial de inventario.
type MovimientoResponse struct {
	ID               int64     `json:"id"`
	ProductoID       *int64    `json:"producto_id,omitempty"`
	UsuarioID        *int64    `json:"usuario_id,omitempty"`
	ProductoNombre   string    `json:"producto_nombre"`
	ProductoCodigo   string    `json:"producto_codigo"`
	Tipo             string    `json:"tipo"`
	Cantidad         int       `json:"cantidad"`
	ResumenOperacion string    `json:"resumen_operacion"`
	Fecha            time.Time `json:"fecha"`
}

// MovimientoListResponse historial paginado, del más reciente al más antiguo.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
}
