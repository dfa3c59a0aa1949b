package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoALTA = "ALTA" // creación de producto
	MovimientoBAJA = "BAJA" // eliminación de producto
	MovimientoMODI = "MODI" // modificación de producto o stock
)

// MovimientoInventario es una entrada del historial de auditoría. Solo se inserta,
// nunca se actualiza ni se borra desde la aplicación.
//
// ProductoID y UsuarioID son nullables: el historial sobrevive al borrado del
// producto, por eso nombre y código se guardan desnormalizados.
// Cantidad siempre se guarda en valor absoluto; el tipo indica la naturaleza.
type MovimientoInventario struct {
	ID               int64
	ProductoID       *int64
	UsuarioID        *int64
	Cantidad         int
	ProductoNombre   string
	ProductoCodigo   string
	Tipo             string // ALTA, BAJA, MODI
	ResumenOperacion string // JSON {antes, despues}
	Fecha            time.Time
}
