package entity

// Stock representa la cantidad disponible autoritativa de un producto (una fila por producto).
// Se crea junto con el producto y se elimina en cascada al borrarlo.
type Stock struct {
	ID         int64
	ProductoID int64
	Cantidad   int // >= 0 (constraint en storage)
}
