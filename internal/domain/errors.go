package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrProductoNotFound      = errors.New("producto no encontrado")
	ErrUsuarioNotFound       = errors.New("usuario no encontrado")
	ErrCategoriaRequerida    = errors.New("categoría requerida")
	ErrNombreRequerido       = errors.New("el nombre es obligatorio")
	ErrCodigoInvalido        = errors.New("el código debe comenzar con una letra y contener 3 dígitos")
	ErrPrecioInvalido        = errors.New("el precio debe ser un número entero no negativo")
	ErrCantidadInvalida      = errors.New("la cantidad debe ser un número entero no negativo")
	ErrCodigoDuplicado       = errors.New("el código de producto ya existe")
	ErrNombreDuplicado       = errors.New("ya existe un producto con ese nombre")
	ErrCategoriaDuplicada    = errors.New("ya existe una categoría con ese nombre")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrStockNegativo         = errors.New("el stock no puede quedar negativo")
)
