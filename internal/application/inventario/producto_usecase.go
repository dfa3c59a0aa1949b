package inventario

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/domain"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/producto"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

// ProductoUseCase es el motor de mutación del catálogo: alta, modificación y baja de
// productos manteniendo Producto, Stock y el historial de movimientos consistentes
// dentro de una única transacción.
type ProductoUseCase struct {
	txRunner      TxRunner
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
) *ProductoUseCase {
	return &ProductoUseCase{
		txRunner:      txRunner,
		productoRepo:  productoRepo,
		categoriaRepo: categoriaRepo,
	}
}

// camposValidados resultado de validar el formulario de producto.
type camposValidados struct {
	nombre      string
	descripcion string
	categoria   *entity.Categoria
	precio      int
	cantidad    int
}

// validarCampos aplica las reglas comunes de alta y modificación: nombre obligatorio,
// categoría obligatoria y existente (mismo mensaje en ambos casos, comportamiento
// preservado del sistema original), precio y cantidad enteros no negativos.
func (uc *ProductoUseCase) validarCampos(in dto.ProductoFormRequest) (*camposValidados, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrNombreRequerido
	}

	if in.Categoria.Vacio() {
		return nil, domain.ErrCategoriaRequerida
	}
	categoriaID, err := in.Categoria.Entero()
	if err != nil {
		return nil, domain.ErrCategoriaRequerida
	}
	cat, err := uc.categoriaRepo.GetByID(int64(categoriaID))
	if err != nil {
		return nil, err
	}
	if cat == nil {
		// Categoría inexistente responde igual que categoría ausente.
		return nil, domain.ErrCategoriaRequerida
	}

	precio, err := in.Precio.Entero()
	if err != nil || precio < 0 {
		return nil, domain.ErrPrecioInvalido
	}
	cantidad, err := in.Cantidad.Entero()
	if err != nil || cantidad < 0 {
		return nil, domain.ErrCantidadInvalida
	}

	return &camposValidados{
		nombre:      nombre,
		descripcion: strings.TrimSpace(in.Descripcion),
		categoria:   cat,
		precio:      precio,
		cantidad:    cantidad,
	}, nil
}

// Crear da de alta un producto: valida, chequea duplicados de forma proactiva y
// persiste Producto + Stock + movimiento ALTA en una transacción.
func (uc *ProductoUseCase) Crear(ctx context.Context, usuarioID *int64, in dto.ProductoFormRequest) (*dto.ProductoResponse, error) {
	codigo := producto.NormalizarCodigo(in.CodigoProducto)
	if err := producto.ValidarCodigo(codigo); err != nil {
		return nil, err
	}
	campos, err := uc.validarCampos(in)
	if err != nil {
		return nil, err
	}

	// Chequeo proactivo de duplicados; la constraint única del storage cubre la carrera.
	if existente, err := uc.productoRepo.GetByCodigo(codigo); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrCodigoDuplicado
	}
	if existente, err := uc.productoRepo.GetByNombreClave(producto.ClaveNombre(campos.nombre)); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrNombreDuplicado
	}

	now := time.Now()
	p := &entity.Producto{
		CodigoProducto:    codigo,
		Nombre:            campos.nombre,
		Descripcion:       campos.descripcion,
		CategoriaID:       campos.categoria.ID,
		Precio:            campos.precio,
		Cantidad:          campos.cantidad,
		FechaCreacion:     now,
		FechaModificacion: now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
	) error {
		if err := productoRepo.Create(p); err != nil {
			return err
		}
		if err := stockRepo.Create(&entity.Stock{ProductoID: p.ID, Cantidad: campos.cantidad}); err != nil {
			return err
		}
		resumen, err := resumenAlta(snapshotProducto(codigo, campos.nombre, campos.descripcion, campos.categoria, campos.precio, campos.cantidad))
		if err != nil {
			return err
		}
		return movRepo.Create(&entity.MovimientoInventario{
			ProductoID:       &p.ID,
			UsuarioID:        usuarioID,
			Cantidad:         campos.cantidad,
			ProductoNombre:   campos.nombre,
			ProductoCodigo:   codigo,
			Tipo:             entity.MovimientoALTA,
			ResumenOperacion: resumen,
			Fecha:            now,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Carrera con otra creación: re-diagnosticar cuál campo colisionó.
			if existente, _ := uc.productoRepo.GetByCodigo(codigo); existente != nil {
				return nil, domain.ErrCodigoDuplicado
			}
			return nil, domain.ErrNombreDuplicado
		}
		return nil, err
	}

	return toProductoResponse(p, campos.categoria), nil
}

// Actualizar modifica un producto: recalcula el estado, registra en el historial
// exactamente los campos que cambiaron y persiste Producto + Stock + movimiento MODI
// en una transacción. Una actualización sin cambios no escribe nada.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, usuarioID *int64, id int64, in dto.ProductoFormRequest) (*dto.ProductoActualizadoResponse, error) {
	campos, err := uc.validarCampos(in)
	if err != nil {
		return nil, err
	}

	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNotFound
	}

	// Otro producto (id distinto) con el mismo nombre, sin distinguir mayúsculas.
	if otro, err := uc.productoRepo.GetByNombreClave(producto.ClaveNombre(campos.nombre)); err != nil {
		return nil, err
	} else if otro != nil && otro.ID != id {
		return nil, domain.ErrNombreDuplicado
	}

	catAnterior, err := uc.categoriaRepo.GetByID(p.CategoriaID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
	) error {
		// Defensa en profundidad: la validación ya rechazó cantidades negativas,
		// pero nada debe poder dejar el stock bajo cero.
		if campos.cantidad < 0 {
			return domain.ErrCantidadInvalida
		}

		stock, err := stockRepo.GetByProductoForUpdate(id)
		if err != nil {
			return err
		}
		cantidadAnterior := campos.cantidad
		if stock == nil {
			// Reparación de datos legados: producto sin fila de stock.
			if err := stockRepo.Create(&entity.Stock{ProductoID: id, Cantidad: campos.cantidad}); err != nil {
				return err
			}
		} else {
			cantidadAnterior = stock.Cantidad
		}
		diff := campos.cantidad - cantidadAnterior

		cambios := nuevosCambios()
		if p.Nombre != campos.nombre {
			cambios.registrar("nombre", p.Nombre, campos.nombre)
		}
		if p.Descripcion != campos.descripcion {
			cambios.registrar("descripcion", p.Descripcion, campos.descripcion)
		}
		if p.CategoriaID != campos.categoria.ID {
			cambios.registrarCategoria(catAnterior, campos.categoria)
		}
		if p.Precio != campos.precio {
			cambios.registrar("precio", p.Precio, campos.precio)
		}
		if diff != 0 {
			cambios.registrar("cantidad", cantidadAnterior, campos.cantidad)
		}

		if cambios.vacio() {
			// Nada cambió: no-op idempotente, sin movimiento ni escrituras.
			return nil
		}

		p.Nombre = campos.nombre
		p.Descripcion = campos.descripcion
		p.CategoriaID = campos.categoria.ID
		p.Precio = campos.precio
		p.Cantidad = campos.cantidad
		p.FechaModificacion = now
		if err := productoRepo.Update(p); err != nil {
			return err
		}
		if stock != nil && diff != 0 {
			if err := stockRepo.UpdateCantidad(id, campos.cantidad); err != nil {
				return err
			}
		}

		resumen, err := resumenModi(cambios.antes, cambios.despues)
		if err != nil {
			return err
		}
		cantidadMov := diff
		if cantidadMov < 0 {
			cantidadMov = -cantidadMov
		}
		return movRepo.Create(&entity.MovimientoInventario{
			ProductoID:       &p.ID,
			UsuarioID:        usuarioID,
			Cantidad:         cantidadMov,
			ProductoNombre:   campos.nombre,
			ProductoCodigo:   p.CodigoProducto,
			Tipo:             entity.MovimientoMODI,
			ResumenOperacion: resumen,
			Fecha:            now,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrNombreDuplicado
		}
		return nil, err
	}

	return &dto.ProductoActualizadoResponse{ID: p.ID, Nombre: p.Nombre}, nil
}

// Eliminar da de baja un producto: registra un movimiento BAJA con la foto previa y
// borra el producto en la misma transacción (el stock cae en cascada). Si algo falla,
// el producto queda intacto.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, usuarioID *int64, id int64) (nombre string, err error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", domain.ErrProductoNotFound
	}
	cat, err := uc.categoriaRepo.GetByID(p.CategoriaID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		productoRepo repository.ProductoRepository,
	) error {
		// Cantidad autoritativa del stock; si la fila falta, cae al snapshot del producto.
		cantidad := p.Cantidad
		stock, err := stockRepo.GetByProducto(id)
		if err != nil {
			return err
		}
		if stock != nil {
			cantidad = stock.Cantidad
		}

		resumen, err := resumenBaja(snapshotProducto(p.CodigoProducto, p.Nombre, p.Descripcion, cat, p.Precio, cantidad))
		if err != nil {
			return err
		}
		if err := movRepo.Create(&entity.MovimientoInventario{
			ProductoID:       &p.ID,
			UsuarioID:        usuarioID,
			Cantidad:         cantidad,
			ProductoNombre:   p.Nombre,
			ProductoCodigo:   p.CodigoProducto,
			Tipo:             entity.MovimientoBAJA,
			ResumenOperacion: resumen,
			Fecha:            now,
		}); err != nil {
			return err
		}
		return productoRepo.Delete(id)
	})
	if err != nil {
		return "", err
	}
	return p.Nombre, nil
}

// SiguienteCodigo calcula el próximo código correlativo para una letra.
func (uc *ProductoUseCase) SiguienteCodigo(letra string) (*dto.NextCodeResponse, error) {
	l, err := producto.ValidarLetra(letra)
	if err != nil {
		return nil, err
	}
	existentes, err := uc.productoRepo.ListCodigosPorLetra(l)
	if err != nil {
		return nil, err
	}
	codigo, seq, err := producto.SiguienteCodigo(l, existentes)
	if err != nil {
		return nil, err
	}
	return &dto.NextCodeResponse{NextCode: codigo, NextSeq: seq}, nil
}

// Detalle devuelve el producto más el catálogo de categorías (para el modal de edición).
func (uc *ProductoUseCase) Detalle(id int64) (*dto.ProductoDetalleResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNotFound
	}
	cat, err := uc.categoriaRepo.GetByID(p.CategoriaID)
	if err != nil {
		return nil, err
	}
	cats, err := uc.categoriaRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(cats))
	for _, c := range cats {
		items = append(items, toCategoriaResponse(c))
	}
	return &dto.ProductoDetalleResponse{
		Producto:   *toProductoResponse(p, cat),
		Categorias: items,
	}, nil
}

// List lista los productos del catálogo.
func (uc *ProductoUseCase) List(limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.productoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		cat, err := uc.categoriaRepo.GetByID(p.CategoriaID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toProductoResponse(p, cat))
	}
	return &dto.ProductoListResponse{Items: items}, nil
}

func toProductoResponse(p *entity.Producto, cat *entity.Categoria) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	ref := dto.CategoriaRef{ID: p.CategoriaID}
	if cat != nil {
		ref.Nombre = cat.Nombre
	}
	return &dto.ProductoResponse{
		ID:                p.ID,
		CodigoProducto:    p.CodigoProducto,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Categoria:         ref,
		Precio:            p.Precio,
		Cantidad:          p.Cantidad,
		FechaCreacion:     p.FechaCreacion,
		FechaModificacion: p.FechaModificacion,
	}
}

func toCategoriaResponse(c *entity.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:                c.ID,
		Nombre:            c.Nombre,
		Descripcion:       c.Descripcion,
		FechaCreacion:     c.FechaCreacion,
		FechaModificacion: c.FechaModificacion,
	}
}
