package inventario_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/application/inventario"
	"github.com/mk-vzla/calidadsoftware/internal/domain"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido por todos los repos fake.
type memStore struct {
	productos   map[int64]*entity.Producto
	stocks      map[int64]*entity.Stock // key: producto_id
	categorias  map[int64]*entity.Categoria
	movimientos []*entity.MovimientoInventario
	nextID      int64

	// failOnMovimiento simula un fallo de storage al insertar en el historial.
	failOnMovimiento bool
}

func newMemStore() *memStore {
	return &memStore{
		productos:  map[int64]*entity.Producto{},
		stocks:     map[int64]*entity.Stock{},
		categorias: map[int64]*entity.Categoria{},
		nextID:     1,
	}
}

func (s *memStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.nextID = s.nextID
	c.failOnMovimiento = s.failOnMovimiento
	for k, v := range s.productos {
		cp := *v
		c.productos[k] = &cp
	}
	for k, v := range s.stocks {
		cp := *v
		c.stocks[k] = &cp
	}
	for k, v := range s.categorias {
		cp := *v
		c.categorias[k] = &cp
	}
	for _, m := range s.movimientos {
		cp := *m
		c.movimientos = append(c.movimientos, &cp)
	}
	return c
}

// memTxRunner emula la transacción: si fn falla, restaura el estado previo.
type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	backup := r.store.clone()
	err := fn(&memMovimientoRepo{r.store}, &memStockRepo{r.store}, &memProductoRepo{r.store})
	if err != nil {
		*r.store = *backup
	}
	return err
}

type memProductoRepo struct{ store *memStore }

func (r *memProductoRepo) Create(p *entity.Producto) error {
	for _, existing := range r.store.productos {
		if existing.CodigoProducto == p.CodigoProducto ||
			strings.EqualFold(existing.Nombre, p.Nombre) {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.store.id()
	cp := *p
	r.store.productos[p.ID] = &cp
	return nil
}

func (r *memProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.store.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.store.productos {
		if p.CodigoProducto == codigo {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductoRepo) GetByNombreClave(clave string) (*entity.Producto, error) {
	for _, p := range r.store.productos {
		if strings.ToLower(p.Nombre) == clave {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductoRepo) Update(p *entity.Producto) error {
	if _, ok := r.store.productos[p.ID]; !ok {
		return domain.ErrProductoNotFound
	}
	cp := *p
	r.store.productos[p.ID] = &cp
	return nil
}

func (r *memProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.store.productos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductoRepo) ListCodigosPorLetra(letra string) ([]string, error) {
	var out []string
	for _, p := range r.store.productos {
		if strings.HasPrefix(p.CodigoProducto, letra) {
			out = append(out, p.CodigoProducto)
		}
	}
	return out, nil
}

func (r *memProductoRepo) Delete(id int64) error {
	if _, ok := r.store.productos[id]; !ok {
		return domain.ErrProductoNotFound
	}
	delete(r.store.productos, id)
	delete(r.store.stocks, id) // cascade producto → stock
	return nil
}

type memStockRepo struct{ store *memStore }

func (r *memStockRepo) GetByProducto(productoID int64) (*entity.Stock, error) {
	s, ok := r.store.stocks[productoID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStockRepo) GetByProductoForUpdate(productoID int64) (*entity.Stock, error) {
	return r.GetByProducto(productoID)
}

func (r *memStockRepo) Create(s *entity.Stock) error {
	if _, ok := r.store.stocks[s.ProductoID]; ok {
		return domain.ErrDuplicate
	}
	s.ID = r.store.id()
	cp := *s
	r.store.stocks[s.ProductoID] = &cp
	return nil
}

func (r *memStockRepo) UpdateCantidad(productoID int64, cantidad int) error {
	s, ok := r.store.stocks[productoID]
	if !ok {
		return domain.ErrNotFound
	}
	s.Cantidad = cantidad
	return nil
}

type memCategoriaRepo struct{ store *memStore }

func (r *memCategoriaRepo) Create(c *entity.Categoria) error {
	for _, existing := range r.store.categorias {
		if existing.Nombre == c.Nombre {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.store.id()
	cp := *c
	r.store.categorias[c.ID] = &cp
	return nil
}

func (r *memCategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	c, ok := r.store.categorias[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoriaRepo) List() ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range r.store.categorias {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCategoriaRepo) Delete(id int64) error {
	delete(r.store.categorias, id)
	return nil
}

type memMovimientoRepo struct{ store *memStore }

func (r *memMovimientoRepo) Create(m *entity.MovimientoInventario) error {
	if r.store.failOnMovimiento {
		return assert.AnError
	}
	m.ID = r.store.id()
	cp := *m
	r.store.movimientos = append(r.store.movimientos, &cp)
	return nil
}

func (r *memMovimientoRepo) List(limit, offset int) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for i := len(r.store.movimientos) - 1; i >= 0; i-- {
		cp := *r.store.movimientos[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMovimientoRepo) ListByProducto(productoID int64, limit, offset int) ([]*entity.MovimientoInventario, error) {
	all, _ := r.List(limit, offset)
	var out []*entity.MovimientoInventario
	for _, m := range all {
		if m.ProductoID != nil && *m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store *memStore
	uc    *inventario.ProductoUseCase
	cat1  *entity.Categoria
	cat2  *entity.Categoria
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	catRepo := &memCategoriaRepo{store}

	cat1 := &entity.Categoria{Nombre: "Herramientas", FechaCreacion: time.Now()}
	require.NoError(t, catRepo.Create(cat1))
	cat2 := &entity.Categoria{Nombre: "Insumos", FechaCreacion: time.Now()}
	require.NoError(t, catRepo.Create(cat2))

	uc := inventario.NewProductoUseCase(
		&memTxRunner{store},
		&memProductoRepo{store},
		catRepo,
	)
	return &fixture{store: store, uc: uc, cat1: cat1, cat2: cat2}
}

func formProducto(codigo, nombre, categoria, precio, cantidad string) dto.ProductoFormRequest {
	return dto.ProductoFormRequest{
		CodigoProducto: codigo,
		Nombre:         nombre,
		Descripcion:    "descripción de prueba",
		Categoria:      dto.CampoEntero(categoria),
		Precio:         dto.CampoEntero(precio),
		Cantidad:       dto.CampoEntero(cantidad),
	}
}

func usuarioID(id int64) *int64 { return &id }

// decodeResumen parsea el JSON del resumen de operación.
func decodeResumen(t *testing.T, raw string) (antes, despues map[string]any) {
	t.Helper()
	var body struct {
		Antes   map[string]any `json:"antes"`
		Despues map[string]any `json:"despues"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body.Antes, body.Despues
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_AltaCompleta(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Crear(context.Background(), usuarioID(7),
		formProducto("M001", "Martillo", "1", "2500", "5"))
	require.NoError(t, err)

	assert.Equal(t, "M001", out.CodigoProducto)
	assert.Equal(t, "Martillo", out.Nombre)
	assert.Equal(t, f.cat1.ID, out.Categoria.ID)
	assert.Equal(t, "Herramientas", out.Categoria.Nombre)
	assert.Equal(t, 2500, out.Precio)
	assert.Equal(t, 5, out.Cantidad)

	// Producto + fila de stock + movimiento ALTA, todo persistido.
	require.Len(t, f.store.productos, 1)
	stock := f.store.stocks[out.ID]
	require.NotNil(t, stock, "el alta debe crear la fila de stock")
	assert.Equal(t, 5, stock.Cantidad)

	require.Len(t, f.store.movimientos, 1)
	mov := f.store.movimientos[0]
	assert.Equal(t, entity.MovimientoALTA, mov.Tipo)
	assert.Equal(t, 5, mov.Cantidad)
	assert.Equal(t, "Martillo", mov.ProductoNombre)
	assert.Equal(t, "M001", mov.ProductoCodigo)
	require.NotNil(t, mov.UsuarioID)
	assert.Equal(t, int64(7), *mov.UsuarioID)

	antes, despues := decodeResumen(t, mov.ResumenOperacion)
	assert.Nil(t, antes, "en un alta no hay estado previo")
	assert.Equal(t, float64(5), despues["cantidad"])
	assert.Equal(t, "M001", despues["codigo_producto"])
	assert.Equal(t, map[string]any{"id": float64(f.cat1.ID), "nombre": "Herramientas"}, despues["categoria"])
}

func TestCrear_NormalizaCodigo(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Crear(context.Background(), nil,
		formProducto("  m001 ", "Martillo", "1", "100", "1"))
	require.NoError(t, err)
	assert.Equal(t, "M001", out.CodigoProducto)
}

func TestCrear_CodigoInvalido(t *testing.T) {
	f := newFixture(t)

	casos := []string{"", "M1", "M0011", "1001", "MM01", "M01A"}
	for _, codigo := range casos {
		_, err := f.uc.Crear(context.Background(), nil,
			formProducto(codigo, "Martillo", "1", "100", "1"))
		assert.ErrorIs(t, err, domain.ErrCodigoInvalido, "código %q debe rechazarse", codigo)
	}
	assert.Empty(t, f.store.productos, "ningún producto debe persistirse")
}

func TestCrear_NombreObligatorio(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), nil,
		formProducto("M001", "   ", "1", "100", "1"))
	assert.ErrorIs(t, err, domain.ErrNombreRequerido)
}

func TestCrear_CategoriaAusenteOInexistente(t *testing.T) {
	f := newFixture(t)

	// Categoría ausente y categoría inexistente responden con el mismo error.
	_, err := f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "", "100", "1"))
	assert.ErrorIs(t, err, domain.ErrCategoriaRequerida)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "999", "100", "1"))
	assert.ErrorIs(t, err, domain.ErrCategoriaRequerida)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "abc", "100", "1"))
	assert.ErrorIs(t, err, domain.ErrCategoriaRequerida)

	assert.Empty(t, f.store.productos)
	assert.Empty(t, f.store.movimientos)
}

func TestCrear_PrecioYCantidadEnterosEstrictos(t *testing.T) {
	f := newFixture(t)

	// Decimales con punto o coma no son enteros válidos.
	_, err := f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "12.50", "1"))
	assert.ErrorIs(t, err, domain.ErrPrecioInvalido)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "12,50", "1"))
	assert.ErrorIs(t, err, domain.ErrPrecioInvalido)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "-1", "1"))
	assert.ErrorIs(t, err, domain.ErrPrecioInvalido)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "100", "-3"))
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "100", "2.5"))
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	assert.Empty(t, f.store.productos)
}

func TestCrear_CodigoDuplicado(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "100", "1"))
	require.NoError(t, err)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Serrucho", "1", "100", "1"))
	assert.ErrorIs(t, err, domain.ErrCodigoDuplicado)

	assert.Len(t, f.store.productos, 1)
	assert.Len(t, f.store.movimientos, 1, "el intento duplicado no debe dejar movimiento")
}

func TestCrear_NombreDuplicadoSinDistinguirMayusculas(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "100", "1"))
	require.NoError(t, err)

	_, err = f.uc.Crear(context.Background(), nil,
		formProducto("M002", "MARTILLO", "1", "100", "1"))
	assert.ErrorIs(t, err, domain.ErrNombreDuplicado)

	assert.Len(t, f.store.productos, 1)
}

func TestCrear_FalloEnHistorialRevierteTodo(t *testing.T) {
	f := newFixture(t)
	f.store.failOnMovimiento = true

	_, err := f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "100", "5"))
	require.Error(t, err)

	// La transacción completa se revierte: ni producto ni stock.
	assert.Empty(t, f.store.productos)
	assert.Empty(t, f.store.stocks)
	assert.Empty(t, f.store.movimientos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar
// ──────────────────────────────────────────────────────────────────────────────

func crearMartillo(t *testing.T, f *fixture) int64 {
	t.Helper()
	out, err := f.uc.Crear(context.Background(), nil,
		formProducto("M001", "Martillo", "1", "2500", "5"))
	require.NoError(t, err)
	return out.ID
}

func TestActualizar_CambioDeCantidad(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)

	out, err := f.uc.Actualizar(context.Background(), usuarioID(3), id,
		formProducto("", "Martillo", "1", "2500", "15"))
	require.NoError(t, err)
	assert.Equal(t, id, out.ID)
	assert.Equal(t, "Martillo", out.Nombre)

	assert.Equal(t, 15, f.store.stocks[id].Cantidad)
	assert.Equal(t, 15, f.store.productos[id].Cantidad)

	require.Len(t, f.store.movimientos, 2) // ALTA + MODI
	mov := f.store.movimientos[1]
	assert.Equal(t, entity.MovimientoMODI, mov.Tipo)
	assert.Equal(t, 10, mov.Cantidad, "la cantidad del movimiento es el |delta| de stock")

	antes, despues := decodeResumen(t, mov.ResumenOperacion)
	assert.Equal(t, map[string]any{"cantidad": float64(5)}, antes)
	assert.Equal(t, map[string]any{"cantidad": float64(15)}, despues)
}

func TestActualizar_BajaDeCantidad(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)

	_, err := f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "Martillo", "1", "2500", "2"))
	require.NoError(t, err)

	assert.Equal(t, 2, f.store.stocks[id].Cantidad)
	mov := f.store.movimientos[len(f.store.movimientos)-1]
	assert.Equal(t, 3, mov.Cantidad, "5 → 2 registra |delta| 3")
}

func TestActualizar_CambioDeCampoSinCantidad(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)

	_, err := f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "Martillo", "1", "3000", "5"))
	require.NoError(t, err)

	assert.Equal(t, 5, f.store.stocks[id].Cantidad, "el stock no cambia")
	mov := f.store.movimientos[len(f.store.movimientos)-1]
	assert.Equal(t, entity.MovimientoMODI, mov.Tipo)
	assert.Equal(t, 0, mov.Cantidad, "sin delta de stock la cantidad del movimiento es 0")

	antes, despues := decodeResumen(t, mov.ResumenOperacion)
	assert.Equal(t, map[string]any{"precio": float64(2500)}, antes)
	assert.Equal(t, map[string]any{"precio": float64(3000)}, despues)
}

func TestActualizar_CambioDeCategoriaEnResumen(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)

	_, err := f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "Martillo", "2", "2500", "5"))
	require.NoError(t, err)

	mov := f.store.movimientos[len(f.store.movimientos)-1]
	antes, despues := decodeResumen(t, mov.ResumenOperacion)
	assert.Equal(t, map[string]any{"id": float64(f.cat1.ID), "nombre": "Herramientas"}, antes["categoria"])
	assert.Equal(t, map[string]any{"id": float64(f.cat2.ID), "nombre": "Insumos"}, despues["categoria"])
}

func TestActualizar_SinCambiosEsNoOp(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)
	movsAntes := len(f.store.movimientos)
	fechaAntes := f.store.productos[id].FechaModificacion

	out, err := f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "Martillo", "1", "2500", "5"))
	require.NoError(t, err)
	assert.Equal(t, "Martillo", out.Nombre)

	assert.Len(t, f.store.movimientos, movsAntes, "un update sin cambios no registra movimiento")
	assert.Equal(t, fechaAntes, f.store.productos[id].FechaModificacion, "sin cambios no se reescribe el producto")
}

func TestActualizar_CantidadNegativaNoEscribeNada(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)
	movsAntes := len(f.store.movimientos)

	_, err := f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "Martillo", "1", "2500", "-4"))
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	assert.Equal(t, 5, f.store.stocks[id].Cantidad)
	assert.Len(t, f.store.movimientos, movsAntes)
}

func TestActualizar_NombreDuplicadoDeOtroProducto(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)
	_, err := f.uc.Crear(context.Background(), nil,
		formProducto("S001", "Serrucho", "1", "100", "1"))
	require.NoError(t, err)

	// Renombrar Martillo a "serrucho" colisiona sin distinguir mayúsculas.
	_, err = f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "serrucho", "1", "2500", "5"))
	assert.ErrorIs(t, err, domain.ErrNombreDuplicado)

	// Conservar el propio nombre no es una colisión.
	_, err = f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "Martillo", "1", "9999", "5"))
	assert.NoError(t, err)
}

func TestActualizar_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Actualizar(context.Background(), nil, 404,
		formProducto("", "Martillo", "1", "100", "1"))
	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
}

func TestActualizar_ReparaStockFaltante(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)

	// Dato legado: producto sin fila de stock.
	delete(f.store.stocks, id)

	_, err := f.uc.Actualizar(context.Background(), nil, id,
		formProducto("", "Martillo", "1", "3000", "7"))
	require.NoError(t, err)

	stock := f.store.stocks[id]
	require.NotNil(t, stock, "la fila de stock debe recrearse")
	assert.Equal(t, 7, stock.Cantidad)

	// La fila recién creada parte en la cantidad nueva: el delta es 0.
	mov := f.store.movimientos[len(f.store.movimientos)-1]
	assert.Equal(t, 0, mov.Cantidad)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_BajaConHistorial(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)

	nombre, err := f.uc.Eliminar(context.Background(), usuarioID(9), id)
	require.NoError(t, err)
	assert.Equal(t, "Martillo", nombre)

	assert.Empty(t, f.store.productos)
	assert.Empty(t, f.store.stocks, "el stock cae en cascada con el producto")

	require.Len(t, f.store.movimientos, 2) // ALTA + BAJA
	mov := f.store.movimientos[1]
	assert.Equal(t, entity.MovimientoBAJA, mov.Tipo)
	assert.Equal(t, 5, mov.Cantidad, "la baja registra la cantidad que había en stock")
	assert.Equal(t, "Martillo", mov.ProductoNombre)
	assert.Equal(t, "M001", mov.ProductoCodigo)

	antes, despues := decodeResumen(t, mov.ResumenOperacion)
	assert.Nil(t, despues, "tras la baja no hay estado posterior")
	assert.Equal(t, float64(5), antes["cantidad"])
	assert.Equal(t, "M001", antes["codigo_producto"])
}

func TestEliminar_FalloEnHistorialConservaElProducto(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)
	f.store.failOnMovimiento = true

	_, err := f.uc.Eliminar(context.Background(), nil, id)
	require.Error(t, err)

	assert.NotNil(t, f.store.productos[id], "si el historial falla el producto queda intacto")
	assert.NotNil(t, f.store.stocks[id])
}

func TestEliminar_Inexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Eliminar(context.Background(), nil, 404)
	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// SiguienteCodigo / Detalle
// ──────────────────────────────────────────────────────────────────────────────

func TestSiguienteCodigo_Correlativo(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Crear(context.Background(), nil, formProducto("M001", "Martillo", "1", "100", "1"))
	require.NoError(t, err)
	_, err = f.uc.Crear(context.Background(), nil, formProducto("M003", "Maza", "1", "100", "1"))
	require.NoError(t, err)

	out, err := f.uc.SiguienteCodigo("m")
	require.NoError(t, err)
	assert.Equal(t, "M004", out.NextCode, "sigue al máximo existente, no rellena huecos")
	assert.Equal(t, 4, out.NextSeq)

	out, err = f.uc.SiguienteCodigo("X")
	require.NoError(t, err)
	assert.Equal(t, "X001", out.NextCode)
	assert.Equal(t, 1, out.NextSeq)
}

func TestSiguienteCodigo_LetraInvalida(t *testing.T) {
	f := newFixture(t)

	for _, letra := range []string{"", "MM", "1", "-"} {
		_, err := f.uc.SiguienteCodigo(letra)
		assert.Error(t, err, "letra %q debe rechazarse", letra)
	}
}

func TestDetalle_IncluyeCatalogoDeCategorias(t *testing.T) {
	f := newFixture(t)
	id := crearMartillo(t, f)

	out, err := f.uc.Detalle(id)
	require.NoError(t, err)
	assert.Equal(t, "M001", out.Producto.CodigoProducto)
	assert.Equal(t, "Herramientas", out.Producto.Categoria.Nombre)
	assert.Len(t, out.Categorias, 2)
}

func TestDetalle_Inexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Detalle(404)
	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
}
