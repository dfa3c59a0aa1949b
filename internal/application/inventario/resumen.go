package inventario

import (
	"encoding/json"

	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
)

// resumenOperacion es el cuerpo JSON guardado en MovimientoInventario.ResumenOperacion.
// ALTA: antes=null, despues=snapshot completo. BAJA: al revés. MODI: antes y despues
// contienen solo los campos que cambiaron.
type resumenOperacion struct {
	Antes   map[string]any `json:"antes"`
	Despues map[string]any `json:"despues"`
}

// snapshotProducto arma la foto completa del estado de un producto.
// La categoría se expande a {id, nombre} para que el historial sea legible
// aunque la categoría se borre después.
func snapshotProducto(codigo, nombre, descripcion string, cat *entity.Categoria, precio, cantidad int) map[string]any {
	snap := map[string]any{
		"codigo_producto": codigo,
		"nombre":          nombre,
		"descripcion":     descripcion,
		"precio":          precio,
		"cantidad":        cantidad,
	}
	if cat != nil {
		snap["categoria"] = map[string]any{"id": cat.ID, "nombre": cat.Nombre}
	} else {
		snap["categoria"] = nil
	}
	return snap
}

func resumenAlta(despues map[string]any) (string, error) {
	return marshalResumen(resumenOperacion{Antes: nil, Despues: despues})
}

func resumenBaja(antes map[string]any) (string, error) {
	return marshalResumen(resumenOperacion{Antes: antes, Despues: nil})
}

func resumenModi(antes, despues map[string]any) (string, error) {
	return marshalResumen(resumenOperacion{Antes: antes, Despues: despues})
}

func marshalResumen(r resumenOperacion) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// cambiosProducto acumula los campos modificados de una actualización.
// antes/despues quedan vacíos cuando nada cambió (la operación es un no-op auditable).
type cambiosProducto struct {
	antes   map[string]any
	despues map[string]any
}

func nuevosCambios() *cambiosProducto {
	return &cambiosProducto{antes: map[string]any{}, despues: map[string]any{}}
}

func (c *cambiosProducto) registrar(campo string, antes, despues any) {
	c.antes[campo] = antes
	c.despues[campo] = despues
}

func (c *cambiosProducto) registrarCategoria(antes, despues *entity.Categoria) {
	c.antes["categoria"] = categoriaRef(antes)
	c.despues["categoria"] = categoriaRef(despues)
}

func (c *cambiosProducto) vacio() bool {
	return len(c.antes) == 0
}

func categoriaRef(cat *entity.Categoria) any {
	if cat == nil {
		return nil
	}
	return map[string]any{"id": cat.ID, "nombre": cat.Nombre}
}
