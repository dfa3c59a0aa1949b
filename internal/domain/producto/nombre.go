package producto

import (
	"strings"

	"golang.org/x/text/cases"
)

// ClaveNombre devuelve la clave de unicidad del nombre: recortado y con case folding
// Unicode, para que "Martillo" y "MARTILLO" colisionen. La misma clave se usa en el
// chequeo proactivo y en el índice único del storage.
func ClaveNombre(nombre string) string {
	return cases.Fold().String(strings.TrimSpace(nombre))
}
