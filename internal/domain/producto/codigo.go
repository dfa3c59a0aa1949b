// Package producto contiene reglas puras del dominio de productos:
// formato del código y asignación del siguiente código correlativo.
package producto

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mk-vzla/calidadsoftware/internal/domain"
)

// Formato del código: 1 letra inicial + 3 dígitos correlativos. Ej.: M001, A015, H300.
var codigoPattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)

// NormalizarCodigo recorta espacios y pasa a mayúsculas antes de validar.
func NormalizarCodigo(codigo string) string {
	return strings.ToUpper(strings.TrimSpace(codigo))
}

// ValidarCodigo verifica el formato letra + 3 dígitos sobre el código ya normalizado.
func ValidarCodigo(codigo string) error {
	if !codigoPattern.MatchString(codigo) {
		return domain.ErrCodigoInvalido
	}
	return nil
}

// ValidarLetra acepta exactamente una letra A-Z (se normaliza a mayúscula).
func ValidarLetra(letra string) (string, error) {
	l := strings.ToUpper(strings.TrimSpace(letra))
	if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' {
		return "", domain.ErrCodigoInvalido
	}
	return l, nil
}

// SiguienteCodigo recorre los códigos existentes con el prefijo de la letra, toma el
// mayor sufijo numérico y devuelve letra + (max+1) con padding a 3 dígitos.
// Sufijos no numéricos se ignoran en vez de fallar. Es un max-scan O(n); la unicidad
// final la garantiza el chequeo de duplicados al crear.
func SiguienteCodigo(letra string, existentes []string) (codigo string, seq int, err error) {
	l, err := ValidarLetra(letra)
	if err != nil {
		return "", 0, err
	}
	max := 0
	for _, c := range existentes {
		if len(c) < 2 || !strings.HasPrefix(c, l) {
			continue
		}
		n, convErr := strconv.Atoi(c[1:])
		if convErr != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	seq = max + 1
	return fmt.Sprintf("%s%03d", l, seq), seq, nil
}
