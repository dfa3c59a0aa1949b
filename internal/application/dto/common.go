package dto

import (
	"bytes"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error uniforme: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MensajeResponse respuesta simple con mensaje para operaciones sin payload.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// CampoEntero acepta el valor tal como llega (número JSON, string JSON o valor de
// formulario) y lo valida después como entero estricto. Un precio "12.50" o "12,50"
// no es entero y se rechaza en la validación, no en el parseo del cuerpo.
type CampoEntero string

// UnmarshalJSON guarda el valor crudo: números y strings quedan como texto; null queda vacío.
func (c *CampoEntero) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "null" {
		s = ""
	}
	*c = CampoEntero(s)
	return nil
}

// Vacio indica si el campo no fue enviado o llegó vacío.
func (c CampoEntero) Vacio() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Entero convierte a entero estricto. "12.50", "12,50" o texto no numérico fallan.
func (c CampoEntero) Entero() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(c)))
}
