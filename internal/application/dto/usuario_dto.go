package dto

import "time"

// UsuarioResponse representación de un usuario. Nunca incluye el hash de contraseña.
type UsuarioResponse struct {
	ID            int64      `json:"id"`
	Nombres       string     `json:"nombres"`
	Usuario       string     `json:"usuario"`
	Email         string     `json:"email"`
	FechaCreacion time.Time  `json:"fecha_creacion"`
	UltimoLogin   *time.Time `json:"ultimo_login,omitempty"`
}

// UsuarioListResponse lista de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
}
