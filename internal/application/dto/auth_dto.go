package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Usuario  string `json:"usuario" form:"usuario"`
	Password string `json:"password" form:"password"`
}

// LoginResponse token de sesión más datos del usuario conectado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
