package entity

import "time"

// Usuario representa un usuario del sistema. El password se guarda como hash bcrypt,
// nunca en claro después de persistir.
type Usuario struct {
	ID            int64
	Nombres       string
	Usuario       string // login único
	Email         string // único
	PasswordHash  string
	FechaCreacion time.Time
	UltimoLogin   *time.Time // nil hasta el primer login
}
