package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mk-vzla/calidadsoftware/internal/application/dto"
	"github.com/mk-vzla/calidadsoftware/internal/domain"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	"github.com/mk-vzla/calidadsoftware/internal/domain/repository"
	"github.com/mk-vzla/calidadsoftware/pkg/jwt"
)

// SessionConfig configuración para la emisión de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, verificación de sesión y alta de usuarios.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	sessionCfg  SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, sessionCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, sessionCfg: sessionCfg}
}

// Login verifica usuario/password contra el hash bcrypt, actualiza ultimo_login y
// emite el token de sesión. Usuario inexistente y contraseña incorrecta responden igual.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarioRepo.GetByUsuario(in.Usuario)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}

	now := time.Now()
	if err := uc.usuarioRepo.UpdateUltimoLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.UltimoLogin = &now

	token, err := jwt.Generate(uc.sessionCfg.Secret, user.ID, user.Usuario, uc.sessionCfg.Issuer, uc.sessionCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(user),
	}, nil
}

// VerificarSesion valida el token y comprueba que el usuario siga existiendo.
// El gate de sesión lo invoca en cada request (mismo comportamiento que el sistema
// original, que consultaba al usuario en cada petición).
func (uc *AuthUseCase) VerificarSesion(token string) (*entity.Usuario, error) {
	usuarioID, _, err := jwt.Parse(uc.sessionCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// RegistrarUsuario crea un usuario con el password hasheado con bcrypt.
// El alta de usuarios es una acción administrativa, no expuesta en el router público.
func (uc *AuthUseCase) RegistrarUsuario(nombres, usuario, email, password string) (*dto.UsuarioResponse, error) {
	existente, err := uc.usuarioRepo.GetByUsuario(usuario)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		Nombres:       nombres,
		Usuario:       usuario,
		Email:         email,
		PasswordHash:  string(hash),
		FechaCreacion: time.Now(),
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Nombres:       u.Nombres,
		Usuario:       u.Usuario,
		Email:         u.Email,
		FechaCreacion: u.FechaCreacion,
		UltimoLogin:   u.UltimoLogin,
	}
}
