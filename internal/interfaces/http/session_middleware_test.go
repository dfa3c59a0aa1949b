package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mk-vzla/calidadsoftware/internal/application/auth"
	"github.com/mk-vzla/calidadsoftware/internal/domain"
	"github.com/mk-vzla/calidadsoftware/internal/domain/entity"
	apphttp "github.com/mk-vzla/calidadsoftware/internal/interfaces/http"
	pkgjwt "github.com/mk-vzla/calidadsoftware/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testIssuer     = "calidadsoftware-test"
	testCookieName = "session_token"
	testExpMin     = 60
)

// fakeUsuarioRepo repo mínimo: un único usuario en memoria.
type fakeUsuarioRepo struct {
	usuario *entity.Usuario // nil simula usuario borrado
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error { return nil }

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	if r.usuario == nil || r.usuario.ID != id {
		return nil, nil
	}
	cp := *r.usuario
	return &cp, nil
}

func (r *fakeUsuarioRepo) GetByUsuario(usuario string) (*entity.Usuario, error) {
	if r.usuario == nil || r.usuario.Usuario != usuario {
		return nil, nil
	}
	cp := *r.usuario
	return &cp, nil
}

func (r *fakeUsuarioRepo) UpdateUltimoLogin(id int64, cuando time.Time) error {
	if r.usuario == nil {
		return domain.ErrUsuarioNotFound
	}
	r.usuario.UltimoLogin = &cuando
	return nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	if r.usuario == nil {
		return nil, nil
	}
	cp := *r.usuario
	return []*entity.Usuario{&cp}, nil
}

// buildGatedApp construye una app Fiber con una ruta protegida por el gate de sesión.
func buildGatedApp(repo *fakeUsuarioRepo) *fiber.App {
	authUC := auth.NewAuthUseCase(repo, auth.SessionConfig{
		Secret:     testSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	app.Get("/core/ping",
		apphttp.SessionMiddleware(authUC, testCookieName),
		func(c *fiber.Ctx) error {
			id := apphttp.UsuarioID(c)
			return c.JSON(fiber.Map{"ok": true, "usuario_id": id})
		},
	)
	return app
}

func validUsuario() *entity.Usuario {
	return &entity.Usuario{
		ID:            42,
		Nombres:       "Usuario de Prueba",
		Usuario:       "admin",
		Email:         "admin@example.com",
		PasswordHash:  "$2a$04$invalido",
		FechaCreacion: time.Now(),
	}
}

func sessionToken(t *testing.T, usuarioID int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, usuarioID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Gate de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionMiddleware_CookieValida(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: validUsuario()}
	app := buildGatedApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/core/ping", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionToken(t, 42)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(42), body["usuario_id"], "el id del usuario debe quedar en locals")
}

func TestSessionMiddleware_BearerValido(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: validUsuario()}
	app := buildGatedApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/core/ping", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, 42))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionMiddleware_SinToken_JSONRecibe401(t *testing.T) {
	app := buildGatedApp(&fakeUsuarioRepo{usuario: validUsuario()})

	req := httptest.NewRequest(http.MethodGet, "/core/ping", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No autorizado", body["error"])
}

func TestSessionMiddleware_SinToken_NavegadorRedirigeAlLogin(t *testing.T) {
	app := buildGatedApp(&fakeUsuarioRepo{usuario: validUsuario()})

	req := httptest.NewRequest(http.MethodGet, "/core/ping", nil)
	req.Header.Set("Accept", "text/html")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestSessionMiddleware_AcceptJSONCuentaComoAJAX(t *testing.T) {
	app := buildGatedApp(&fakeUsuarioRepo{usuario: validUsuario()})

	req := httptest.NewRequest(http.MethodGet, "/core/ping", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_UsuarioBorrado_Rechaza(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: validUsuario()}
	app := buildGatedApp(repo)
	token := sessionToken(t, 42)

	// El usuario desaparece después de emitido el token: la sesión muere con él.
	repo.usuario = nil

	req := httptest.NewRequest(http.MethodGet, "/core/ping", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_TokenInvalido_Rechaza(t *testing.T) {
	app := buildGatedApp(&fakeUsuarioRepo{usuario: validUsuario()})

	req := httptest.NewRequest(http.MethodGet, "/core/ping", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token.invalido.aqui"})
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	usuarioID, usuario, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), usuarioID)
	assert.Equal(t, "admin", usuario)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
