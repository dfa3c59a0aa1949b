package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mk-vzla/calidadsoftware/internal/application/auth"
	"github.com/mk-vzla/calidadsoftware/internal/application/inventario"
	"github.com/mk-vzla/calidadsoftware/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC    *inventario.ProductoUseCase
	CategoriaUC   *usecase.CategoriaUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	MovimientoUC  *usecase.MovimientoUseCase
	AuthUC        *auth.AuthUseCase
	Reporte       ReporteGenerator
	AppName       string
	SessionCookie string
	SessionExpMin int
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionCookie, deps.SessionExpMin)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas por sesión
	core := app.Group("/core", SessionMiddleware(deps.AuthUC, deps.SessionCookie))

	// Productos
	productos := core.Group("/producto")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/add", productoHandler.Create)
	productos.Get("/next_code/:letter", productoHandler.NextCode)
	productos.Post("/update/:id", productoHandler.Update)
	productos.Post("/delete/:id", productoHandler.Delete)
	productos.Get("/:id", productoHandler.Detalle)

	// Categorías
	categorias := core.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/add", categoriaHandler.Create)
	categorias.Post("/delete/:id", categoriaHandler.Delete)

	// Usuarios
	usuarios := core.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)

	// Historial de movimientos
	movimientos := core.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC, deps.Reporte, deps.AppName)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/reporte", movimientoHandler.Reporte)
}
