package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mk-vzla/calidadsoftware/internal/application/auth"
	"github.com/mk-vzla/calidadsoftware/internal/application/inventario"
	"github.com/mk-vzla/calidadsoftware/internal/application/usecase"
	infrapdf "github.com/mk-vzla/calidadsoftware/internal/infrastructure/pdf"
	"github.com/mk-vzla/calidadsoftware/internal/infrastructure/postgres"
	httpRouter "github.com/mk-vzla/calidadsoftware/internal/interfaces/http"
	"github.com/mk-vzla/calidadsoftware/pkg/config"
	"github.com/mk-vzla/calidadsoftware/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := inventario.NewProductoUseCase(txRunner, productoRepo, categoriaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpMinutes,
		Issuer:     cfg.Session.Issuer,
	})

	reporteGenerator := infrapdf.NewMarotoReporteGenerator()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(registry)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggingMiddleware(log))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:    productoUC,
		CategoriaUC:   categoriaUC,
		UsuarioUC:     usuarioUC,
		MovimientoUC:  movimientoUC,
		AuthUC:        authUC,
		Reporte:       reporteGenerator,
		AppName:       cfg.App.Name,
		SessionCookie: cfg.Session.CookieName,
		SessionExpMin: cfg.Session.ExpMinutes,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
