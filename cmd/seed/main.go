// Crea el usuario administrador inicial si no existe. Pensado para entornos
// nuevos: la aplicación no expone alta de usuarios en el router público.
//
// Uso:
//
//	SEED_USUARIO=admin SEED_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/mk-vzla/calidadsoftware/internal/application/auth"
	"github.com/mk-vzla/calidadsoftware/internal/infrastructure/postgres"
	"github.com/mk-vzla/calidadsoftware/pkg/config"
	"github.com/mk-vzla/calidadsoftware/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	usuario := getenv("SEED_USUARIO", "admin")
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal().Msg("SEED_PASSWORD es requerido")
	}
	nombres := getenv("SEED_NOMBRES", "Administrador")
	email := getenv("SEED_EMAIL", "admin@example.com")

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpMinutes,
		Issuer:     cfg.Session.Issuer,
	})

	existente, err := usuarioRepo.GetByUsuario(usuario)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario")
	}
	if existente != nil {
		log.Info().Str("usuario", usuario).Msg("el usuario ya existe, nada que hacer")
		return
	}

	out, err := authUC.RegistrarUsuario(nombres, usuario, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("crear usuario")
	}
	log.Info().Int64("id", out.ID).Str("usuario", out.Usuario).Msg("usuario creado")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
