// Aplica las migraciones embebidas contra la base configurada y termina.
// Útil para pipelines de despliegue donde la API no debe migrar al arrancar.
package main

import (
	"context"

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

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones aplicadas")
}
