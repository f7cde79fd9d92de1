// seed_meal_types agrega los tipos de comida por defecto a todos los hogares que aún no los tienen.
// Es idempotente: los nombres ya existentes en el hogar no se duplican.
//
// Uso: go run ./cmd/seed_meal_types [ruta/meal_types.yaml]
// Sin argumento usa la lista embebida (Breakfast, Lunch, Dinner).
package main

import (
	"context"
	"os"

	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/seed"
	"github.com/jhoicas/Despensa-api/pkg/config"
	"github.com/jhoicas/Despensa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed_meal_types"})

	names, err := loadNames(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("leer tipos de comida")
	}

	if _, err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	households := postgres.NewHouseholdRepository(pool)
	mealTypes := usecase.NewMealTypeUseCase(postgres.NewMealTypeRepository(pool), households, names)

	list, err := households.ListAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar hogares")
	}

	total := 0
	for _, h := range list {
		n, err := mealTypes.SeedDefaults(ctx, h.ID)
		if err != nil {
			log.Error().Err(err).Str("household_id", h.ID).Msg("sembrar tipos de comida")
			continue
		}
		if n > 0 {
			log.Info().Str("household_id", h.ID).Int("insertados", n).Msg("tipos de comida agregados")
		}
		total += n
	}
	log.Info().Int("hogares", len(list)).Int("insertados", total).Msg("seed completado")
}

func loadNames(args []string) ([]string, error) {
	if len(args) == 0 {
		return seed.DefaultMealTypes()
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	return seed.ParseMealTypes(data)
}
