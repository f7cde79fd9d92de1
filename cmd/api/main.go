package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/mealplan"
	"github.com/jhoicas/Despensa-api/internal/application/shopping"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Despensa-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/Despensa-api/internal/interfaces/http"
	"github.com/jhoicas/Despensa-api/pkg/config"
	"github.com/jhoicas/Despensa-api/pkg/logger"

	_ "github.com/jhoicas/Despensa-api/docs"
)

// @title                       Despensa API
// @version                     1.0
// @description                 Planificación semanal de comidas, despensa y listas de compras por hogar.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		version, err := postgres.RunMigrations(cfg.DB.ConnectionString())
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	defaultMealTypes, err := seed.DefaultMealTypes()
	if err != nil {
		log.Fatal().Err(err).Msg("tipos de comida por defecto")
	}

	userRepo := postgres.NewUserRepository(pool)
	householdRepo := postgres.NewHouseholdRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	mealTypeRepo := postgres.NewMealTypeRepository(pool)
	mealPlanRepo := postgres.NewMealPlanRepository(pool)
	pantryRepo := postgres.NewPantryRepository(pool)
	listRepo := postgres.NewShoppingListRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accessSvc := usecase.NewHouseholdAccessService(householdRepo)
	mealTypeUC := usecase.NewMealTypeUseCase(mealTypeRepo, householdRepo, defaultMealTypes)
	householdUC := usecase.NewHouseholdUseCase(householdRepo, userRepo, mealTypeUC)
	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, ingredientRepo, householdRepo)
	pantryUC := usecase.NewPantryUseCase(pantryRepo, ingredientRepo, householdRepo)
	mealPlanUC := mealplan.NewUseCase(txRunner, mealPlanRepo, recipeRepo, mealTypeRepo, householdRepo)

	// Lista de compras: agregación del plan + descuento de despensa + PDF imprimible
	generateUC := shopping.NewGenerateUseCase(
		mealPlanRepo, recipeRepo, pantryRepo, listRepo, householdRepo, log,
	)
	listQueryUC := shopping.NewQueryUseCase(listRepo, householdRepo, infrapdf.NewMarotoPDFGenerator())
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Despensa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		HouseholdUC:   householdUC,
		AccessSvc:     accessSvc,
		IngredientUC:  ingredientUC,
		RecipeUC:      recipeUC,
		MealTypeUC:    mealTypeUC,
		PantryUC:      pantryUC,
		MealPlanUC:    mealPlanUC,
		GenerateList:  generateUC,
		ShoppingLists: listQueryUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
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
