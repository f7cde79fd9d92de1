package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/mealplan"
	"github.com/jhoicas/Despensa-api/internal/application/shopping"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	HouseholdUC   *usecase.HouseholdUseCase
	AccessSvc     *usecase.HouseholdAccessService
	IngredientUC  *usecase.IngredientUseCase
	RecipeUC      *usecase.RecipeUseCase
	MealTypeUC    *usecase.MealTypeUseCase
	PantryUC      *usecase.PantryUseCase
	MealPlanUC    *mealplan.UseCase
	GenerateList  *shopping.GenerateUseCase
	ShoppingLists *shopping.QueryUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	inHousehold := RequireHousehold(deps.AccessSvc)

	// Households
	households := protected.Group("/households")
	householdHandler := NewHouseholdHandler(deps.HouseholdUC)
	households.Get("/", householdHandler.List)
	households.Post("/", householdHandler.Create)
	households.Get("/:id", householdHandler.GetByID)
	households.Post("/:id/members", householdHandler.AddMember)

	// Ingredients (catálogo global)
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	// Recipes
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Get("/", inHousehold, recipeHandler.List)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Put("/:id", recipeHandler.Update)
	recipes.Delete("/:id", recipeHandler.Delete)

	// Meal types
	mealTypes := protected.Group("/meal-types")
	mealTypeHandler := NewMealTypeHandler(deps.MealTypeUC)
	mealTypes.Get("/", inHousehold, mealTypeHandler.List)
	mealTypes.Post("/", mealTypeHandler.Create)
	mealTypes.Put("/:id", mealTypeHandler.Update)
	mealTypes.Delete("/:id", mealTypeHandler.Delete)

	// Pantry
	pantry := protected.Group("/pantry")
	pantryHandler := NewPantryHandler(deps.PantryUC)
	pantry.Get("/", inHousehold, pantryHandler.List)
	pantry.Post("/", pantryHandler.Create)
	pantry.Put("/:id", pantryHandler.Update)
	pantry.Delete("/:id", pantryHandler.Delete)

	// Meal plans
	plans := protected.Group("/meal-plans")
	planHandler := NewMealPlanHandler(deps.MealPlanUC)
	plans.Post("/", planHandler.Create)
	plans.Get("/search", inHousehold, planHandler.Search)
	plans.Get("/:id", planHandler.GetByID)
	plans.Put("/:id", planHandler.Update)

	// Shopping lists
	lists := protected.Group("/shopping-lists")
	listHandler := NewShoppingListHandler(deps.GenerateList, deps.ShoppingLists)
	lists.Post("/from-meal-plan/:mealPlanId", listHandler.FromMealPlan)
	lists.Get("/", inHousehold, listHandler.List)
	lists.Get("/:id", listHandler.GetByID)
	lists.Get("/:id/pdf", listHandler.DownloadPDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/weekly-summary", inHousehold, dashboardHandler.WeeklySummary)
}
