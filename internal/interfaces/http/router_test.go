package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/mealplan"
	"github.com/jhoicas/Despensa-api/internal/application/shopping"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Despensa-api/internal/interfaces/http"
	"github.com/jhoicas/Despensa-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

func newAPI() *fiber.App {
	s := memory.NewStore()
	mealTypes := usecase.NewMealTypeUseCase(s.MealTypes(), s.Households(), []string{"Breakfast", "Lunch", "Dinner"})
	generate := shopping.NewGenerateUseCase(s.MealPlans(), s.Recipes(), s.Pantry(), s.ShoppingLists(), s.Households(), logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		HouseholdUC:   usecase.NewHouseholdUseCase(s.Households(), s.Users(), mealTypes),
		AccessSvc:     usecase.NewHouseholdAccessService(s.Households()),
		IngredientUC:  usecase.NewIngredientUseCase(s.Ingredients()),
		RecipeUC:      usecase.NewRecipeUseCase(s.Recipes(), s.Ingredients(), s.Households()),
		MealTypeUC:    mealTypes,
		PantryUC:      usecase.NewPantryUseCase(s.Pantry(), s.Ingredients(), s.Households()),
		MealPlanUC:    mealplan.NewUseCase(s.MealPlans(), s.MealPlans(), s.Recipes(), s.MealTypes(), s.Households()),
		GenerateList:  generate,
		ShoppingLists: shopping.NewQueryUseCase(s.ShoppingLists(), s.Households(), pdf.NewMarotoPDFGenerator()),
		DashboardUC:   analytics.NewDashboardUseCase(s.Dashboard()),
		JWTSecret:     testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, wantStatus int, out any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, string(raw))
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
}

func signUp(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	decodeInto(t, call(t, app, http.MethodPost, "/api/auth/register", "",
		dto.RegisterRequest{Name: name, Email: email, Password: "supersecreto"}), http.StatusCreated, nil)

	var login dto.LoginResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: email, Password: "supersecreto"}), http.StatusOK, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo plan semanal → lista de compras
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_FlujoListaDeCompras(t *testing.T) {
	app := newAPI()
	token := signUp(t, app, "Ana", "ana@example.com")

	var household dto.HouseholdResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/households", token,
		dto.CreateHouseholdRequest{Name: "Casa"}), http.StatusCreated, &household)
	hid := household.ID

	var rice dto.IngredientResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/ingredients", token,
		dto.CreateIngredientRequest{Name: "Rice", DefaultUnit: "kg"}), http.StatusCreated, &rice)

	four := 4
	two := 2
	riceQty := decimal.RequireFromString("2")
	var recipe dto.RecipeResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/recipes", token, dto.CreateRecipeRequest{
		HouseholdID: hid,
		Name:        "Arroz blanco",
		Servings:    &four,
		Ingredients: []dto.RecipeIngredientInput{{IngredientID: rice.ID, Quantity: &riceQty}},
	}), http.StatusCreated, &recipe)

	decodeInto(t, call(t, app, http.MethodPost, "/api/pantry", token, dto.CreatePantryItemRequest{
		HouseholdID:  hid,
		IngredientID: rice.ID,
		Quantity:     decimal.RequireFromString("0.5"),
		Unit:         "kg",
	}), http.StatusCreated, nil)

	var plan dto.MealPlanResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/meal-plans", token, dto.CreateMealPlanRequest{
		HouseholdID: hid,
		WeekStart:   "2025-12-03",
		Items: []dto.MealPlanItemInput{
			{Date: "2025-12-01", MealType: "Dinner", RecipeID: recipe.ID, Servings: &two},
		},
	}), http.StatusCreated, &plan)
	assert.Equal(t, "2025-W49", plan.Week)
	assert.Equal(t, "2025-12-01", plan.WeekStart)

	var found dto.MealPlanResponse
	decodeInto(t, call(t, app, http.MethodGet, "/api/meal-plans/search?household_id="+hid+"&week=2025-W49", token, nil),
		http.StatusOK, &found)
	assert.Equal(t, plan.ID, found.ID)

	var list dto.ShoppingListResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/shopping-lists/from-meal-plan/"+plan.ID, token, nil),
		http.StatusCreated, &list)
	require.Len(t, list.Items, 1)
	item := list.Items[0]
	assert.Equal(t, rice.ID, item.IngredientID)
	assert.True(t, decimal.RequireFromString("1").Equal(item.NeededQuantity), item.NeededQuantity.String())
	assert.True(t, decimal.RequireFromString("0.5").Equal(item.PantryQuantity), item.PantryQuantity.String())
	assert.True(t, decimal.RequireFromString("0.5").Equal(item.ToBuyQuantity), item.ToBuyQuantity.String())
	assert.Equal(t, "kg", item.Unit)

	var fetched dto.ShoppingListResponse
	decodeInto(t, call(t, app, http.MethodGet, "/api/shopping-lists/"+list.ID, token, nil), http.StatusOK, &fetched)
	assert.Equal(t, list.ID, fetched.ID)
	assert.Len(t, fetched.Items, 1)

	var page dto.ShoppingListListResponse
	decodeInto(t, call(t, app, http.MethodGet, "/api/shopping-lists?household_id="+hid, token, nil), http.StatusOK, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, list.ID, page.Items[0].ID)

	resp := call(t, app, http.MethodGet, "/api/shopping-lists/"+list.ID+"/pdf", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	var summary dto.WeeklySummaryDTO
	decodeInto(t, call(t, app, http.MethodGet, "/api/dashboard/weekly-summary?household_id="+hid+"&week=2025-W49", token, nil),
		http.StatusOK, &summary)
}

func TestRouter_SemanaInvalida_Retorna422(t *testing.T) {
	app := newAPI()
	token := signUp(t, app, "Ana", "ana@example.com")

	var household dto.HouseholdResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/households", token,
		dto.CreateHouseholdRequest{Name: "Casa"}), http.StatusCreated, &household)

	var errResp dto.ErrorResponse
	decodeInto(t, call(t, app, http.MethodGet, "/api/meal-plans/search?household_id="+household.ID+"&week=2025-49", token, nil),
		http.StatusUnprocessableEntity, &errResp)
	assert.Equal(t, "INVALID_WEEK", errResp.Code)

	decodeInto(t, call(t, app, http.MethodGet, "/api/dashboard/weekly-summary?household_id="+household.ID+"&week=abc", token, nil),
		http.StatusUnprocessableEntity, &errResp)
	assert.Equal(t, "INVALID_WEEK", errResp.Code)
}

func TestRouter_NoMiembro_Retorna403(t *testing.T) {
	app := newAPI()
	ana := signUp(t, app, "Ana", "ana@example.com")
	bob := signUp(t, app, "Bob", "bob@example.com")

	var household dto.HouseholdResponse
	decodeInto(t, call(t, app, http.MethodPost, "/api/households", ana,
		dto.CreateHouseholdRequest{Name: "Casa de Ana"}), http.StatusCreated, &household)

	var errResp dto.ErrorResponse
	decodeInto(t, call(t, app, http.MethodGet, "/api/shopping-lists?household_id="+household.ID, bob, nil),
		http.StatusForbidden, &errResp)
	assert.Equal(t, "FORBIDDEN", errResp.Code)

	decodeInto(t, call(t, app, http.MethodGet, "/api/pantry?household_id="+household.ID, bob, nil),
		http.StatusForbidden, nil)
}

func TestRouter_Health(t *testing.T) {
	app := newAPI()
	decodeInto(t, call(t, app, http.MethodGet, "/api/health", "", nil), http.StatusOK, nil)
	decodeInto(t, call(t, app, http.MethodGet, "/api/households", "", nil), http.StatusUnauthorized, nil)
}
