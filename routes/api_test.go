package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/database"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestFoodLifecycle(t *testing.T) {
	r := newTestServer(t)

	// create
	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{
		"name":        "Pizza",
		"description": "Italian flatbread",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	location := w.Header().Get("Location")
	require.NotEmpty(t, location)
	created := decode(t, w)
	assert.Equal(t, "Pizza", created["name"])

	// re-fetch via the Location header round-trips the fields
	w = doJSON(t, r, http.MethodGet, location, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Pizza", got["name"])
	assert.Equal(t, "Italian flatbread", got["description"])
	assert.Contains(t, got, "@controls")
	assert.Contains(t, got, "@namespaces")

	// delete, then the resource is gone
	w = doJSON(t, r, http.MethodDelete, location, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, location, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	errDoc := decode(t, w)
	assert.Contains(t, errDoc, "@error")
}

func TestFoodDuplicateNameConflict(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRecipeServingsValidation(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := decode(t, w)["food_id"]

	w = doJSON(t, r, http.MethodPost, "/api/recipes/", map[string]any{
		"food_id": foodID, "instruction": "bake", "prep_time": 5, "cook_time": 10, "servings": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/recipes/", map[string]any{
		"food_id": foodID, "instruction": "bake", "prep_time": 5, "cook_time": 10, "servings": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))
}

func TestIngredientEdgeDuplicateAndRemoval(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := decode(t, w)["food_id"]

	w = doJSON(t, r, http.MethodPost, "/api/recipes/", map[string]any{
		"food_id": foodID, "instruction": "bake", "servings": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recipeLoc := w.Header().Get("Location")

	w = doJSON(t, r, http.MethodPost, "/api/ingredients/", map[string]any{"name": "Flour"})
	require.Equal(t, http.StatusCreated, w.Code)
	ingredientID := decode(t, w)["ingredient_id"]

	edgeBody := map[string]any{"ingredient_id": ingredientID, "quantity": 500, "unit": "g"}

	w = doJSON(t, r, http.MethodPost, recipeLoc+"ingredients/", edgeBody)
	assert.Equal(t, http.StatusCreated, w.Code)

	// adding the same pair again conflicts
	w = doJSON(t, r, http.MethodPost, recipeLoc+"ingredients/", edgeBody)
	assert.Equal(t, http.StatusConflict, w.Code)

	// partial edge update
	w = doJSON(t, r, http.MethodPut, recipeLoc+"ingredients/", map[string]any{
		"ingredient_id": ingredientID, "quantity": 250,
	})
	require.Equal(t, http.StatusOK, w.Code)
	edge := decode(t, w)
	assert.Equal(t, 250.0, edge["quantity"])
	assert.Equal(t, "g", edge["unit"])

	// remove, then removing again reports not found
	w = doJSON(t, r, http.MethodDelete, recipeLoc+"ingredients/", map[string]any{"ingredient_id": ingredientID})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, recipeLoc+"ingredients/", map[string]any{"ingredient_id": ingredientID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryEdge(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := decode(t, w)["food_id"]

	w = doJSON(t, r, http.MethodPost, "/api/recipes/", map[string]any{
		"food_id": foodID, "instruction": "bake", "servings": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recipeLoc := w.Header().Get("Location")

	w = doJSON(t, r, http.MethodPost, "/api/categories/", map[string]any{"name": "Italian"})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := decode(t, w)["category_id"]

	w = doJSON(t, r, http.MethodPost, recipeLoc+"categories/", map[string]any{"category_id": categoryID})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, recipeLoc+"categories/", map[string]any{"category_id": categoryID})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, recipeLoc+"categories/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode(t, w)
	assert.Len(t, doc["categories"], 1)

	w = doJSON(t, r, http.MethodDelete, recipeLoc+"categories/", map[string]any{"category_id": categoryID})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, recipeLoc+"categories/", map[string]any{"category_id": categoryID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNutritionalInfoStrictCreate(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := decode(t, w)["food_id"]

	w = doJSON(t, r, http.MethodPost, "/api/recipes/", map[string]any{
		"food_id": foodID, "instruction": "bake", "servings": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recipeID := decode(t, w)["recipe_id"]

	body := map[string]any{"recipe_id": recipeID, "calories": 266, "protein": 11, "carbs": 33, "fat": 9}

	w = doJSON(t, r, http.MethodPost, "/api/nutritional-info/", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	infoLoc := w.Header().Get("Location")
	require.NotEmpty(t, infoLoc)

	w = doJSON(t, r, http.MethodPost, "/api/nutritional-info/", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// the update path still works
	w = doJSON(t, r, http.MethodPut, infoLoc, map[string]any{"calories": 300})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 300.0, decode(t, w)["calories"])
}

func TestFoodDeleteCascadesOverHTTP(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := decode(t, w)["food_id"]
	foodLoc := w.Header().Get("Location")

	w = doJSON(t, r, http.MethodPost, "/api/recipes/", map[string]any{
		"food_id": foodID, "instruction": "bake", "servings": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recipeLoc := w.Header().Get("Location")

	w = doJSON(t, r, http.MethodDelete, foodLoc, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, recipeLoc, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnsupportedMediaType(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/foods/", bytes.NewBufferString("name=Pizza"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	doc := decode(t, w)
	assert.Contains(t, doc, "@error")
}

func TestMalformedJSONBody(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/foods/", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorEnvelopeShape(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/foods/12345/", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	doc := decode(t, w)
	errObj, ok := doc["@error"].(map[string]any)
	require.True(t, ok, "@error must be an object")
	assert.NotEmpty(t, errObj["@message"])
	assert.NotEmpty(t, errObj["@messages"])

	controls, ok := doc["@controls"].(map[string]any)
	require.True(t, ok, "@controls must be an object")
	profile, ok := controls["profile"].(map[string]any)
	require.True(t, ok, "profile control must exist")
	assert.Equal(t, "/profiles/error/", profile["href"])
}

func TestRecipeListFilters(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/foods/", map[string]any{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := decode(t, w)["food_id"]

	w = doJSON(t, r, http.MethodPost, "/api/recipes/", map[string]any{
		"food_id": foodID, "instruction": "bake", "prep_time": 5, "cook_time": 5, "servings": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/recipes/?max_time=15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)

	w = doJSON(t, r, http.MethodGet, "/api/recipes/?max_time=4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 0)

	w = doJSON(t, r, http.MethodGet, "/api/recipes/?max_time=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
