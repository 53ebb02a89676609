package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/recipeai/backend/internal/model"
	"github.com/recipeai/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecipeRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE recipes (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			name TEXT NOT NULL,
			category TEXT,
			time TEXT,
			difficulty TEXT,
			servings TEXT,
			description TEXT,
			ingredients TEXT,
			steps TEXT,
			notes TEXT,
			added_by TEXT
		)
	`).Error
	require.NoError(t, err)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(service.NewRecipeService(db, nil)).RegisterRoutes(v1)

	return router, db
}

func postRecipe(t *testing.T, router *gin.Engine, recipe map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(recipe)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndListRecipes(t *testing.T) {
	router, _ := setupRecipeRouter(t)

	w := postRecipe(t, router, map[string]interface{}{
		"name":        "Garlic Chicken",
		"ingredients": []string{"chicken", "garlic"},
		"steps":       []string{"cook"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Dinner", created.Category)
	assert.Equal(t, "Family", created.AddedBy)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Recipes, 1)
	assert.Equal(t, "Garlic Chicken", list.Recipes[0].Name)
}

func TestCreateRecipeEmptyName(t *testing.T) {
	router, _ := setupRecipeRouter(t)

	w := postRecipe(t, router, map[string]interface{}{"name": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Recipe name is required"}`, w.Body.String())
}

func TestUpdateRecipe(t *testing.T) {
	router, _ := setupRecipeRouter(t)

	w := postRecipe(t, router, map[string]interface{}{"name": "Soup"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	body := []byte(`{"name":"Tomato Soup","category":"Lunch"}`)
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/recipes/"+created.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Tomato Soup", updated.Name)
	assert.Equal(t, "Lunch", updated.Category)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	router, _ := setupRecipeRouter(t)

	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/v1/recipes/%s", uuid.New())
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader([]byte(`{"name":"Ghost"}`)))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())
}

func TestUpdateRecipeInvalidID(t *testing.T) {
	router, _ := setupRecipeRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/recipes/not-a-uuid", bytes.NewReader([]byte(`{"name":"X"}`)))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid recipe ID"}`, w.Body.String())
}

func TestDeleteRecipe(t *testing.T) {
	router, db := setupRecipeRouter(t)

	w := postRecipe(t, router, map[string]interface{}{"name": "Gone Soon"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+created.ID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	router, _ := setupRecipeRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())
}
