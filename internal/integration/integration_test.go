package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/recipeai/backend/config"
	"github.com/recipeai/backend/internal/client"
	"github.com/recipeai/backend/internal/database"
	"github.com/recipeai/backend/internal/model"
	"github.com/recipeai/backend/internal/realtime"
	"github.com/recipeai/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// startServer runs the full stack over SQLite with an in-process
// publisher and the proxy pointed at the given upstream.
func startServer(t *testing.T, upstream http.Handler) *httptest.Server {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db, ""))

	upstreamURL := "http://unused.invalid"
	if upstream != nil {
		mock := httptest.NewServer(upstream)
		t.Cleanup(mock.Close)
		upstreamURL = mock.URL
	}

	hub := realtime.NewHub()
	cfg := &config.Config{
		AnthropicAPIKey: "sk-test",
		AnthropicAPIURL: upstreamURL,
	}

	server := httptest.NewServer(router.SetupRouter(db, cfg, hub, hub, nil))
	t.Cleanup(server.Close)
	return server
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws"
}

func modelResponse(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	require.NoError(t, err)
	return body
}

func TestFinderEndToEnd(t *testing.T) {
	suggestions := `[
		{"name":"Garlic Chicken","emoji":"🍗","time":"30 min","difficulty":"Easy","servings":"4","description":"d","ingredients":["chicken","garlic"],"steps":["cook"]},
		{"name":"Chicken Stir Fry","emoji":"🥘","time":"25 min","difficulty":"Easy","servings":"2","description":"d","ingredients":["chicken"],"steps":["fry"]},
		{"name":"Garlic Butter Pasta","emoji":"🍝","time":"20 min","difficulty":"Easy","servings":"2","description":"d","ingredients":["garlic","pasta"],"steps":["boil"]}
	]`

	var promptContent string
	calls := 0
	server := startServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body.Messages)
		promptContent = body.Messages[0].Content
		_, _ = w.Write(modelResponse(t, suggestions))
	}))

	c := client.New(server.URL)
	finder := client.NewFinder(c)

	require.NoError(t, finder.Suggest(context.Background(), []string{"chicken", "garlic"}))

	assert.Equal(t, 1, calls)
	assert.Contains(t, promptContent, "I have: chicken, garlic.")
	require.Len(t, finder.Suggestions(), 3)

	// Suggestions are not persisted anywhere.
	recipes, err := c.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestSaveWithoutIDInserts(t *testing.T) {
	server := startServer(t, nil)
	c := client.New(server.URL)

	saved, err := c.SaveRecipe(context.Background(), &model.Recipe{Name: "Soup"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	recipes, err := c.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, saved.ID, recipes[0].ID)
}

func TestUpstreamRateLimitSurfacesGenericError(t *testing.T) {
	server := startServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))

	finder := client.NewFinder(client.New(server.URL))
	err := finder.Suggest(context.Background(), []string{"chicken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	assert.Equal(t, client.StateError, finder.State())
	assert.NotContains(t, finder.ErrorMessage(), "429")
	assert.NotEmpty(t, finder.ErrorMessage())
}

func TestDeleteConvergesSubscribers(t *testing.T) {
	server := startServer(t, nil)
	ctx := context.Background()

	libraryA := client.NewLibrary(client.New(server.URL))
	libraryB := client.NewLibrary(client.New(server.URL))

	require.NoError(t, libraryB.Subscribe(ctx, wsURL(server)))
	defer func() { _ = libraryB.Close() }()

	saved, err := libraryA.Save(ctx, &model.Recipe{Name: "Shared Dish"})
	require.NoError(t, err)

	// B picks up A's insert through the change feed.
	require.Eventually(t, func() bool {
		return len(libraryB.Recipes()) == 1
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, libraryA.Delete(ctx, saved.ID))

	// B converges again without issuing any mutation of its own.
	require.Eventually(t, func() bool {
		return len(libraryB.Recipes()) == 0
	}, 5*time.Second, 20*time.Millisecond)
}
