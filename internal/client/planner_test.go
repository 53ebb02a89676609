package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekPlan wraps a plan object with a grocery key in a messages API
// response body. Friday through Sunday are intentionally absent.
func weekPlan(t *testing.T) []byte {
	t.Helper()

	plan := `{
		"Monday": {"Breakfast": "Oatmeal", "Lunch": "Salad", "Dinner": "Garlic Chicken"},
		"Tuesday": {"Breakfast": "Eggs", "Dinner": "Tacos"},
		"Wednesday": {"Lunch": "Leftovers"},
		"Thursday": {},
		"grocery": [
			{"name": "Chicken", "amount": "2 lbs", "category": "Protein"},
			{"name": "Garlic", "amount": "1 head", "category": "Produce"},
			{"name": "Oats", "amount": "1 box", "category": "Grains & Bread"}
		]
	}`

	body, err := json.Marshal(map[string]interface{}{
		"content": []map[string]string{{"type": "text", "text": plan}},
	})
	require.NoError(t, err)
	return body
}

func TestGenerateSuccess(t *testing.T) {
	var upstreamBody map[string]interface{}

	server := startTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upstreamBody))
		_, _ = w.Write(weekPlan(t))
	})

	planner := NewPlanner(New(server.URL))
	require.NoError(t, planner.Generate(context.Background(), "vegetarian lunches"))

	assert.Equal(t, StateSuccess, planner.State())

	plan := planner.Plan()
	assert.Equal(t, "Garlic Chicken", plan["Monday"]["Dinner"])
	assert.Len(t, plan, 4)
	_, hasFriday := plan["Friday"]
	assert.False(t, hasFriday)

	groceries := planner.GroceryList()
	require.Len(t, groceries, 3)
	assert.Equal(t, "Chicken", groceries[0].Name)

	messages := upstreamBody["messages"].([]interface{})
	content := messages[0].(map[string]interface{})["content"].(string)
	assert.Contains(t, content, "Create a 7-day meal plan.")
	assert.Contains(t, content, "Preferences: vegetarian lunches.")
}

func TestGenerateFailure(t *testing.T) {
	server := startTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"type":"overloaded_error"}}`))
	})

	planner := NewPlanner(New(server.URL))
	err := planner.Generate(context.Background(), "")
	require.Error(t, err)

	assert.Equal(t, StateError, planner.State())
	assert.NotEmpty(t, planner.ErrorMessage())
	assert.Empty(t, planner.Plan())
}

func TestGenerateFailureClearsPreviousResults(t *testing.T) {
	fail := false
	server := startTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"type":"overloaded_error"}}`))
			return
		}
		_, _ = w.Write(weekPlan(t))
	})

	planner := NewPlanner(New(server.URL))
	require.NoError(t, planner.Generate(context.Background(), ""))
	require.NotEmpty(t, planner.Plan())

	fail = true
	require.Error(t, planner.Generate(context.Background(), ""))

	assert.Equal(t, StateError, planner.State())
	assert.Empty(t, planner.Plan())
	assert.Empty(t, planner.GroceryList())
}

func TestExportGroceryHTML(t *testing.T) {
	server := startTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(weekPlan(t))
	})

	planner := NewPlanner(New(server.URL))
	require.NoError(t, planner.Generate(context.Background(), ""))

	var buf bytes.Buffer
	require.NoError(t, planner.ExportGroceryHTML(&buf))

	html := buf.String()
	assert.Contains(t, html, "Garlic Chicken")
	assert.Contains(t, html, "Chicken")
	assert.Contains(t, html, "2 lbs")
	assert.Contains(t, html, "window.print()")
}
