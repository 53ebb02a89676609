package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/recipeai/backend/internal/model"
	"github.com/recipeai/backend/internal/prompt"
	"github.com/recipeai/backend/internal/service"
)

// Client is a typed HTTP client for the recipe service. The zero ID on a
// recipe decides between insert and update when saving.
type Client struct {
	http *resty.Client
}

// New creates a client pointed at the given base URL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// ListRecipes fetches the whole library, newest first.
func (c *Client) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var result struct {
		Recipes []model.Recipe `json:"recipes"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/v1/recipes")
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to list recipes: status %d", resp.StatusCode())
	}

	return result.Recipes, nil
}

// SaveRecipe inserts the recipe when it has no ID yet and updates it
// otherwise.
func (c *Client) SaveRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	var saved model.Recipe

	req := c.http.R().
		SetContext(ctx).
		SetBody(recipe).
		SetResult(&saved)

	var resp *resty.Response
	var err error
	if recipe.Persisted() {
		resp, err = req.Put("/api/v1/recipes/" + recipe.ID.String())
	} else {
		resp, err = req.Post("/api/v1/recipes")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to save recipe: status %d", resp.StatusCode())
	}

	return &saved, nil
}

// DeleteRecipe removes a recipe by ID.
func (c *Client) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/v1/recipes/" + id.String())
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to delete recipe: status %d", resp.StatusCode())
	}
	return nil
}

// CallModel sends a chat request through the proxy and returns the
// assistant text.
func (c *Client) CallModel(ctx context.Context, system string, messages []prompt.Message) (string, error) {
	body := map[string]interface{}{
		"messages": messages,
	}
	if system != "" {
		body["system"] = system
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/api/claude")
	if err != nil {
		return "", fmt.Errorf("failed to call model: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("model call failed: status %d: %s", resp.StatusCode(), resp.String())
	}

	return service.Text(resp.Body())
}
