package client

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/recipeai/backend/internal/model"
)

// Library mirrors the shared recipe collection. It never mutates its
// local copy directly; writes go to the server and the change feed
// triggers a full reload, so every subscriber converges on the same
// list.
type Library struct {
	mu      sync.RWMutex
	client  *Client
	recipes []model.Recipe
	sub     *Subscription
}

func NewLibrary(client *Client) *Library {
	return &Library{client: client}
}

// Recipes returns the current local copy.
func (l *Library) Recipes() []model.Recipe {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.recipes
}

// Reload replaces the local copy from the server.
func (l *Library) Reload(ctx context.Context) error {
	recipes, err := l.client.ListRecipes(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.recipes = recipes
	l.mu.Unlock()
	return nil
}

// Save sends the recipe to the server. The local copy is untouched; the
// change feed brings the result back.
func (l *Library) Save(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	return l.client.SaveRecipe(ctx, recipe)
}

// Delete removes the recipe on the server.
func (l *Library) Delete(ctx context.Context, id uuid.UUID) error {
	return l.client.DeleteRecipe(ctx, id)
}

// Filter returns the recipes matching a case-insensitive search over name
// and description, and an exact category. Either argument may be empty.
func (l *Library) Filter(search, category string) []model.Recipe {
	l.mu.RLock()
	defer l.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))

	var matched []model.Recipe
	for _, r := range l.recipes {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// Subscribe connects to the change feed and reloads on every event,
// including events caused by this client's own writes. An existing
// subscription is closed first; only one feed connection is held.
func (l *Library) Subscribe(ctx context.Context, wsURL string) error {
	if err := l.Close(); err != nil {
		log.Printf("[Library] Closing previous subscription: %v", err)
	}

	sub, err := NewSubscription(ctx, wsURL, func(ctx context.Context) {
		if err := l.Reload(ctx); err != nil {
			log.Printf("[Library] Reload after change event failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.sub = sub
	l.mu.Unlock()
	return nil
}

// Close tears down the change feed subscription.
func (l *Library) Close() error {
	l.mu.Lock()
	sub := l.sub
	l.sub = nil
	l.mu.Unlock()

	if sub == nil {
		return nil
	}
	return sub.Close()
}
