package client

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/recipeai/backend/internal/model"
	"github.com/recipeai/backend/internal/prompt"
)

// State is the lifecycle of a controller's last request.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// ErrNoIngredients is returned when Suggest is called with nothing to
// cook from.
var ErrNoIngredients = fmt.Errorf("at least one ingredient is required")

// Finder drives the recipe finder flow: collect ingredients, ask the
// model for exactly three suggestions, hold them until the next request.
type Finder struct {
	mu          sync.Mutex
	client      *Client
	state       State
	suggestions []model.Suggestion
	errMessage  string
}

func NewFinder(client *Client) *Finder {
	return &Finder{client: client, state: StateIdle}
}

// State returns the current request state.
func (f *Finder) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Suggestions returns the suggestions from the last successful request.
func (f *Finder) Suggestions() []model.Suggestion {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.suggestions
}

// ErrorMessage returns the user-facing message from the last failure.
func (f *Finder) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMessage
}

// Suggest asks the model for three recipes using the given ingredients.
// On success the previous suggestions are replaced wholesale; on any
// failure the caller gets a generic message and the detail is logged.
func (f *Finder) Suggest(ctx context.Context, ingredients []string) error {
	if len(ingredients) == 0 {
		return ErrNoIngredients
	}

	f.setLoading()

	text, err := f.client.CallModel(ctx, prompt.SuggestSystem, prompt.SuggestMessages(ingredients))
	if err != nil {
		return f.fail(err)
	}

	suggestions, err := prompt.ParseSuggestions(text)
	if err != nil {
		return f.fail(err)
	}

	f.mu.Lock()
	f.state = StateSuccess
	f.suggestions = suggestions
	f.errMessage = ""
	f.mu.Unlock()
	return nil
}

// setLoading clears prior results so a failed request never shows stale
// suggestions next to the error state.
func (f *Finder) setLoading() {
	f.mu.Lock()
	f.state = StateLoading
	f.suggestions = nil
	f.errMessage = ""
	f.mu.Unlock()
}

func (f *Finder) fail(err error) error {
	log.Printf("[Finder] Suggestion request failed: %v", err)
	f.mu.Lock()
	f.state = StateError
	f.errMessage = "Something went wrong getting recipes. Please try again."
	f.mu.Unlock()
	return err
}
