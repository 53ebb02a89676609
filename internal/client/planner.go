package client

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/recipeai/backend/internal/grocery"
	"github.com/recipeai/backend/internal/model"
	"github.com/recipeai/backend/internal/prompt"
)

// Planner drives the meal planner flow: one model call produces the
// 7-day plan and its grocery list together.
type Planner struct {
	mu         sync.Mutex
	client     *Client
	state      State
	plan       model.MealPlan
	groceries  []model.GroceryItem
	errMessage string
}

func NewPlanner(client *Client) *Planner {
	return &Planner{client: client, state: StateIdle}
}

func (p *Planner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Plan returns the plan from the last successful request.
func (p *Planner) Plan() model.MealPlan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plan
}

// GroceryList returns the grocery list from the last successful request.
func (p *Planner) GroceryList() []model.GroceryItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.groceries
}

func (p *Planner) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMessage
}

// Generate asks the model for a full week plan. Preferences may be
// empty. Missing days or slots in the response are tolerated.
func (p *Planner) Generate(ctx context.Context, preferences string) error {
	// Prior results are cleared on submit, matching the finder.
	p.mu.Lock()
	p.state = StateLoading
	p.plan = nil
	p.groceries = nil
	p.errMessage = ""
	p.mu.Unlock()

	text, err := p.client.CallModel(ctx, prompt.PlanSystem, prompt.PlanMessages(preferences))
	if err != nil {
		return p.fail(err)
	}

	plan, groceries, err := prompt.ParsePlan(text)
	if err != nil {
		return p.fail(err)
	}

	p.mu.Lock()
	p.state = StateSuccess
	p.plan = plan
	p.groceries = groceries
	p.mu.Unlock()
	return nil
}

// ExportGroceryHTML writes the printable document for the current plan.
func (p *Planner) ExportGroceryHTML(w io.Writer) error {
	p.mu.Lock()
	plan := p.plan
	groceries := p.groceries
	p.mu.Unlock()

	return grocery.RenderDocument(w, plan, groceries)
}

func (p *Planner) fail(err error) error {
	log.Printf("[Planner] Plan request failed: %v", err)
	p.mu.Lock()
	p.state = StateError
	p.errMessage = "Something went wrong creating your meal plan. Please try again."
	p.mu.Unlock()
	return err
}
