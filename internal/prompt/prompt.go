// Package prompt builds the chat requests sent through the AI proxy and
// parses the model's JSON replies into domain types.
package prompt

import (
	"fmt"
	"strings"
)

// Message is one turn of a chat-style request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SuggestSystem instructs the model to return exactly three recipes as a bare
// JSON array. Kept in sync with ParseSuggestions.
const SuggestSystem = `You are a world-class chef. Return ONLY a JSON array of exactly 3 recipes. Each: {"name":string,"emoji":string,"time":string,"difficulty":string,"servings":string,"description":string,"ingredients":string[],"steps":string[]}. No markdown.`

// PlanSystem instructs the model to return a 7-day plan object with an extra
// "grocery" key holding the flat shopping list. Kept in sync with ParsePlan.
const PlanSystem = `Return ONLY this JSON: {"Monday":{"Breakfast":"...","Lunch":"...","Dinner":"..."},...,"Sunday":{...},"grocery":[{"name":"...","amount":"...","category":"Produce|Protein|Dairy|Grains & Bread|Pantry|Other"}]}. No markdown.`

// SuggestMessages builds the single-turn request for the recipe finder.
func SuggestMessages(ingredients []string) []Message {
	return []Message{{
		Role:    "user",
		Content: fmt.Sprintf("I have: %s. Suggest 3 creative recipes.", strings.Join(ingredients, ", ")),
	}}
}

// PlanMessages builds the single-turn request for the meal planner.
// Preferences are free text and may be empty.
func PlanMessages(preferences string) []Message {
	content := "Create a 7-day meal plan."
	if preferences != "" {
		content += fmt.Sprintf(" Preferences: %s.", preferences)
	}
	return []Message{{Role: "user", Content: content}}
}
