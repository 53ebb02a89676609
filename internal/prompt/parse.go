package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/recipeai/backend/internal/model"
)

// SuggestionCount is the number of recipes the finder asks for and the only
// count ParseSuggestions accepts.
const SuggestionCount = 3

// StripFences removes markdown code-fence markers the model sometimes wraps
// around its JSON despite instructions.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseSuggestions decodes a finder reply. Any deviation from a JSON array of
// exactly SuggestionCount recipe objects is an error; there is no best-effort
// recovery beyond fence stripping.
func ParseSuggestions(text string) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	if err := json.Unmarshal([]byte(StripFences(text)), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	if len(suggestions) != SuggestionCount {
		return nil, fmt.Errorf("expected %d suggestions, got %d", SuggestionCount, len(suggestions))
	}
	return suggestions, nil
}

// ParsePlan decodes a planner reply. The "grocery" key is split out of the
// object; every remaining key is treated as a plan day. Missing days or meal
// slots are not an error, they render as a placeholder downstream.
func ParsePlan(text string) (model.MealPlan, []model.GroceryItem, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(StripFences(text)), &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse meal plan: %w", err)
	}

	var grocery []model.GroceryItem
	if g, ok := raw["grocery"]; ok {
		if err := json.Unmarshal(g, &grocery); err != nil {
			return nil, nil, fmt.Errorf("failed to parse grocery list: %w", err)
		}
		delete(raw, "grocery")
	}

	plan := make(model.MealPlan, len(raw))
	for day, meals := range raw {
		var dm model.DayMeals
		if err := json.Unmarshal(meals, &dm); err != nil {
			return nil, nil, fmt.Errorf("failed to parse meals for %s: %w", day, err)
		}
		plan[day] = dm
	}

	return plan, grocery, nil
}
