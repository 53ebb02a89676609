package model

// Suggestion is an AI-suggested recipe. Suggestions are ephemeral: they are
// never persisted and only become Recipe rows if the user re-enters them.
type Suggestion struct {
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Time        string   `json:"time"`
	Difficulty  string   `json:"difficulty"`
	Servings    string   `json:"servings"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// DayMeals maps a meal slot (Breakfast/Lunch/Dinner) to a dish description.
type DayMeals map[string]string

// MealPlan maps a day name to its meals. Produced wholesale by a single model
// call and never partially updated; missing days or slots simply render as a
// placeholder.
type MealPlan map[string]DayMeals

// GroceryItem is one entry of the derived shopping list.
type GroceryItem struct {
	Name     string `json:"name"`
	Amount   string `json:"amount,omitempty"`
	Category string `json:"category,omitempty"`
}
