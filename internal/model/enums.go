package model

// Fixed vocabularies shared by the form, prompt, and planner layers.

// Categories a saved recipe can belong to. "Dinner" is the form default.
var Categories = []string{"Breakfast", "Lunch", "Dinner", "Snack", "Dessert", "Drinks", "Other"}

// Difficulties recognised for recipes.
var Difficulties = []string{"Easy", "Medium", "Hard"}

// Days of a meal plan, in display order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MealSlots of a single plan day, in display order.
var MealSlots = []string{"Breakfast", "Lunch", "Dinner"}

// GroceryCategories the planner prompt asks for. Unknown categories coming
// back from the model are displayed under their literal value.
var GroceryCategories = []string{"Produce", "Protein", "Dairy", "Grains & Bread", "Pantry", "Other"}

const (
	// DefaultCategory applies when a recipe is saved without one.
	DefaultCategory = "Dinner"

	// DefaultAddedBy applies when a recipe is saved without an author name.
	DefaultAddedBy = "Family"
)
