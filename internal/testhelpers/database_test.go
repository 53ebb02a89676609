package testhelpers

import (
	"testing"

	"github.com/recipeai/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDatabase(t *testing.T) {
	db := SetupTestDatabase(t)
	require.NotNil(t, db)

	recipe := model.Recipe{
		Name:        "Container Check",
		Ingredients: model.JSONBStringArray{"salt"},
		Steps:       model.JSONBStringArray{"season"},
	}
	require.NoError(t, db.Create(&recipe).Error)
	assert.NotZero(t, recipe.ID)

	var fetched model.Recipe
	require.NoError(t, db.First(&fetched, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Container Check", fetched.Name)
	assert.Equal(t, "Dinner", fetched.Category)
	assert.Equal(t, model.JSONBStringArray{"salt"}, fetched.Ingredients)
}
