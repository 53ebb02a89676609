package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/recipeai/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRunMigrationsSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, ""))

	recipe := model.Recipe{
		ID:   uuid.New(),
		Name: "Migration Check",
	}
	require.NoError(t, db.Create(&recipe).Error)

	var fetched model.Recipe
	require.NoError(t, db.First(&fetched, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Migration Check", fetched.Name)
}
