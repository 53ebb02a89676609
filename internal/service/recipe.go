package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/recipeai/backend/internal/model"
	"github.com/recipeai/backend/internal/realtime"
	"gorm.io/gorm"
)

// ErrNameRequired is returned when a recipe is saved without a name.
var ErrNameRequired = fmt.Errorf("recipe name is required")

// RecipeService handles recipe operations on the shared library. Every
// successful write publishes a change event so connected clients can
// reload.
type RecipeService struct {
	db        *gorm.DB
	publisher realtime.Publisher
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, publisher realtime.Publisher) *RecipeService {
	return &RecipeService{
		db:        db,
		publisher: publisher,
	}
}

// ListRecipes returns the whole library, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe inserts a new recipe and publishes an insert event.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if strings.TrimSpace(recipe.Name) == "" {
		return nil, ErrNameRequired
	}
	if recipe.Category == "" {
		recipe.Category = model.DefaultCategory
	}
	if recipe.AddedBy == "" {
		recipe.AddedBy = model.DefaultAddedBy
	}
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	s.publish(realtime.ActionInsert, recipe.ID)
	return recipe, nil
}

// UpdateRecipe updates an existing recipe and publishes an update event.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	if strings.TrimSpace(recipe.Name) == "" {
		return nil, ErrNameRequired
	}

	var existing model.Recipe
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return nil, err
	}

	// Same defaults as the insert path so a full replace cannot blank them.
	if recipe.Category == "" {
		recipe.Category = model.DefaultCategory
	}
	if recipe.AddedBy == "" {
		recipe.AddedBy = model.DefaultAddedBy
	}

	// Full replace of the mutable columns; zero values overwrite too.
	recipe.ID = id
	err := s.db.WithContext(ctx).Model(&existing).
		Select("name", "category", "time", "difficulty", "servings",
			"description", "ingredients", "steps", "notes", "added_by").
		Updates(recipe).Error
	if err != nil {
		return nil, err
	}
	s.publish(realtime.ActionUpdate, id)
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe and publishes a delete event.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.publish(realtime.ActionDelete, id)
	return nil
}

func (s *RecipeService) publish(action string, id uuid.UUID) {
	if s.publisher != nil {
		s.publisher.Publish(realtime.NewEvent(action, id))
	}
}
