package api

import (
	"github.com/gin-gonic/gin"
	"github.com/recipeai/backend/config"
	"github.com/recipeai/backend/internal/realtime"
	"github.com/recipeai/backend/internal/service"
	"gorm.io/gorm"
)

// SetupAPI wires services and handlers onto the router. The publisher
// receives a change event for every recipe mutation; s3Config may be nil.
func SetupAPI(router *gin.Engine, db *gorm.DB, cfg *config.Config, publisher realtime.Publisher, s3Config *config.S3Config) {
	llmService := service.NewLLMService(cfg)
	aiHandler := NewAIHandler(llmService)
	aiHandler.RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	{
		recipeService := service.NewRecipeService(db, publisher)
		documentService := service.NewDocumentService(s3Config)

		recipeHandler := NewRecipeHandler(recipeService)
		groceryHandler := NewGroceryHandler(documentService)

		recipeHandler.RegisterRoutes(v1)
		groceryHandler.RegisterRoutes(v1)
	}
}
