package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipeai/backend/config"
	"github.com/recipeai/backend/internal/api"
	"github.com/recipeai/backend/internal/middleware"
	"github.com/recipeai/backend/internal/realtime"
	"gorm.io/gorm"
)

// SetupRouter configures the application routes
func SetupRouter(db *gorm.DB, cfg *config.Config, hub *realtime.Hub, publisher realtime.Publisher, s3Config *config.S3Config) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Change feed websocket
	router.GET("/api/ws", realtime.Handler(hub))

	// Proxy and v1 routes
	api.SetupAPI(router, db, cfg, publisher, s3Config)

	return router
}
