package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipeai/backend/internal/service"
)

// AIHandler exposes the model proxy endpoint. All requests to the
// upstream API go through here so the key never reaches a client.
type AIHandler struct {
	llmService *service.LLMService
}

func NewAIHandler(llmService *service.LLMService) *AIHandler {
	return &AIHandler{llmService: llmService}
}

// RegisterRoutes mounts the proxy. The route accepts any method so
// non-POST requests get a 405 instead of gin's default 404.
func (h *AIHandler) RegisterRoutes(router *gin.Engine) {
	router.Any("/api/claude", h.Relay)
}

func (h *AIHandler) Relay(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req service.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing messages in request body"})
		return
	}

	result, err := h.llmService.Chat(c.Request.Context(), &req)
	if err != nil {
		log.Printf("[AIHandler] Proxy request failed: %v", err)
		if errors.Is(err, service.ErrAPIKeyMissing) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	// Upstream status and body pass through untouched, errors included.
	c.Data(result.StatusCode, "application/json", result.Body)
}
