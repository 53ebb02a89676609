package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipeai/backend/internal/model"
	"github.com/recipeai/backend/internal/service"
)

// GroceryExportRequest carries a meal plan and its derived grocery list.
type GroceryExportRequest struct {
	Plan        model.MealPlan      `json:"plan"`
	GroceryList []model.GroceryItem `json:"grocery_list"`
}

type GroceryHandler struct {
	documentService *service.DocumentService
}

func NewGroceryHandler(documentService *service.DocumentService) *GroceryHandler {
	return &GroceryHandler{documentService: documentService}
}

func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/grocery/export", h.Export)
}

// Export renders the printable grocery document. When an S3 bucket is
// configured the document is uploaded and its URL returned instead.
func (h *GroceryHandler) Export(c *gin.Context) {
	var req GroceryExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	document, err := h.documentService.Render(req.Plan, req.GroceryList)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document"})
		return
	}

	if h.documentService.UploadEnabled() {
		url, err := h.documentService.Upload(c.Request.Context(), document)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", document)
}
