package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skabdullah999/Dumurianews24/internal/service"
)

// NewsHandler serves the public reader endpoints for news and categories.
type NewsHandler struct {
	content service.ContentServiceInterface
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(content service.ContentServiceInterface) *NewsHandler {
	return &NewsHandler{content: content}
}

// ListNews handles GET /api/v1/news
func (h *NewsHandler) ListNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.GetAllNews(c.Request.Context()))
}

// LatestNews handles GET /api/v1/news/latest
func (h *NewsHandler) LatestNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.GetLatestNews(c.Request.Context()))
}

// BreakingNews handles GET /api/v1/news/breaking
func (h *NewsHandler) BreakingNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.GetBreakingNews(c.Request.Context()))
}

// GetNews handles GET /api/v1/news/:id
//
// A missing item is a 404; the reader UI routes that to a redirect-home
// rather than an error message.
func (h *NewsHandler) GetNews(c *gin.Context) {
	item := h.content.GetNewsByID(c.Request.Context(), c.Param("id"))
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListCategories handles GET /api/v1/categories
func (h *NewsHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.GetCategories(c.Request.Context()))
}

// NewsByCategory handles GET /api/v1/categories/:id/news
func (h *NewsHandler) NewsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.GetNewsByCategory(c.Request.Context(), c.Param("id")))
}
