package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skabdullah999/Dumurianews24/internal/service"
)

// SearchHandler serves the public search endpoints.
type SearchHandler struct {
	search service.SearchServiceInterface
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search service.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /api/v1/search?q=...
func (h *SearchHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.search.SearchNews(c.Request.Context(), c.Query("q")))
}

// Suggestions handles GET /api/v1/search/suggestions?q=...
func (h *SearchHandler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.search.SuggestNews(c.Request.Context(), c.Query("q")))
}
