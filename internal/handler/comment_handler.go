package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skabdullah999/Dumurianews24/internal/service"
	"github.com/skabdullah999/Dumurianews24/internal/validator"
)

// CommentHandler serves reader comments on news items.
type CommentHandler struct {
	comments  service.CommentServiceInterface
	validator *validator.Validator
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentServiceInterface, v *validator.Validator) *CommentHandler {
	return &CommentHandler{comments: comments, validator: v}
}

// commentRequest is a reader comment submission.
type commentRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ListComments handles GET /api/v1/news/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	c.JSON(http.StatusOK, h.comments.GetComments(c.Request.Context(), c.Param("id")))
}

// CreateComment handles POST /api/v1/news/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	form := validator.CommentForm{
		NewsID: c.Param("id"),
		Name:   req.Name,
		Text:   req.Text,
	}
	if err := h.validator.ValidateCommentForm(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "সব ফিল্ড পূরণ করুন",
			"fields": validator.FieldErrors(err),
		})
		return
	}

	comment := h.comments.AddComment(c.Request.Context(), form.NewsID, form.Name, form.Text)
	if comment == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "মন্তব্য যোগ করতে সমস্যা হয়েছে"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}
