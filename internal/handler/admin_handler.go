package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/service"
	"github.com/skabdullah999/Dumurianews24/internal/validator"
)

// AdminHandler serves the admin panel: news CRUD through the editor
// pipeline, category management and comment moderation.
//
// Every delete takes an explicit confirm flag; without it the request is
// refused. This replaces the two inconsistent client-side confirmation
// patterns with one server-side rule.
type AdminHandler struct {
	content   service.ContentServiceInterface
	comments  service.CommentServiceInterface
	editor    service.EditorServiceInterface
	validator *validator.Validator
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	content service.ContentServiceInterface,
	comments service.CommentServiceInterface,
	editor service.EditorServiceInterface,
	v *validator.Validator,
) *AdminHandler {
	return &AdminHandler{content: content, comments: comments, editor: editor, validator: v}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// ListNews handles GET /api/v1/admin/news
func (h *AdminHandler) ListNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.GetAllNews(c.Request.Context()))
}

// CreateNews handles POST /api/v1/admin/news (multipart form).
func (h *AdminHandler) CreateNews(c *gin.Context) {
	h.publishNews(c, "")
}

// UpdateNews handles PUT /api/v1/admin/news/:id (multipart form).
func (h *AdminHandler) UpdateNews(c *gin.Context) {
	h.publishNews(c, c.Param("id"))
}

// publishNews reads the editor form and runs the publish pipeline. The
// image file is optional; when absent, the submitted image URL (the
// existing one on edit) is kept.
func (h *AdminHandler) publishNews(c *gin.Context, id string) {
	input := service.PublishInput{
		ID:         id,
		Title:      c.PostForm("title"),
		Summary:    c.PostForm("summary"),
		Content:    c.PostForm("content"),
		CategoryID: c.PostForm("category_id"),
		Author:     c.PostForm("author"),
		IsBreaking: c.PostForm("is_breaking") == "true",
		Image:      c.PostForm("image_url"),
	}

	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		input.ImageFile = file
		input.ImageName = header.Filename
	}

	item, err := h.editor.PublishNews(c.Request.Context(), input)
	if err != nil {
		if validator.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "সব ফিল্ড পূরণ করুন",
				"fields": validator.FieldErrors(err),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "সংবাদ সংরক্ষণ করতে সমস্যা হয়েছে"})
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, item)
}

// DeleteNews handles DELETE /api/v1/admin/news/:id?confirm=true
func (h *AdminHandler) DeleteNews(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if !h.content.DeleteNews(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListCategories handles GET /api/v1/admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.GetCategories(c.Request.Context()))
}

// CreateCategory handles POST /api/v1/admin/categories
//
// A slug collision is a distinct refusal, not a generic failure, so the
// manager UI can tell the operator exactly what went wrong.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateCategoryName(req.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ক্যাটাগরির নাম দিন"})
		return
	}

	category, err := h.content.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "এই ক্যাটাগরি ইতিমধ্যে আছে"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ক্যাটাগরি যোগ করতে সমস্যা হয়েছে"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validator.ValidateCategoryName(req.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ক্যাটাগরির নাম দিন"})
		return
	}

	category := h.content.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id?confirm=true
//
// Deletion never cascades: news under the category survives and resolves
// to the default display name on later reads.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if !h.content.DeleteCategory(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListComments handles GET /api/v1/admin/comments - the moderation
// listing, including unapproved comments.
func (h *AdminHandler) ListComments(c *gin.Context) {
	c.JSON(http.StatusOK, h.comments.GetAllComments(c.Request.Context()))
}

// ApproveComment handles POST /api/v1/admin/comments/:id/approve
func (h *AdminHandler) ApproveComment(c *gin.Context) {
	comment := h.comments.ApproveComment(c.Request.Context(), c.Param("id"))
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /api/v1/admin/comments/:id?confirm=true
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if !h.comments.DeleteComment(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// confirmed enforces the single delete-confirmation pattern: the client
// must resubmit with confirm=true after arming the delete.
func confirmed(c *gin.Context) bool {
	if c.Query("confirm") == "true" || c.PostForm("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusConflict, gin.H{"error": "confirmation_required"})
	return false
}
