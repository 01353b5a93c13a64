package service

import (
	"context"
	"io"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
)

// ContentServiceInterface defines the content data-access layer.
//
// Read operations absorb storage errors: list operations return an empty
// slice and single-item operations return nil. Callers branch on
// emptiness, never on errors. Write operations used by the admin panel
// return typed errors so business-rule refusals stay distinguishable
// from generic failures.
type ContentServiceInterface interface {
	GetLatestNews(ctx context.Context) []domain.NewsItem
	GetAllNews(ctx context.Context) []domain.NewsItem
	GetBreakingNews(ctx context.Context) []domain.NewsItem
	GetNewsByCategory(ctx context.Context, categoryID string) []domain.NewsItem
	GetNewsByID(ctx context.Context, id string) *domain.NewsItem

	AddNews(ctx context.Context, input NewsInput) *domain.NewsItem
	UpdateNews(ctx context.Context, id string, input NewsInput) *domain.NewsItem
	DeleteNews(ctx context.Context, id string) bool

	GetCategories(ctx context.Context) []domain.Category
	AddCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id, name string) *domain.Category
	DeleteCategory(ctx context.Context, id string) bool
}

// SearchServiceInterface defines query-based news lookup with a built-in
// fallback dataset for when storage is unreachable.
type SearchServiceInterface interface {
	SearchNews(ctx context.Context, query string) []domain.NewsItem
	SuggestNews(ctx context.Context, query string) []domain.Suggestion
}

// CommentServiceInterface defines the comment data-access layer.
type CommentServiceInterface interface {
	GetComments(ctx context.Context, newsID string) []domain.Comment
	GetAllComments(ctx context.Context) []domain.Comment
	AddComment(ctx context.Context, newsID, name, text string) *domain.Comment
	ApproveComment(ctx context.Context, id string) *domain.Comment
	DeleteComment(ctx context.Context, id string) bool
}

// AuthServiceInterface defines the authentication/session gate.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context, token string)
	CheckSession(ctx context.Context, token string) bool
	Signup(ctx context.Context, email, password string) error
	Subscribe() (<-chan bool, func())
}

// EditorServiceInterface sequences the admin publish pipeline:
// validate, optionally upload the image, then create or update.
type EditorServiceInterface interface {
	PublishNews(ctx context.Context, input PublishInput) (*domain.NewsItem, error)
}

// NewsInput carries the writable fields of a news item.
type NewsInput struct {
	Title      string
	Summary    string
	Content    string
	Image      string
	CategoryID string
	Author     string
	IsBreaking bool
}

// PublishInput is the editor submission. An empty ID means create. When
// ImageFile is set the binary is uploaded before the record write and the
// resulting public URL replaces Image.
type PublishInput struct {
	ID         string
	Title      string
	Summary    string
	Content    string
	CategoryID string
	Author     string
	IsBreaking bool
	Image      string
	ImageFile  io.Reader
	ImageName  string
}
