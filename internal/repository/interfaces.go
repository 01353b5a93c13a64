package repository

import (
	"context"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
)

// NewsFilter narrows a news listing. The zero value lists everything.
type NewsFilter struct {
	CategoryID   string
	BreakingOnly bool
	Limit        int
}

// NewsRepository defines storage-row access to the news table.
type NewsRepository interface {
	List(ctx context.Context, filter NewsFilter) ([]domain.NewsRow, error)
	GetByID(ctx context.Context, id string) (*domain.NewsRow, error)
	Insert(ctx context.Context, row *domain.NewsRow) (*domain.NewsRow, error)
	Update(ctx context.Context, row *domain.NewsRow) (*domain.NewsRow, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, includeContent bool, limit int) ([]domain.NewsRow, error)
}

// CategoryRepository defines storage access to the categories table.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, category domain.Category) (*domain.Category, error)
	Rename(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines storage access to the comments table.
type CommentRepository interface {
	ListApproved(ctx context.Context, newsID string) ([]domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.Comment, error)
	Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Approve(ctx context.Context, id string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// AdminUserRepository defines storage access to the admin_users table.
type AdminUserRepository interface {
	Count(ctx context.Context) (int, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Insert(ctx context.Context, user *domain.AdminUser) error
}

// SessionRepository defines storage access to the sessions table.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteForUser(ctx context.Context, adminUserID string) error
}
