package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/logger"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
)

// CommentService is the data-access layer for reader comments.
type CommentService struct {
	comments repository.CommentRepository
	now      func() time.Time
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{
		comments: comments,
		now:      time.Now,
	}
}

// GetComments returns the approved comments for a news item, newest
// first. Unapproved comments stay invisible to public readers.
func (s *CommentService) GetComments(ctx context.Context, newsID string) []domain.Comment {
	comments, err := s.comments.ListApproved(ctx, newsID)
	if err != nil {
		logger.Error("Failed to fetch comments",
			slog.String("news_id", newsID),
			slog.String("error", err.Error()))
		return []domain.Comment{}
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments
}

// GetAllComments returns the administrative listing of every comment,
// including unapproved ones.
func (s *CommentService) GetAllComments(ctx context.Context) []domain.Comment {
	comments, err := s.comments.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to fetch all comments", slog.String("error", err.Error()))
		return []domain.Comment{}
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments
}

// AddComment stores a new comment dated now. The current workflow
// auto-approves on creation. Returns nil on any failure.
func (s *CommentService) AddComment(ctx context.Context, newsID, name, text string) *domain.Comment {
	comment := &domain.Comment{
		ID:         uuid.New().String(),
		NewsID:     newsID,
		Name:       name,
		Text:       text,
		Date:       s.now().UTC(),
		IsApproved: true,
	}

	stored, err := s.comments.Insert(ctx, comment)
	if err != nil {
		logger.Error("Failed to add comment",
			slog.String("news_id", newsID),
			slog.String("error", err.Error()))
		return nil
	}
	return stored
}

// ApproveComment marks a comment as approved. Returns nil on any failure.
func (s *CommentService) ApproveComment(ctx context.Context, id string) *domain.Comment {
	stored, err := s.comments.Approve(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to approve comment",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return nil
	}
	return stored
}

// DeleteComment removes a comment. Returns false on any failure.
func (s *CommentService) DeleteComment(ctx context.Context, id string) bool {
	if err := s.comments.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to delete comment",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return false
	}
	return true
}
