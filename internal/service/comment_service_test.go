package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/mocks"
	"github.com/skabdullah999/Dumurianews24/internal/service"
)

func TestCommentService_GetComments(t *testing.T) {
	ctx := context.Background()

	t.Run("returns approved comments", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(commentRepo)

		comments := []domain.Comment{
			{ID: uuid.New().String(), NewsID: "n1", Name: "করিম খান", Text: "চমৎকার", IsApproved: true},
		}
		commentRepo.EXPECT().
			ListApproved(mock.Anything, "n1").
			Return(comments, nil)

		got := svc.GetComments(ctx, "n1")

		require.Len(t, got, 1)
		assert.Equal(t, "করিম খান", got[0].Name)
	})

	t.Run("storage error collapses to empty slice", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(commentRepo)

		commentRepo.EXPECT().
			ListApproved(mock.Anything, "n1").
			Return(nil, assert.AnError)

		got := svc.GetComments(ctx, "n1")

		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCommentService_GetAllComments(t *testing.T) {
	ctx := context.Background()

	commentRepo := mocks.NewMockCommentRepository(t)
	svc := service.NewCommentService(commentRepo)

	comments := []domain.Comment{
		{ID: "c1", IsApproved: true},
		{ID: "c2", IsApproved: false},
	}
	commentRepo.EXPECT().
		ListAll(mock.Anything).
		Return(comments, nil)

	got := svc.GetAllComments(ctx)

	assert.Len(t, got, 2, "moderation listing includes unapproved comments")
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and date and auto-approves", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(commentRepo)

		var inserted *domain.Comment
		commentRepo.EXPECT().
			Insert(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(*domain.Comment)
			}).
			Return(&domain.Comment{ID: "stored", NewsID: "n1", IsApproved: true}, nil)

		got := svc.AddComment(ctx, "n1", "করিম খান", "চমৎকার")

		require.NotNil(t, got)
		require.NotNil(t, inserted)
		assert.NotEmpty(t, inserted.ID)
		assert.WithinDuration(t, time.Now().UTC(), inserted.Date, time.Minute)
		assert.True(t, inserted.IsApproved)
	})

	t.Run("storage failure returns nil", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		svc := service.NewCommentService(commentRepo)

		commentRepo.EXPECT().
			Insert(mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		assert.Nil(t, svc.AddComment(ctx, "n1", "করিম খান", "চমৎকার"))
	})
}

func TestCommentService_ApproveComment(t *testing.T) {
	ctx := context.Background()

	commentRepo := mocks.NewMockCommentRepository(t)
	svc := service.NewCommentService(commentRepo)

	commentRepo.EXPECT().
		Approve(mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", IsApproved: true}, nil).Once()
	commentRepo.EXPECT().
		Approve(mock.Anything, "missing").
		Return(nil, domain.ErrNotFound).Once()

	approved := svc.ApproveComment(ctx, "c1")
	require.NotNil(t, approved)
	assert.True(t, approved.IsApproved)

	assert.Nil(t, svc.ApproveComment(ctx, "missing"))
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctx := context.Background()

	commentRepo := mocks.NewMockCommentRepository(t)
	svc := service.NewCommentService(commentRepo)

	commentRepo.EXPECT().Delete(mock.Anything, "c1").Return(nil).Once()
	commentRepo.EXPECT().Delete(mock.Anything, "c1").Return(domain.ErrNotFound).Once()

	assert.True(t, svc.DeleteComment(ctx, "c1"))
	assert.False(t, svc.DeleteComment(ctx, "c1"))
}
