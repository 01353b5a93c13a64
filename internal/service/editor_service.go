package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/infrastructure/mediastore"
	"github.com/skabdullah999/Dumurianews24/internal/logger"
	"github.com/skabdullah999/Dumurianews24/internal/validator"
)

// ErrPublishFailed is the generic pipeline failure surfaced to the admin
// UI when the upload or record write goes wrong.
var ErrPublishFailed = errors.New("publish failed")

// EditorService sequences the admin publish pipeline: validate the
// submission, upload the image if a new one was selected, then create or
// update the record. A failure at any step aborts the pipeline; nothing
// partial is persisted.
type EditorService struct {
	content   ContentServiceInterface
	media     mediastore.Store
	validator *validator.Validator
	now       func() time.Time
}

// NewEditorService creates a new EditorService.
func NewEditorService(content ContentServiceInterface, media mediastore.Store, v *validator.Validator) *EditorService {
	return &EditorService{
		content:   content,
		media:     media,
		validator: v,
		now:       time.Now,
	}
}

// PublishNews runs the pipeline for one editor submission. Validation
// errors come back typed so the UI can show field-level messages; upload
// and write failures collapse to ErrPublishFailed.
func (s *EditorService) PublishNews(ctx context.Context, input PublishInput) (*domain.NewsItem, error) {
	form := validator.NewsForm{
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		Author:     input.Author,
	}
	if err := s.validator.ValidateNewsForm(&form); err != nil {
		return nil, err
	}

	image := input.Image
	if input.ImageFile != nil {
		url, err := s.uploadImage(input)
		if err != nil {
			logger.Error("Image upload failed", slog.String("error", err.Error()))
			return nil, ErrPublishFailed
		}
		image = url
	}

	news := NewsInput{
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		Image:      image,
		CategoryID: input.CategoryID,
		Author:     input.Author,
		IsBreaking: input.IsBreaking,
	}

	var item *domain.NewsItem
	if input.ID == "" {
		item = s.content.AddNews(ctx, news)
	} else {
		item = s.content.UpdateNews(ctx, input.ID, news)
	}
	if item == nil {
		return nil, ErrPublishFailed
	}
	return item, nil
}

// uploadImage writes the selected file to the media store under a key
// namespaced by the current timestamp plus the original extension, and
// returns the public URL that becomes the persisted image field.
func (s *EditorService) uploadImage(input PublishInput) (string, error) {
	ext := filepath.Ext(input.ImageName)
	key := fmt.Sprintf("news/%d%s", s.now().UnixMilli(), ext)
	return s.media.Save(key, input.ImageFile)
}
