package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/logger"
	"github.com/skabdullah999/Dumurianews24/internal/metrics"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
)

const latestNewsLimit = 5

// ContentService is the data-access layer for news and categories. It
// shapes storage rows into application entities, resolving the category
// display name on every read so renames are always reflected.
type ContentService struct {
	news       repository.NewsRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

// NewContentService creates a new ContentService.
func NewContentService(news repository.NewsRepository, categories repository.CategoryRepository) *ContentService {
	return &ContentService{
		news:       news,
		categories: categories,
		now:        time.Now,
	}
}

// GetLatestNews returns the five most recent news items, newest first.
func (s *ContentService) GetLatestNews(ctx context.Context) []domain.NewsItem {
	return s.listNews(ctx, "latest", repository.NewsFilter{Limit: latestNewsLimit})
}

// GetAllNews returns every news item, newest first.
func (s *ContentService) GetAllNews(ctx context.Context) []domain.NewsItem {
	return s.listNews(ctx, "all", repository.NewsFilter{})
}

// GetBreakingNews returns news items flagged for the breaking ticker,
// newest first.
func (s *ContentService) GetBreakingNews(ctx context.Context) []domain.NewsItem {
	return s.listNews(ctx, "breaking", repository.NewsFilter{BreakingOnly: true})
}

// listNews fetches rows for the filter and resolves category names via a
// single category map lookup. Any storage error collapses to an empty
// result; the cause is only visible in logs.
func (s *ContentService) listNews(ctx context.Context, op string, filter repository.NewsFilter) []domain.NewsItem {
	rows, err := s.news.List(ctx, filter)
	if err != nil {
		logger.Error("Failed to fetch news",
			slog.String("op", op),
			slog.String("error", err.Error()))
		return []domain.NewsItem{}
	}
	if len(rows) == 0 {
		return []domain.NewsItem{}
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		logger.Error("Failed to fetch categories",
			slog.String("op", op),
			slog.String("error", err.Error()))
		return []domain.NewsItem{}
	}

	return shapeNews(rows, names)
}

// GetNewsByCategory returns news items for one category, newest first.
// The category name is resolved with a single scoped lookup instead of
// the full map.
func (s *ContentService) GetNewsByCategory(ctx context.Context, categoryID string) []domain.NewsItem {
	rows, err := s.news.List(ctx, repository.NewsFilter{CategoryID: categoryID})
	if err != nil {
		logger.Error("Failed to fetch news by category",
			slog.String("category_id", categoryID),
			slog.String("error", err.Error()))
		return []domain.NewsItem{}
	}
	if len(rows) == 0 {
		return []domain.NewsItem{}
	}

	name := domain.UncategorizedName
	category, err := s.categories.GetByID(ctx, categoryID)
	switch {
	case err == nil:
		name = category.Name
	case errors.Is(err, domain.ErrNotFound):
		// Soft orphan: the category was deleted but its news survives.
	default:
		logger.Error("Failed to resolve category",
			slog.String("category_id", categoryID),
			slog.String("error", err.Error()))
		return []domain.NewsItem{}
	}

	items := make([]domain.NewsItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Entity(name))
	}
	return items
}

// GetNewsByID returns a single news item or nil when it is missing or
// storage fails.
func (s *ContentService) GetNewsByID(ctx context.Context, id string) *domain.NewsItem {
	row, err := s.news.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to fetch news by id",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return nil
	}

	name, ok := s.resolveCategoryName(ctx, row.CategoryID)
	if !ok {
		return nil
	}

	item := row.Entity(name)
	return &item
}

// AddNews inserts a news item. The date defaults to now; storage assigns
// nothing else. Returns nil on any failure.
func (s *ContentService) AddNews(ctx context.Context, input NewsInput) *domain.NewsItem {
	row := &domain.NewsRow{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		Image:      input.Image,
		CategoryID: input.CategoryID,
		Date:       s.now().UTC(),
		Author:     input.Author,
		IsBreaking: input.IsBreaking,
	}

	stored, err := s.news.Insert(ctx, row)
	if err != nil {
		logger.Error("Failed to add news", slog.String("error", err.Error()))
		return nil
	}
	metrics.NewsWritesTotal.WithLabelValues("create").Inc()

	name, ok := s.resolveCategoryName(ctx, stored.CategoryID)
	if !ok {
		return nil
	}

	item := stored.Entity(name)
	return &item
}

// UpdateNews rewrites a news item keyed by id. The date is creation-
// immutable and never changes here. Returns nil on any failure.
func (s *ContentService) UpdateNews(ctx context.Context, id string, input NewsInput) *domain.NewsItem {
	row := &domain.NewsRow{
		ID:         id,
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		Image:      input.Image,
		CategoryID: input.CategoryID,
		Author:     input.Author,
		IsBreaking: input.IsBreaking,
	}

	stored, err := s.news.Update(ctx, row)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to update news",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return nil
	}
	metrics.NewsWritesTotal.WithLabelValues("update").Inc()

	name, ok := s.resolveCategoryName(ctx, stored.CategoryID)
	if !ok {
		return nil
	}

	item := stored.Entity(name)
	return &item
}

// DeleteNews removes a news item. Returns false when nothing was deleted,
// so deleting the same id twice reports failure the second time.
func (s *ContentService) DeleteNews(ctx context.Context, id string) bool {
	if err := s.news.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to delete news",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return false
	}
	metrics.NewsWritesTotal.WithLabelValues("delete").Inc()
	return true
}

// GetCategories returns all categories ordered by name, or an empty slice
// on storage error.
func (s *ContentService) GetCategories(ctx context.Context) []domain.Category {
	categories, err := s.categories.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch categories", slog.String("error", err.Error()))
		return []domain.Category{}
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories
}

// AddCategory creates a category whose id is the slug of its name. A slug
// collision is refused with domain.ErrCategoryExists, checked explicitly
// before the insert so the refusal is distinguishable from a generic
// storage failure.
func (s *ContentService) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	id := domain.Slugify(name)

	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		logger.Error("Failed to check category",
			slog.String("id", id),
			slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, domain.ErrCategoryExists
	}

	stored, err := s.categories.Insert(ctx, domain.Category{ID: id, Name: name})
	if err != nil {
		if !errors.Is(err, domain.ErrCategoryExists) {
			logger.Error("Failed to add category",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return nil, err
	}
	return stored, nil
}

// UpdateCategory renames a category. The id never changes, so it may
// drift from the name over time; that is acceptable because ids are
// stable foreign keys. Returns nil on any failure.
func (s *ContentService) UpdateCategory(ctx context.Context, id, name string) *domain.Category {
	stored, err := s.categories.Rename(ctx, id, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to rename category",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return nil
	}
	return stored
}

// DeleteCategory removes a category without cascading. News items that
// still reference it resolve to the default display name on later reads.
func (s *ContentService) DeleteCategory(ctx context.Context, id string) bool {
	if err := s.categories.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to delete category",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return false
	}
	return true
}

// categoryNames fetches the full id-to-name map once per multi-row read.
func (s *ContentService) categoryNames(ctx context.Context) (map[string]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

// resolveCategoryName looks up one category name. A missing category
// resolves to the default name; a storage error reports failure.
func (s *ContentService) resolveCategoryName(ctx context.Context, categoryID string) (string, bool) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.UncategorizedName, true
		}
		logger.Error("Failed to resolve category",
			slog.String("category_id", categoryID),
			slog.String("error", err.Error()))
		return "", false
	}
	return category.Name, true
}

func shapeNews(rows []domain.NewsRow, names map[string]string) []domain.NewsItem {
	items := make([]domain.NewsItem, 0, len(rows))
	for _, row := range rows {
		name, ok := names[row.CategoryID]
		if !ok {
			name = domain.UncategorizedName
		}
		items = append(items, row.Entity(name))
	}
	return items
}
