package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/logger"
	"github.com/skabdullah999/Dumurianews24/internal/metrics"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
)

const (
	searchResultLimit = 10
	suggestionLimit   = 5
)

// fallbackNews is a small fixed dataset scanned when storage is
// unreachable, so the search UI stays demonstrably functional. It is not
// a cache and is never served on the happy path.
var fallbackNews = []domain.NewsItem{
	{
		ID:         "1",
		Title:      "ডুমুরিয়ায় নতুন প্রযুক্তি উদ্যোগ চালু হলো",
		Summary:    "ডুমুরিয়ায় ডিজিটাল প্রযুক্তি খাতে নতুন উদ্যোগ চালু করা হয়েছে।",
		Content:    "ডুমুরিয়ায় ডিজিটাল প্রযুক্তি খাতে নতুন উদ্যোগ চালু করা হয়েছে।",
		Image:      "/placeholder.svg?height=600&width=800",
		Category:   "technology",
		CategoryID: "technology",
		Author:     "রহিম আহমেদ",
		IsBreaking: true,
	},
	{
		ID:         "2",
		Title:      "ডুমুরিয়া ক্রিকেট দল নতুন কোচ পেল",
		Summary:    "ডুমুরিয়া ক্রিকেট দলের জন্য নতুন কোচ নিয়োগ দেওয়া হয়েছে।",
		Content:    "ডুমুরিয়া ক্রিকেট দলের জন্য নতুন কোচ নিয়োগ দেওয়া হয়েছে।",
		Image:      "/placeholder.svg?height=600&width=800",
		Category:   "sports",
		CategoryID: "sports",
		Author:     "করিম খান",
		IsBreaking: false,
	},
	{
		ID:         "3",
		Title:      "ডুমুরিয়ায় নতুন মেট্রো রেল লাইন উদ্বোধন",
		Summary:    "ডুমুরিয়ায় যানজট কমাতে নতুন মেট্রো রেল লাইন উদ্বোধন করা হয়েছে।",
		Content:    "ডুমুরিয়ায় যানজট কমাতে নতুন মেট্রো রেল লাইন উদ্বোধন করা হয়েছে।",
		Image:      "/placeholder.svg?height=600&width=800",
		Category:   "national",
		CategoryID: "national",
		Author:     "নাজমুল হাসান",
		IsBreaking: true,
	},
}

// SearchService performs query-based news lookup. Blank queries never
// reach storage; storage errors fall back to the built-in sample set.
type SearchService struct {
	news       repository.NewsRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

// NewSearchService creates a new SearchService.
func NewSearchService(news repository.NewsRepository, categories repository.CategoryRepository) *SearchService {
	return &SearchService{
		news:       news,
		categories: categories,
		now:        time.Now,
	}
}

// SearchNews matches the query case-insensitively against title, summary
// and content, newest first, capped at ten results.
func (s *SearchService) SearchNews(ctx context.Context, query string) []domain.NewsItem {
	if strings.TrimSpace(query) == "" {
		return []domain.NewsItem{}
	}

	rows, err := s.news.Search(ctx, query, true, searchResultLimit)
	if err != nil {
		logger.Error("Search failed, using fallback dataset",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return s.fallbackSearch(query, true)
	}
	if len(rows) == 0 {
		return []domain.NewsItem{}
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		logger.Error("Category resolution failed, using fallback dataset",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return s.fallbackSearch(query, true)
	}

	return shapeNews(rows, names)
}

// SuggestNews returns up to five {id, title} pairs matching the query
// against title and summary only. Content is excluded to keep
// suggestions snappy and title-relevant.
func (s *SearchService) SuggestNews(ctx context.Context, query string) []domain.Suggestion {
	if strings.TrimSpace(query) == "" {
		return []domain.Suggestion{}
	}

	rows, err := s.news.Search(ctx, query, false, suggestionLimit)
	if err != nil {
		logger.Error("Suggestions failed, using fallback dataset",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return suggestionsOf(s.fallbackSearch(query, false))
	}

	suggestions := make([]domain.Suggestion, 0, len(rows))
	for _, row := range rows {
		suggestions = append(suggestions, domain.Suggestion{ID: row.ID, Title: row.Title})
	}
	return suggestions
}

// fallbackSearch scans the fixed sample dataset with the same substring
// predicate the storage query uses.
func (s *SearchService) fallbackSearch(query string, includeContent bool) []domain.NewsItem {
	metrics.SearchFallbacksTotal.Inc()

	q := strings.ToLower(query)
	var matches []domain.NewsItem
	for _, item := range fallbackNews {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Summary), q) ||
			(includeContent && strings.Contains(strings.ToLower(item.Content), q)) {
			item.Date = s.now().UTC()
			matches = append(matches, item)
		}
	}
	if matches == nil {
		return []domain.NewsItem{}
	}
	return matches
}

func (s *SearchService) categoryNames(ctx context.Context) (map[string]string, error) {
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

func suggestionsOf(items []domain.NewsItem) []domain.Suggestion {
	suggestions := make([]domain.Suggestion, 0, len(items))
	for _, item := range items {
		suggestions = append(suggestions, domain.Suggestion{ID: item.ID, Title: item.Title})
	}
	return suggestions
}
