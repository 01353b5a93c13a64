package domain

import "time"

// UncategorizedName is the display name used when a news item's category
// cannot be resolved, for example after the category was deleted.
const UncategorizedName = "Uncategorized"

// NewsItem represents a news article in its application shape: camelCase
// fields with the category name denormalized at read time.
type NewsItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	Category   string    `json:"category"`
	CategoryID string    `json:"categoryId"`
	Date       time.Time `json:"date"`
	Author     string    `json:"author"`
	IsBreaking bool      `json:"isBreaking"`
}

// NewsRow is the storage shape of a news record. Category is referenced
// by id only; the display name is never persisted alongside it.
type NewsRow struct {
	ID         string
	Title      string
	Summary    string
	Content    string
	Image      string
	CategoryID string
	Date       time.Time
	Author     string
	IsBreaking bool
}

// Entity shapes a storage row into a NewsItem using the given category
// display name.
func (r NewsRow) Entity(categoryName string) NewsItem {
	return NewsItem{
		ID:         r.ID,
		Title:      r.Title,
		Summary:    r.Summary,
		Content:    r.Content,
		Image:      r.Image,
		Category:   categoryName,
		CategoryID: r.CategoryID,
		Date:       r.Date,
		Author:     r.Author,
		IsBreaking: r.IsBreaking,
	}
}

// Suggestion is a lightweight search suggestion for autocomplete.
type Suggestion struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
