package domain

import "time"

// Comment represents a reader comment on a news item. Only approved
// comments are shown to public readers; the administrative listing also
// includes unapproved ones.
type Comment struct {
	ID         string    `json:"id"`
	NewsID     string    `json:"newsId"`
	Name       string    `json:"name"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
	IsApproved bool      `json:"isApproved"`
}
