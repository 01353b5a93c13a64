package domain

import "strings"

// Category represents a news category. The id is a slug derived from the
// name at creation and is never regenerated on rename, so renamed
// categories keep their original id as a stable foreign key.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Slugify derives a category id from its name: lowercased, with internal
// whitespace runs collapsed to a single hyphen. Non-ASCII text is kept
// as-is so Bengali names stay readable in URLs.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
