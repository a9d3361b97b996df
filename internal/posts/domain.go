package posts

import "time"

// Post is a blog entry written by a user under a theme.
type Post struct {
	ID        int64
	Title     string
	Text      string
	ThemeID   int64
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields, populated on reads.
	ThemeDescription string
	AuthorName       string
}
