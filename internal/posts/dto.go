package posts

import "time"

// PostRequest creates or updates a post.
type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Text    string `json:"text" validate:"required"`
	ThemeID int64  `json:"themeId" validate:"required"`
	UserID  int64  `json:"userId" validate:"required"`
}

// PostResponse is the outward shape of a post, including joined theme and
// author labels.
type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	ThemeID   int64     `json:"themeId"`
	UserID    int64     `json:"userId"`
	Theme     string    `json:"theme"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newPostResponse(p Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Text:      p.Text,
		ThemeID:   p.ThemeID,
		UserID:    p.UserID,
		Theme:     p.ThemeDescription,
		Author:    p.AuthorName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPostResponses(list []Post) []PostResponse {
	out := make([]PostResponse, 0, len(list))
	for _, p := range list {
		out = append(out, newPostResponse(p))
	}
	return out
}
