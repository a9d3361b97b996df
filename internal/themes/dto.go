package themes

import "time"

// ThemeRequest creates or updates a theme.
type ThemeRequest struct {
	Description string `json:"description" validate:"required"`
}

// ThemeResponse is the outward shape of a theme.
type ThemeResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newThemeResponse(t Theme) ThemeResponse {
	return ThemeResponse{
		ID:          t.ID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newThemeResponses(list []Theme) []ThemeResponse {
	out := make([]ThemeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, newThemeResponse(t))
	}
	return out
}
