package themes

import "time"

// Theme groups posts under a shared description.
type Theme struct {
	ID          int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
