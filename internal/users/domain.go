package users

import "time"

// User represents a blog account.
type User struct {
	ID           int64
	Name         string
	Handle       string
	PasswordHash string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
