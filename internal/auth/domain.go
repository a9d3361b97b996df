package auth

import "time"

// User is the credential record backing authentication.
type User struct {
	ID           int64
	Name         string
	Handle       string
	PasswordHash string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Redacted returns a copy of the user with the password hash cleared.
// The hash never crosses the service boundary.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}

// LoginResponse is the payload returned on a successful login.
// Password is always empty; it exists so the wire shape mirrors the
// registration payload.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Token    string `json:"token"`
}
