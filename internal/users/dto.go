package users

import "time"

// CreateUserRequest is the registration payload. The handle must be a valid
// email address and the password at least 8 characters.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Handle   string `json:"handle" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Avatar   string `json:"avatar" validate:"omitempty,max=5000"`
}

// UpdateUserRequest updates an existing account. A non-empty password is
// re-hashed; an empty one leaves the stored hash untouched.
type UpdateUserRequest struct {
	ID       int64  `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Handle   string `json:"handle" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Avatar   string `json:"avatar" validate:"omitempty,max=5000"`
}

// UserResponse is the outward shape of an account. It structurally omits the
// password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Handle    string    `json:"handle"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Handle:    u.Handle,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserResponses(list []User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, newUserResponse(u))
	}
	return out
}
