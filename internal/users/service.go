package users

import (
	"context"
	"fmt"
)

// PasswordHasher derives storable digests from plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// Service handles user business logic.
type Service struct {
	repo   RepositoryPort
	hasher PasswordHasher
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register creates a new account. The plaintext password is hashed and
// discarded; only the digest is stored.
func (s *Service) Register(ctx context.Context, req CreateUserRequest) (*User, error) {
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return s.repo.Create(ctx, User{
		Name:         req.Name,
		Handle:       req.Handle,
		PasswordHash: digest,
		Avatar:       req.Avatar,
	})
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Update rewrites an account. An empty request password keeps the stored
// hash; a non-empty one replaces it.
func (s *Service) Update(ctx context.Context, req UpdateUserRequest) (*User, error) {
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	digest := current.PasswordHash
	if req.Password != "" {
		digest, err = s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	return s.repo.Update(ctx, User{
		ID:           req.ID,
		Name:         req.Name,
		Handle:       req.Handle,
		PasswordHash: digest,
		Avatar:       req.Avatar,
	})
}
