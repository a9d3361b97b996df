package auth

import (
	"context"

	"github.com/verbo-blog/verbo/internal/shared"
)

// Service wraps authentication business rules: credential validation and
// login. All collaborators are injected; the service holds no mutable state.
type Service struct {
	repo   Repository
	hasher *PasswordHasher
	issuer *Issuer
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher *PasswordHasher, issuer *Issuer) *Service {
	return &Service{repo: repo, hasher: hasher, issuer: issuer}
}

// ValidateCredentials validates handle/password credentials.
//
// An unknown handle returns shared.ErrUserNotFound. A wrong password returns
// (nil, nil): the absent result is the failure signal and the caller must
// treat it as one. On success the returned user has its password hash
// cleared.
func (s *Service) ValidateCredentials(ctx context.Context, handle, password string) (*User, error) {
	user, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if !s.hasher.Compare(password, user.PasswordHash) {
		return nil, nil
	}
	redacted := user.Redacted()
	return &redacted, nil
}

// Login issues a bearer token for the account owning the handle.
//
// Login does not verify the password: it requires that the caller has already
// run ValidateCredentials for the same handle and treated its result as a
// strict precondition. The login HTTP handler is the only caller and enforces
// that order. An unknown handle fails with the generic
// shared.ErrInvalidCredentials so this path never confirms account existence.
func (s *Service) Login(ctx context.Context, handle, password string) (*LoginResponse, error) {
	user, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.issuer.Sign(handle)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		ID:       user.ID,
		Name:     user.Name,
		Handle:   user.Handle,
		Password: "",
		Avatar:   user.Avatar,
		Token:    BearerScheme + token,
	}, nil
}
