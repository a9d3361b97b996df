package themes

import (
	"context"
	"strings"
)

// Service handles theme business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create stores a new theme.
func (s *Service) Create(ctx context.Context, req ThemeRequest) (*Theme, error) {
	return s.repo.Create(ctx, Theme{Description: strings.TrimSpace(req.Description)})
}

// Get returns one theme by id.
func (s *Service) Get(ctx context.Context, id int64) (*Theme, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all themes.
func (s *Service) List(ctx context.Context) ([]Theme, error) {
	return s.repo.List(ctx)
}

// Search returns themes whose description contains the fragment.
func (s *Service) Search(ctx context.Context, description string) ([]Theme, error) {
	return s.repo.SearchByDescription(ctx, strings.TrimSpace(description))
}

// Update rewrites a theme's description.
func (s *Service) Update(ctx context.Context, id int64, req ThemeRequest) (*Theme, error) {
	return s.repo.Update(ctx, Theme{ID: id, Description: strings.TrimSpace(req.Description)})
}

// Delete removes a theme.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
