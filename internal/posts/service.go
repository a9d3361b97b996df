package posts

import (
	"context"
	"log/slog"
)

// FeedLimit bounds the recent-posts feed.
const FeedLimit = 20

// Service handles post business logic.
type Service struct {
	repo          RepositoryPort
	feed          FeedCachePort
	enqueueWarmup func(context.Context) error
	logger        *slog.Logger
}

// NewService builds a Service instance. feed and enqueueWarmup may be nil;
// the service then reads straight from the repository and skips background
// warmups.
func NewService(repo RepositoryPort, feed FeedCachePort, enqueueWarmup func(context.Context) error, logger *slog.Logger) *Service {
	return &Service{repo: repo, feed: feed, enqueueWarmup: enqueueWarmup, logger: logger}
}

// Create stores a new post and refreshes the feed.
func (s *Service) Create(ctx context.Context, req PostRequest) (*Post, error) {
	post, err := s.repo.Create(ctx, Post{
		Title:   req.Title,
		Text:    req.Text,
		ThemeID: req.ThemeID,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}
	s.refreshFeed(ctx)
	return post, nil
}

// Get returns one post by id.
func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all posts.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx)
}

// Feed returns the newest posts, served from cache when available.
func (s *Service) Feed(ctx context.Context) ([]Post, error) {
	if s.feed == nil {
		return s.repo.Recent(ctx, FeedLimit)
	}
	return s.feed.Recent(ctx, func(ctx context.Context) ([]Post, error) {
		return s.repo.Recent(ctx, FeedLimit)
	})
}

// WarmFeed rebuilds the feed cache. Called by the background warmup job.
func (s *Service) WarmFeed(ctx context.Context) error {
	if s.feed == nil {
		return nil
	}
	if err := s.feed.Invalidate(ctx); err != nil {
		return err
	}
	_, err := s.feed.Recent(ctx, func(ctx context.Context) ([]Post, error) {
		return s.repo.Recent(ctx, FeedLimit)
	})
	return err
}

// Search returns posts whose title contains the fragment.
func (s *Service) Search(ctx context.Context, title string) ([]Post, error) {
	return s.repo.SearchByTitle(ctx, title)
}

// Update rewrites a post and refreshes the feed.
func (s *Service) Update(ctx context.Context, id int64, req PostRequest) (*Post, error) {
	post, err := s.repo.Update(ctx, Post{
		ID:      id,
		Title:   req.Title,
		Text:    req.Text,
		ThemeID: req.ThemeID,
	})
	if err != nil {
		return nil, err
	}
	s.refreshFeed(ctx)
	return post, nil
}

// Delete removes a post and refreshes the feed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshFeed(ctx)
	return nil
}

// refreshFeed drops the cached feed and hands the rebuild to the worker. A
// failed invalidation only delays freshness until the TTL expires, so it is
// logged and not surfaced.
func (s *Service) refreshFeed(ctx context.Context) {
	if s.feed != nil {
		if err := s.feed.Invalidate(ctx); err != nil && s.logger != nil {
			s.logger.Warn("invalidate feed cache", slog.Any("error", err))
		}
	}
	if s.enqueueWarmup != nil {
		if err := s.enqueueWarmup(ctx); err != nil && s.logger != nil {
			s.logger.Warn("enqueue feed warmup", slog.Any("error", err))
		}
	}
}
