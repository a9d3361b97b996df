package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/verbo-blog/verbo/internal/posts"
)

// FeedWarmupJob rebuilds the recent-posts feed cache.
type FeedWarmupJob struct {
	service *posts.Service
	logger  *slog.Logger
}

// NewFeedWarmupJob constructs a FeedWarmupJob.
func NewFeedWarmupJob(service *posts.Service, logger *slog.Logger) *FeedWarmupJob {
	return &FeedWarmupJob{service: service, logger: logger}
}

// Handle processes TaskFeedWarmup tasks.
func (j *FeedWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload FeedWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if err := j.service.WarmFeed(ctx); err != nil {
		j.logger.Warn("feed warmup failed",
			slog.String("request_id", payload.RequestID), slog.Any("error", err))
		return err
	}
	j.logger.Info("feed warmed", slog.String("request_id", payload.RequestID))
	return nil
}
