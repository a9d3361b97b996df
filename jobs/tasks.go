package jobs

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskFeedWarmup is the task type for rebuilding the recent-posts feed cache.
	TaskFeedWarmup = "feed:warmup"
)

// FeedWarmupPayload carries the identity of one warmup request.
type FeedWarmupPayload struct {
	RequestID string `json:"request_id"`
}

// NewFeedWarmupTask constructs an Asynq task with a fresh request id.
func NewFeedWarmupTask() (*asynq.Task, error) {
	data, err := json.Marshal(FeedWarmupPayload{RequestID: uuid.NewString()})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskFeedWarmup, data), nil
}
