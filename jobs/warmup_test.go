package jobs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

func TestNewFeedWarmupTask(t *testing.T) {
	task, err := NewFeedWarmupTask()
	require.NoError(t, err)
	require.Equal(t, TaskFeedWarmup, task.Type())

	var payload FeedWarmupPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	require.NotEmpty(t, payload.RequestID)
}

func TestFeedWarmupJobSkipsBadPayload(t *testing.T) {
	job := NewFeedWarmupJob(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := job.Handle(context.Background(), asynq.NewTask(TaskFeedWarmup, []byte("{broken")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}
