// Package jobs runs fire-and-forget persistence work outside the request path
package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/learnanyskills/backend/internal/models"
)

const (
	// TypeContentCache upserts generated lesson content
	TypeContentCache = "lesson_content:cache"
	// TypeProgressInit creates a 0% progress row when none exists
	TypeProgressInit = "user_progress:init"

	// QueueName is the asynq queue background jobs are enqueued on
	QueueName = "background"
)

// NewContentCacheTask builds the asynq task for a content cache job
//
// Tasks are never retried.
func NewContentCacheTask(job models.ContentCacheJob) (*asynq.Task, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to encode content cache job: %w", err)
	}
	return asynq.NewTask(TypeContentCache, payload, asynq.MaxRetry(0), asynq.Queue(QueueName)), nil
}

// NewProgressInitTask builds the asynq task for a progress init job
func NewProgressInitTask(job models.ProgressInitJob) (*asynq.Task, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to encode progress init job: %w", err)
	}
	return asynq.NewTask(TypeProgressInit, payload, asynq.MaxRetry(0), asynq.Queue(QueueName)), nil
}
