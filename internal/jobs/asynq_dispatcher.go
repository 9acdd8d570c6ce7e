package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

// AsynqDispatcher enqueues background jobs on Redis through asynq
type AsynqDispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewAsynqDispatcher creates a new Redis-backed dispatcher
func NewAsynqDispatcher(client *asynq.Client, logger *zap.Logger) *AsynqDispatcher {
	return &AsynqDispatcher{
		client: client,
		logger: logger,
	}
}

// EnqueueContentCache enqueues a lesson_content:cache task
func (d *AsynqDispatcher) EnqueueContentCache(ctx context.Context, job models.ContentCacheJob) error {
	task, err := NewContentCacheTask(job)
	if err != nil {
		return err
	}
	return d.enqueue(ctx, task)
}

// EnqueueProgressInit enqueues a user_progress:init task
func (d *AsynqDispatcher) EnqueueProgressInit(ctx context.Context, job models.ProgressInitJob) error {
	task, err := NewProgressInitTask(job)
	if err != nil {
		return err
	}
	return d.enqueue(ctx, task)
}

func (d *AsynqDispatcher) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}
	d.logger.Debug("Task enqueued", zap.String("type", task.Type()), zap.String("task_id", info.ID))
	return nil
}

// NewServer creates the asynq server that consumes the background queue
func NewServer(opt asynq.RedisClientOpt, concurrency int, logger *zap.Logger) *asynq.Server {
	return asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueName: 1,
		},
		Logger: logger.Sugar(),
	})
}
