package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrQueueFull is returned when the in-process queue has no free slot
	ErrQueueFull = errors.New("background queue is full")
	// ErrDispatcherClosed is returned for jobs enqueued after Shutdown
	ErrDispatcherClosed = errors.New("background dispatcher is closed")
)

const localJobTimeout = 30 * time.Second

type localJob struct {
	name string
	run  func(ctx context.Context) error
}

// LocalDispatcher runs background jobs on an in-process worker pool
//
// Jobs are dropped when the queue is full; nothing survives a process restart.
type LocalDispatcher struct {
	worker  *Worker
	queue   chan localJob
	workers int
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewLocalDispatcher creates a dispatcher with the given pool size and queue capacity
func NewLocalDispatcher(worker *Worker, workers, queueSize int, logger *zap.Logger) *LocalDispatcher {
	return &LocalDispatcher{
		worker:  worker,
		queue:   make(chan localJob, queueSize),
		workers: workers,
		logger:  logger,
	}
}

// Start launches the worker goroutines
func (d *LocalDispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.loop()
	}
}

// EnqueueContentCache schedules a content upsert
func (d *LocalDispatcher) EnqueueContentCache(ctx context.Context, job models.ContentCacheJob) error {
	return d.enqueue(localJob{
		name: TypeContentCache,
		run: func(ctx context.Context) error {
			return d.worker.CacheContent(ctx, job)
		},
	})
}

// EnqueueProgressInit schedules a progress row initialization
func (d *LocalDispatcher) EnqueueProgressInit(ctx context.Context, job models.ProgressInitJob) error {
	return d.enqueue(localJob{
		name: TypeProgressInit,
		run: func(ctx context.Context) error {
			return d.worker.InitProgress(ctx, job)
		},
	})
}

// Shutdown stops accepting jobs and waits for queued ones to finish or ctx to expire
func (d *LocalDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *LocalDispatcher) enqueue(job localJob) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- job:
		return nil
	default:
		d.logger.Warn("Background queue full, dropping job", zap.String("type", job.name))
		return ErrQueueFull
	}
}

func (d *LocalDispatcher) loop() {
	defer d.wg.Done()
	for job := range d.queue {
		d.run(job)
	}
}

func (d *LocalDispatcher) run(job localJob) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Background job panicked", zap.String("type", job.name), zap.Any("error", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), localJobTimeout)
	defer cancel()

	// Failures are already logged by the worker and are not retried
	_ = job.run(ctx)
}
