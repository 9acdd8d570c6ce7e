package jobs

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

// ContentCacheRepository defines the write access the worker needs for lesson content
type ContentCacheRepository interface {
	// Upsert stores the content of a lesson, overwriting an existing row for the same lesson
	//
	// If some error occurs during data write, the error will be returned.
	Upsert(ctx context.Context, content *models.LessonContent) error
}

// ProgressInitRepository defines the write access the worker needs for user progress
type ProgressInitRepository interface {
	// CreateIfAbsent inserts a 0% progress row unless the (user, lesson) pair already has one
	//
	// Returns true when a row was created.
	CreateIfAbsent(ctx context.Context, userID string, lessonID, courseID int) (bool, error)
}

// Worker executes background jobs against the repositories
type Worker struct {
	contentRepo  ContentCacheRepository
	progressRepo ProgressInitRepository
	logger       *zap.Logger
}

// NewWorker creates a new worker instance
func NewWorker(contentRepo ContentCacheRepository, progressRepo ProgressInitRepository, logger *zap.Logger) *Worker {
	return &Worker{
		contentRepo:  contentRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// CacheContent upserts the generated content of a lesson
func (w *Worker) CacheContent(ctx context.Context, job models.ContentCacheJob) error {
	if err := w.contentRepo.Upsert(ctx, job.ToLessonContent()); err != nil {
		w.logger.Error("Error caching lesson content", zap.Int("lesson_id", job.LessonID), zap.Error(err))
		return err
	}

	w.logger.Info("Lesson content cached", zap.Int("lesson_id", job.LessonID))
	return nil
}

// InitProgress creates the 0% progress row of a (user, lesson) pair if it does not exist
func (w *Worker) InitProgress(ctx context.Context, job models.ProgressInitJob) error {
	created, err := w.progressRepo.CreateIfAbsent(ctx, job.UserID, job.LessonID, job.CourseID)
	if err != nil {
		w.logger.Error("Error initializing user progress",
			zap.String("user_id", job.UserID),
			zap.Int("lesson_id", job.LessonID),
			zap.Error(err),
		)
		return err
	}

	if created {
		w.logger.Info("User progress initialized", zap.String("user_id", job.UserID), zap.Int("lesson_id", job.LessonID))
	}
	return nil
}

// HandleContentCache handles lesson_content:cache tasks
//
// Failures are logged and the task is dropped, a nil result keeps it out of the archive.
func (w *Worker) HandleContentCache(ctx context.Context, t *asynq.Task) error {
	var job models.ContentCacheJob
	if err := json.Unmarshal(t.Payload(), &job); err != nil {
		w.logger.Error("Error parsing content cache job", zap.String("type", t.Type()), zap.Error(err))
		return nil
	}
	_ = w.CacheContent(ctx, job)
	return nil
}

// HandleProgressInit handles user_progress:init tasks
func (w *Worker) HandleProgressInit(ctx context.Context, t *asynq.Task) error {
	var job models.ProgressInitJob
	if err := json.Unmarshal(t.Payload(), &job); err != nil {
		w.logger.Error("Error parsing progress init job", zap.String("type", t.Type()), zap.Error(err))
		return nil
	}
	_ = w.InitProgress(ctx, job)
	return nil
}

// Register registers the task handlers on an asynq mux
func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeContentCache, w.HandleContentCache)
	mux.HandleFunc(TypeProgressInit, w.HandleProgressInit)
}
