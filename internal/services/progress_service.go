package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

// UserProgressRepository is the interface that wraps methods for User_progress table data access
type UserProgressRepository interface {
	// Method UpdateInTx lock the (user, lesson) progress row inside a transaction, creating it at 0% when absent,
	// run "apply" on it and write it back before commit.
	//
	// Any failure rolls the transaction back and is returned together with "nil" value.
	UpdateInTx(ctx context.Context, userID string, lessonID, courseID int, apply func(*models.UserProgress)) (*models.UserProgress, error)
	// Method GetByUserID retrieve all progress rows of a user joined with course and lesson titles, ordered by row ID.
	GetByUserID(ctx context.Context, userID string) ([]models.UserProgressRecord, error)
}

type progressService struct {
	lessonRepo   LessonRepository
	progressRepo UserProgressRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewProgressService creates a new progress tracking service
func NewProgressService(lessonRepo LessonRepository, progressRepo UserProgressRepository, logger *zap.Logger) *progressService {
	return &progressService{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// UpdateProgress records a user's progress on a lesson
//
// The percentage is clamped into [0,100], negative time deltas are ignored and
// completed_at is stamped only on the first transition to completed.
func (s *progressService) UpdateProgress(ctx context.Context, lessonID int, req models.UpdateProgressRequest) (*models.ProgressResponse, error) {
	lesson, err := s.lessonRepo.GetActiveByID(ctx, lessonID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("failed to get lesson", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	now := s.now()
	progress, err := s.progressRepo.UpdateInTx(ctx, req.UserID, lessonID, lesson.CourseID, func(p *models.UserProgress) {
		applyProgressUpdate(p, req, now)
	})
	if err != nil {
		s.logger.Error("failed to update progress",
			zap.Int("lesson_id", lessonID),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	return &models.ProgressResponse{
		LessonID:             lessonID,
		CompletionPercentage: progress.CompletionPercentage,
		TimeSpentMinutes:     progress.TimeSpentMinutes,
		IsCompleted:          progress.IsCompleted,
	}, nil
}

// GetUserProgress aggregates a user's progress per course in first-seen order
//
// TotalCompletion is the unweighted mean of lesson percentages rounded to one decimal.
func (s *progressService) GetUserProgress(ctx context.Context, userID string) ([]models.CourseProgress, error) {
	records, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user progress", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}

	courses := make([]models.CourseProgress, 0)
	index := make(map[int]int)
	for _, record := range records {
		i, ok := index[record.CourseID]
		if !ok {
			i = len(courses)
			index[record.CourseID] = i
			courses = append(courses, models.CourseProgress{
				CourseID:    record.CourseID,
				CourseTitle: record.CourseTitle,
				Lessons:     []models.LessonProgressItem{},
			})
		}

		course := &courses[i]
		course.Lessons = append(course.Lessons, models.LessonProgressItem{
			LessonID:             record.LessonID,
			LessonTitle:          record.LessonTitle,
			IsCompleted:          record.IsCompleted,
			CompletionPercentage: record.CompletionPercentage,
			TimeSpentMinutes:     record.TimeSpentMinutes,
			LastAccessed:         record.LastAccessed,
		})
		course.TotalTimeSpent += record.TimeSpentMinutes
	}

	for i := range courses {
		courses[i].TotalCompletion = averageCompletion(courses[i].Lessons)
	}

	return courses, nil
}

func applyProgressUpdate(p *models.UserProgress, req models.UpdateProgressRequest, now time.Time) {
	p.CompletionPercentage = clampPercentage(req.CompletionPercentage)
	p.TimeSpentMinutes += max(req.TimeSpentMinutes, 0)
	p.IsCompleted = req.IsCompleted
	p.LastAccessed = now
	if req.IsCompleted && p.CompletedAt == nil {
		completedAt := now
		p.CompletedAt = &completedAt
	}
}

func clampPercentage(p int) int {
	return min(max(p, 0), 100)
}

func averageCompletion(lessons []models.LessonProgressItem) float64 {
	if len(lessons) == 0 {
		return 0
	}
	total := 0
	for _, lesson := range lessons {
		total += lesson.CompletionPercentage
	}
	mean := float64(total) / float64(len(lessons))
	return math.Round(mean*10) / 10
}
