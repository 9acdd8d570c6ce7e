package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/learnanyskills/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProgressService(lessons *mockLessonRepository, progress *mockUserProgressRepository, now time.Time) *progressService {
	logger, _ := zap.NewDevelopment()
	svc := NewProgressService(lessons, progress, logger)
	svc.now = func() time.Time { return now }
	return svc
}

func TestProgressService_UpdateProgress(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		existing      *models.UserProgress
		request       models.UpdateProgressRequest
		lessonRepo    *mockLessonRepository
		progressErr   error
		expectedError bool
		notFound      bool
		expected      *models.ProgressResponse
	}{
		{
			name:       "new row",
			request:    models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: 40, TimeSpentMinutes: 10},
			lessonRepo: &mockLessonRepository{lesson: testLesson()},
			expected:   &models.ProgressResponse{LessonID: 2, CompletionPercentage: 40, TimeSpentMinutes: 10},
		},
		{
			name:       "percentage above range is clamped",
			request:    models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: 150},
			lessonRepo: &mockLessonRepository{lesson: testLesson()},
			expected:   &models.ProgressResponse{LessonID: 2, CompletionPercentage: 100},
		},
		{
			name:       "percentage below range is clamped",
			request:    models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: -20},
			lessonRepo: &mockLessonRepository{lesson: testLesson()},
			expected:   &models.ProgressResponse{LessonID: 2, CompletionPercentage: 0},
		},
		{
			name:       "time accumulates",
			existing:   &models.UserProgress{ID: 1, UserID: "u1", LessonID: 2, CourseID: 1, CompletionPercentage: 40, TimeSpentMinutes: 15},
			request:    models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: 60, TimeSpentMinutes: 5},
			lessonRepo: &mockLessonRepository{lesson: testLesson()},
			expected:   &models.ProgressResponse{LessonID: 2, CompletionPercentage: 60, TimeSpentMinutes: 20},
		},
		{
			name:       "negative time delta is ignored",
			existing:   &models.UserProgress{ID: 1, UserID: "u1", LessonID: 2, CourseID: 1, TimeSpentMinutes: 15},
			request:    models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: 60, TimeSpentMinutes: -30},
			lessonRepo: &mockLessonRepository{lesson: testLesson()},
			expected:   &models.ProgressResponse{LessonID: 2, CompletionPercentage: 60, TimeSpentMinutes: 15},
		},
		{
			name:          "lesson not found",
			request:       models.UpdateProgressRequest{UserID: "u1"},
			lessonRepo:    &mockLessonRepository{err: fmt.Errorf("lesson %w", models.ErrNotFound)},
			expectedError: true,
			notFound:      true,
		},
		{
			name:          "transaction failure",
			request:       models.UpdateProgressRequest{UserID: "u1"},
			lessonRepo:    &mockLessonRepository{lesson: testLesson()},
			progressErr:   errors.New("deadlock found"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserProgressRepository{row: tt.existing, err: tt.progressErr}
			svc := newTestProgressService(tt.lessonRepo, repo, now)

			result, err := svc.UpdateProgress(context.Background(), 2, tt.request)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
				assert.Equal(t, now, repo.row.LastAccessed)
				assert.Equal(t, 1, repo.row.CourseID)
			}
		})
	}
}

func TestProgressService_UpdateProgress_CompletedAtStampedOnce(t *testing.T) {
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockUserProgressRepository{}
	svc := newTestProgressService(&mockLessonRepository{lesson: testLesson()}, repo, first)

	_, err := svc.UpdateProgress(context.Background(), 2, models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: 100, IsCompleted: true})
	require.NoError(t, err)
	require.NotNil(t, repo.row.CompletedAt)
	assert.Equal(t, first, *repo.row.CompletedAt)

	svc.now = func() time.Time { return first.Add(time.Hour) }
	_, err = svc.UpdateProgress(context.Background(), 2, models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: 100, IsCompleted: true})
	require.NoError(t, err)
	assert.Equal(t, first, *repo.row.CompletedAt)

	// Un-completing keeps the original stamp
	_, err = svc.UpdateProgress(context.Background(), 2, models.UpdateProgressRequest{UserID: "u1", CompletionPercentage: 50, IsCompleted: false})
	require.NoError(t, err)
	assert.False(t, repo.row.IsCompleted)
	require.NotNil(t, repo.row.CompletedAt)
	assert.Equal(t, first, *repo.row.CompletedAt)
}

func TestProgressService_UpdateProgress_TimeNeverDecreases(t *testing.T) {
	repo := &mockUserProgressRepository{}
	svc := newTestProgressService(&mockLessonRepository{lesson: testLesson()}, repo, time.Now())

	previous := 0
	for _, delta := range []int{5, -3, 0, 12, -100, 1} {
		result, err := svc.UpdateProgress(context.Background(), 2, models.UpdateProgressRequest{UserID: "u1", TimeSpentMinutes: delta})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.TimeSpentMinutes, previous)
		previous = result.TimeSpentMinutes
	}
	assert.Equal(t, 18, previous)
}

func TestProgressService_GetUserProgress(t *testing.T) {
	now := time.Now()
	record := func(courseID int, courseTitle string, lessonID, pct, minutes int) models.UserProgressRecord {
		return models.UserProgressRecord{
			UserProgress: models.UserProgress{
				UserID:               "u1",
				LessonID:             lessonID,
				CourseID:             courseID,
				CompletionPercentage: pct,
				TimeSpentMinutes:     minutes,
				LastAccessed:         now,
			},
			CourseTitle: courseTitle,
			LessonTitle: fmt.Sprintf("Lesson %d", lessonID),
		}
	}

	tests := []struct {
		name          string
		repo          *mockUserProgressRepository
		expectedError bool
		validate      func(*testing.T, []models.CourseProgress)
	}{
		{
			name: "mean of two lessons",
			repo: &mockUserProgressRepository{records: []models.UserProgressRecord{
				record(1, "Python", 1, 40, 10),
				record(1, "Python", 2, 60, 20),
			}},
			validate: func(t *testing.T, progress []models.CourseProgress) {
				require.Len(t, progress, 1)
				assert.Equal(t, 50.0, progress[0].TotalCompletion)
				assert.Equal(t, 30, progress[0].TotalTimeSpent)
				assert.Len(t, progress[0].Lessons, 2)
			},
		},
		{
			name: "grouped by course in first-seen order and rounded to one decimal",
			repo: &mockUserProgressRepository{records: []models.UserProgressRecord{
				record(2, "SQL", 6, 100, 5),
				record(1, "Python", 1, 10, 1),
				record(2, "SQL", 7, 0, 5),
				record(2, "SQL", 8, 0, 5),
			}},
			validate: func(t *testing.T, progress []models.CourseProgress) {
				require.Len(t, progress, 2)
				assert.Equal(t, 2, progress[0].CourseID)
				assert.Equal(t, "SQL", progress[0].CourseTitle)
				assert.Equal(t, 33.3, progress[0].TotalCompletion)
				assert.Equal(t, 15, progress[0].TotalTimeSpent)
				assert.Equal(t, 1, progress[1].CourseID)
				assert.Equal(t, 10.0, progress[1].TotalCompletion)
			},
		},
		{
			name: "no progress",
			repo: &mockUserProgressRepository{},
			validate: func(t *testing.T, progress []models.CourseProgress) {
				assert.NotNil(t, progress)
				assert.Empty(t, progress)
			},
		},
		{
			name:          "repository error",
			repo:          &mockUserProgressRepository{err: errors.New("database connection failed")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestProgressService(&mockLessonRepository{}, tt.repo, now)

			progress, err := svc.GetUserProgress(context.Background(), "u1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, progress)
			} else {
				require.NoError(t, err)
				tt.validate(t, progress)
			}
		})
	}
}

func TestClampPercentage(t *testing.T) {
	for input, expected := range map[int]int{-1: 0, 0: 0, 55: 55, 100: 100, 101: 100} {
		assert.Equal(t, expected, clampPercentage(input), "input %d", input)
	}
}
