package services

import (
	"context"
	"sync"

	"github.com/learnanyskills/backend/internal/llm"
	"github.com/learnanyskills/backend/internal/models"
)

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	courses []models.CourseListItem
	course  *models.Course
	err     error
}

func (m *mockCourseRepository) GetAllActive(ctx context.Context) ([]models.CourseListItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCourseRepository) GetActiveByID(ctx context.Context, id int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.course, nil
}

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lesson     *models.LessonWithCourse
	lessons    []models.LessonListItem
	err        error
	lessonsErr error
}

func (m *mockLessonRepository) GetActiveByID(ctx context.Context, id int) (*models.LessonWithCourse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

func (m *mockLessonRepository) GetActiveByCourseID(ctx context.Context, courseID int) ([]models.LessonListItem, error) {
	if m.lessonsErr != nil {
		return nil, m.lessonsErr
	}
	return m.lessons, nil
}

// mockLessonContentRepository is a mock implementation of LessonContentRepository
type mockLessonContentRepository struct {
	content *models.LessonContent
	err     error
}

func (m *mockLessonContentRepository) GetByLessonID(ctx context.Context, lessonID int) (*models.LessonContent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.content, nil
}

// mockGenerator is a mock implementation of ContentGenerator
type mockGenerator struct {
	response string
	err      error
	calls    int
	lastReq  llm.CompletionRequest
	ctxErr   error
}

func (m *mockGenerator) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	m.calls++
	m.lastReq = req
	m.ctxErr = ctx.Err()
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// mockDispatcher is a mock implementation of JobDispatcher
type mockDispatcher struct {
	mu           sync.Mutex
	contentJobs  []models.ContentCacheJob
	progressJobs []models.ProgressInitJob
	err          error
}

func (m *mockDispatcher) EnqueueContentCache(ctx context.Context, job models.ContentCacheJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.contentJobs = append(m.contentJobs, job)
	return nil
}

func (m *mockDispatcher) EnqueueProgressInit(ctx context.Context, job models.ProgressInitJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.progressJobs = append(m.progressJobs, job)
	return nil
}

// mockUserProgressRepository is a mock implementation of UserProgressRepository
//
// It keeps a single row in memory so that consecutive updates observe each other.
type mockUserProgressRepository struct {
	row     *models.UserProgress
	records []models.UserProgressRecord
	err     error
}

func (m *mockUserProgressRepository) UpdateInTx(ctx context.Context, userID string, lessonID, courseID int, apply func(*models.UserProgress)) (*models.UserProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.row == nil {
		m.row = &models.UserProgress{ID: 1, UserID: userID, LessonID: lessonID, CourseID: courseID}
	}
	updated := *m.row
	apply(&updated)
	m.row = &updated
	return &updated, nil
}

func (m *mockUserProgressRepository) GetByUserID(ctx context.Context, userID string) ([]models.UserProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}
