package handlers

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/learnanyskills/backend/internal/models"
)

// mockCatalogService is a mock implementation of CatalogService
type mockCatalogService struct {
	courses []models.CourseListItem
	course  *models.CourseDetailResponse
	lessons *models.CourseLessonsResponse
	lesson  *models.LessonDetailResponse
	err     error
}

func (m *mockCatalogService) ListCourses(ctx context.Context) ([]models.CourseListItem, error) {
	return m.courses, m.err
}

func (m *mockCatalogService) GetCourse(ctx context.Context, id int) (*models.CourseDetailResponse, error) {
	return m.course, m.err
}

func (m *mockCatalogService) GetCourseLessons(ctx context.Context, id int) (*models.CourseLessonsResponse, error) {
	return m.lessons, m.err
}

func (m *mockCatalogService) GetLesson(ctx context.Context, id int) (*models.LessonDetailResponse, error) {
	return m.lesson, m.err
}

// mockProgressService is a mock implementation of ProgressService and UserProgressService
type mockProgressService struct {
	progress   []models.CourseProgress
	update     *models.ProgressResponse
	err        error
	lastUserID string
	lastReq    models.UpdateProgressRequest
}

func (m *mockProgressService) GetUserProgress(ctx context.Context, userID string) ([]models.CourseProgress, error) {
	m.lastUserID = userID
	return m.progress, m.err
}

func (m *mockProgressService) UpdateProgress(ctx context.Context, lessonID int, req models.UpdateProgressRequest) (*models.ProgressResponse, error) {
	m.lastReq = req
	return m.update, m.err
}

// mockGenerationService is a mock implementation of GenerationService
type mockGenerationService struct {
	generated  *models.GeneratedLesson
	cached     *models.CachedLesson
	overview   *models.LessonOverview
	err        error
	lastUserID string
	calls      int
}

func (m *mockGenerationService) GenerateOrFetch(ctx context.Context, lessonID int, userID string) (*models.GeneratedLesson, error) {
	m.calls++
	m.lastUserID = userID
	return m.generated, m.err
}

func (m *mockGenerationService) GetCachedContent(ctx context.Context, lessonID int) (*models.CachedLesson, error) {
	m.calls++
	return m.cached, m.err
}

func (m *mockGenerationService) GenerateOverview(ctx context.Context, lessonID int) (*models.LessonOverview, error) {
	m.calls++
	return m.overview, m.err
}

// mockPinger is a mock implementation of DatabasePinger and RedisPinger
type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}

func (m *mockPinger) Ping(ctx context.Context) *redis.StatusCmd {
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	return redis.NewStatusResult("PONG", nil)
}

var errDatabase = errors.New("database connection failed")
