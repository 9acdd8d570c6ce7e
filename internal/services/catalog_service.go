package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for Courses table data access
type CourseRepository interface {
	// Method GetAllActive retrieve all active courses with the number of their active lessons.
	//
	// An empty, non-nil slice is returned for an empty catalog.
	GetAllActive(ctx context.Context) ([]models.CourseListItem, error)
	// Method GetActiveByID retrieve an active course by its ID.
	//
	// If the course does not exist or is archived, an error wrapping models.ErrNotFound is returned together with "nil" value.
	GetActiveByID(ctx context.Context, id int) (*models.Course, error)
}

type catalogService struct {
	courseRepo CourseRepository
	lessonRepo LessonRepository
	logger     *zap.Logger
}

// NewCatalogService creates a new course and lesson query service
func NewCatalogService(courseRepo CourseRepository, lessonRepo LessonRepository, logger *zap.Logger) *catalogService {
	return &catalogService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// ListCourses retrieves all active courses with their lesson counts
func (s *catalogService) ListCourses(ctx context.Context) ([]models.CourseListItem, error) {
	courses, err := s.courseRepo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("failed to get courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	if courses == nil {
		courses = []models.CourseListItem{}
	}

	return courses, nil
}

// GetCourse retrieves an active course with its active lessons ordered by lesson number
func (s *catalogService) GetCourse(ctx context.Context, id int) (*models.CourseDetailResponse, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.getLessons(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.CourseDetailResponse{
		Course:  *course,
		Lessons: lessons,
	}, nil
}

// GetCourseLessons retrieves the course title and the active lessons of a course
func (s *catalogService) GetCourseLessons(ctx context.Context, id int) (*models.CourseLessonsResponse, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.getLessons(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.CourseLessonsResponse{
		CourseTitle: course.Title,
		Lessons:     lessons,
	}, nil
}

// GetLesson retrieves an active lesson with its course reference and content flags
func (s *catalogService) GetLesson(ctx context.Context, id int) (*models.LessonDetailResponse, error) {
	lesson, err := s.lessonRepo.GetActiveByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("failed to get lesson", zap.Int("lesson_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return &models.LessonDetailResponse{
		ID:                 lesson.ID,
		Title:              lesson.Title,
		Description:        lesson.Description,
		LessonNumber:       lesson.LessonNumber,
		EstimatedDuration:  lesson.EstimatedDuration,
		LearningObjectives: lesson.LearningObjectives,
		Course: models.CourseShortInfo{
			ID:    lesson.CourseID,
			Title: lesson.CourseTitle,
		},
		HasGeneratedContent: lesson.ContentSummary != nil,
		ContentSummary:      lesson.ContentSummary,
	}, nil
}

func (s *catalogService) getCourse(ctx context.Context, id int) (*models.Course, error) {
	course, err := s.courseRepo.GetActiveByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("failed to get course", zap.Int("course_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (s *catalogService) getLessons(ctx context.Context, courseID int) ([]models.LessonListItem, error) {
	lessons, err := s.lessonRepo.GetActiveByCourseID(ctx, courseID)
	if err != nil {
		s.logger.Error("failed to get course lessons", zap.Int("course_id", courseID), zap.Error(err))
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}
	if lessons == nil {
		lessons = []models.LessonListItem{}
	}
	return lessons, nil
}
