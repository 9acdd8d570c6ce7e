package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for course and lesson browsing.
type CatalogService interface {
	// Method ListCourses retrieve all active courses with their active lesson counts.
	//
	// An empty catalog is returned as an empty list. If some error occurs during data retrieve, the error will be returned together with "nil" value.
	ListCourses(ctx context.Context) ([]models.CourseListItem, error)
	// Method GetCourse retrieve an active course together with its active lessons ordered by lesson number.
	//
	// If the course does not exist or is not active, services.ErrNotFound is returned.
	GetCourse(ctx context.Context, id int) (*models.CourseDetailResponse, error)
	// Method GetCourseLessons retrieve the course title and the active lessons of a course.
	//
	// Please reference GetCourse method for more information about error values.
	GetCourseLessons(ctx context.Context, id int) (*models.CourseLessonsResponse, error)
	// Method GetLesson retrieve an active lesson with its parent course and content summary when content was generated.
	GetLesson(ctx context.Context, id int) (*models.LessonDetailResponse, error)
}

// UserProgressService is the interface that wraps the progress aggregation used by the course handler.
type UserProgressService interface {
	// Method GetUserProgress retrieve a user's progress grouped by course.
	GetUserProgress(ctx context.Context, userID string) ([]models.CourseProgress, error)
}

// CourseListResponse represents the body of GET /api/courses
type CourseListResponse struct {
	Success bool                    `json:"success"`
	Courses []models.CourseListItem `json:"courses"`
}

// CourseResponse represents the body of GET /api/courses/{id}
type CourseResponse struct {
	Success bool                         `json:"success"`
	Course  *models.CourseDetailResponse `json:"course"`
}

// CourseLessonsResponse represents the body of GET /api/courses/{id}/lessons
type CourseLessonsResponse struct {
	Success bool `json:"success"`
	*models.CourseLessonsResponse
}

// LessonResponse represents the body of GET /api/lessons/{id}
type LessonResponse struct {
	Success bool                         `json:"success"`
	Lesson  *models.LessonDetailResponse `json:"lesson"`
}

// UserProgressResponse represents the body of GET /api/user/{user_id}/progress
type UserProgressResponse struct {
	Success  bool                    `json:"success"`
	UserID   string                  `json:"user_id"`
	Progress []models.CourseProgress `json:"progress"`
}

// CourseHandler handles HTTP requests for the course catalog
type CourseHandler struct {
	BaseHandler
	catalog  CatalogService
	progress UserProgressService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(catalog CatalogService, progress UserProgressService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		catalog:     catalog,
		progress:    progress,
		BaseHandler: newBaseHandler(logger),
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.ListCourses)
			r.Get("/{id}", h.GetCourse)
			r.Get("/{id}/lessons", h.GetCourseLessons)
		})
		r.Get("/lessons/{id}", h.GetLesson)
		r.Get("/user/{user_id}/progress", h.GetUserProgress)
	})
}

// ListCourses handles GET /api/courses
// @Summary List courses
// @Description Get all active courses with their lesson counts
// @Tags courses
// @Produce json
// @Success 200 {object} CourseListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalog.ListCourses(r.Context())
	if err != nil {
		h.logger.Error("failed to list courses", zap.Error(err))
		h.respondServiceError(w, err, "Course not found", "Error retrieving courses")
		return
	}

	h.respondJSON(w, http.StatusOK, CourseListResponse{Success: true, Courses: courses})
}

// GetCourse handles GET /api/courses/{id}
// @Summary Get course
// @Description Get a course with its overview and ordered lessons
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} CourseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/courses/{id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.catalog.GetCourse(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Course not found", "Error retrieving course details")
		return
	}

	h.respondJSON(w, http.StatusOK, CourseResponse{Success: true, Course: course})
}

// GetCourseLessons handles GET /api/courses/{id}/lessons
// @Summary Get course lessons
// @Description Get the active lessons of a course ordered by lesson number
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} CourseLessonsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/courses/{id}/lessons [get]
func (h *CourseHandler) GetCourseLessons(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.catalog.GetCourseLessons(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Course not found", "Error retrieving lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, CourseLessonsResponse{Success: true, CourseLessonsResponse: lessons})
}

// GetLesson handles GET /api/lessons/{id}
// @Summary Get lesson
// @Description Get a lesson with its course and generated content summary
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} LessonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/lessons/{id} [get]
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.catalog.GetLesson(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Error retrieving lesson details")
		return
	}

	h.respondJSON(w, http.StatusOK, LessonResponse{Success: true, Lesson: lesson})
}

// GetUserProgress handles GET /api/user/{user_id}/progress
// @Summary Get user progress
// @Description Get a user's progress grouped by course
// @Tags progress
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} UserProgressResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/user/{user_id}/progress [get]
func (h *CourseHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	progress, err := h.progress.GetUserProgress(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, err, "User not found", "Error retrieving user progress")
		return
	}

	h.respondJSON(w, http.StatusOK, UserProgressResponse{Success: true, UserID: userID, Progress: progress})
}
