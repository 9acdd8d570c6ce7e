package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/learnanyskills/backend/internal/models"
	"github.com/learnanyskills/backend/internal/services"
	"go.uber.org/zap"
)

const noCachedContentMessage = "No cached content available. Please generate lesson content first."

// GenerationService is the interface that wraps methods for AI lesson content.
type GenerationService interface {
	// Method GenerateOrFetch return the cached content of a lesson or generate it with the configured model.
	//
	// Freshly generated content is persisted in the background; a non-anonymous "userID" also gets a 0% progress row.
	// If the lesson does not exist, services.ErrNotFound is returned. A failed model call is returned as *services.GenerationError.
	GenerateOrFetch(ctx context.Context, lessonID int, userID string) (*models.GeneratedLesson, error)
	// Method GetCachedContent return the stored content of a lesson without calling the model.
	//
	// If nothing was generated yet, services.ErrContentNotGenerated is returned.
	GetCachedContent(ctx context.Context, lessonID int) (*models.CachedLesson, error)
	// Method GenerateOverview generate a short lesson introduction, falling back to a template when the model fails.
	GenerateOverview(ctx context.Context, lessonID int) (*models.LessonOverview, error)
}

// ProgressService is the interface that wraps the per-lesson progress update.
type ProgressService interface {
	// Method UpdateProgress record the completion, time spent and completed flag of a user on a lesson.
	UpdateProgress(ctx context.Context, lessonID int, req models.UpdateProgressRequest) (*models.ProgressResponse, error)
}

// OverviewResponse represents the body of POST /api/ai/lessons/{id}/overview
type OverviewResponse struct {
	Success bool `json:"success"`
	*models.LessonOverview
}

// GenerateResponse represents the body of POST /api/ai/lessons/{id}/generate
type GenerateResponse struct {
	Success bool `json:"success"`
	*models.GeneratedLesson
}

// CachedContentResponse represents the body of GET /api/ai/lessons/{id}/content
type CachedContentResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message,omitempty"`
	Lesson      *models.LessonRef  `json:"lesson,omitempty"`
	Content     *models.LessonBody `json:"content,omitempty"`
	HasContent  bool               `json:"has_content"`
	GeneratedAt *time.Time         `json:"generated_at,omitempty"`
}

// ProgressUpdateResponse represents the body of POST /api/ai/lessons/{id}/progress
type ProgressUpdateResponse struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message"`
	Progress *models.ProgressResponse `json:"progress"`
}

// AIHandler handles HTTP requests for AI lesson content and progress updates
type AIHandler struct {
	BaseHandler
	generation GenerationService
	progress   ProgressService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(generation GenerationService, progress ProgressService, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		generation:  generation,
		progress:    progress,
		BaseHandler: newBaseHandler(logger),
	}
}

// RegisterRoutes registers all AI handler routes
func (h *AIHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/ai/lessons/{id}", func(r chi.Router) {
		r.Post("/overview", h.GenerateOverview)
		r.Post("/generate", h.GenerateContent)
		r.Get("/content", h.GetContent)
		r.Post("/progress", h.UpdateProgress)
	})
}

// GenerateOverview handles POST /api/ai/lessons/{id}/overview
// @Summary Generate lesson overview
// @Description Generate a short engaging introduction of a lesson; a template is used when the model is unavailable
// @Tags ai
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param request body models.GenerateLessonRequest false "Caller"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ai/lessons/{id}/overview [post]
func (h *AIHandler) GenerateOverview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.GenerateLessonRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.generation.GenerateOverview(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Error generating lesson overview")
		return
	}

	h.respondJSON(w, http.StatusOK, OverviewResponse{Success: true, LessonOverview: overview})
}

// GenerateContent handles POST /api/ai/lessons/{id}/generate
// @Summary Generate lesson content
// @Description Return cached lesson content or generate it with the AI model
// @Tags ai
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param request body models.GenerateLessonRequest false "Caller"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ai/lessons/{id}/generate [post]
func (h *AIHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := models.GenerateLessonRequest{UserID: models.AnonymousUserID}
	if err := h.decodeBody(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.generation.GenerateOrFetch(r.Context(), id, req.UserID)
	if err != nil {
		h.logger.Error("failed to generate lesson content", zap.Int("lesson_id", id), zap.Error(err))
		h.respondServiceError(w, err, "Lesson not found", "Error generating lesson content")
		return
	}

	h.respondJSON(w, http.StatusOK, GenerateResponse{Success: true, GeneratedLesson: lesson})
}

// GetContent handles GET /api/ai/lessons/{id}/content
// @Summary Get cached lesson content
// @Description Return stored lesson content without calling the AI model
// @Tags ai
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} CachedContentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ai/lessons/{id}/content [get]
func (h *AIHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cached, err := h.generation.GetCachedContent(r.Context(), id)
	if errors.Is(err, services.ErrContentNotGenerated) {
		h.respondJSON(w, http.StatusOK, CachedContentResponse{Success: false, Message: noCachedContentMessage})
		return
	}
	if err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Error retrieving lesson content")
		return
	}

	h.respondJSON(w, http.StatusOK, CachedContentResponse{
		Success:     true,
		Lesson:      &cached.Lesson,
		Content:     &cached.Content,
		HasContent:  true,
		GeneratedAt: &cached.GeneratedAt,
	})
}

// UpdateProgress handles POST /api/ai/lessons/{id}/progress
// @Summary Update lesson progress
// @Description Record completion percentage, time spent and completion of a lesson for a user
// @Tags progress
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param request body models.UpdateProgressRequest true "Progress update"
// @Success 200 {object} ProgressUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ai/lessons/{id}/progress [post]
func (h *AIHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateProgressRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	progress, err := h.progress.UpdateProgress(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Error updating progress")
		return
	}

	h.respondJSON(w, http.StatusOK, ProgressUpdateResponse{
		Success:  true,
		Message:  "Progress updated successfully",
		Progress: progress,
	})
}
