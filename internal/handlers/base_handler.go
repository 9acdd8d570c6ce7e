package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/learnanyskills/backend/internal/services"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

type BaseHandler struct {
	logger   *zap.Logger
	validate *validator.Validate
}

func newBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger, validate: validator.New()}
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, ErrorResponse{Success: false, Detail: message})
}

// respondServiceError maps a service error onto a status code
//
// notFound is the detail used for services.ErrNotFound, fallback is the whole 500 detail:
// the underlying error is only logged so storage errors never reach the client.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, notFound, fallback string) {
	var genErr *services.GenerationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		h.respondError(w, http.StatusNotFound, notFound)
	case errors.As(err, &genErr):
		h.respondError(w, http.StatusInternalServerError, "AI content generation failed: "+genErr.Error())
	default:
		h.logger.Error(fallback, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

// idParam reads a positive integer path parameter
func idParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

// decodeBody decodes and validates a JSON request body
//
// An empty body leaves dst untouched so optional bodies can be omitted.
func (h *BaseHandler) decodeBody(r *http.Request, dst any) error {
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("invalid request body: %w", err)
		}
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
