package services

import (
	"errors"

	"github.com/learnanyskills/backend/internal/llm"
	"github.com/learnanyskills/backend/internal/models"
)

// ErrNotFound is returned when a course or lesson does not exist or is not active
var ErrNotFound = models.ErrNotFound

// ErrContentNotGenerated is returned when a lesson exists but has no cached content yet
var ErrContentNotGenerated = errors.New("lesson content not generated")

// GenerationError reports a failed call to the content generator
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// StatusCode returns the upstream HTTP status, or 0 when the call failed before a response
func (e *GenerationError) StatusCode() int {
	var httpErr *llm.HTTPError
	if errors.As(e.Err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
