package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/learnanyskills/backend/internal/models"
)

type lessonContentRepository struct {
	db *sql.DB
}

// NewLessonContentRepository creates a new lesson content repository
func NewLessonContentRepository(db *sql.DB) *lessonContentRepository {
	return &lessonContentRepository{
		db: db,
	}
}

// GetByLessonID retrieves the cached content of a lesson
func (r *lessonContentRepository) GetByLessonID(ctx context.Context, lessonID int) (*models.LessonContent, error) {
	query := `
		SELECT id, lesson_id, raw_content, content_summary, key_concepts, code_examples, exercises, generated_at, updated_at
		FROM lesson_content
		WHERE lesson_id = ?
		LIMIT 1
	`

	var content models.LessonContent
	var keyConcepts, codeExamples, exercises []byte
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, lessonID).Scan(
		&content.ID,
		&content.LessonID,
		&content.RawContent,
		&content.ContentSummary,
		&keyConcepts,
		&codeExamples,
		&exercises,
		&content.GeneratedAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lesson content %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson content: %w", err)
	}

	if content.KeyConcepts, err = decodeJSONColumn[string](keyConcepts); err != nil {
		return nil, err
	}
	if content.CodeExamples, err = decodeJSONColumn[models.CodeExample](codeExamples); err != nil {
		return nil, err
	}
	if content.Exercises, err = decodeJSONColumn[models.PracticeExercise](exercises); err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		content.UpdatedAt = &updatedAt.Time
	}

	return &content, nil
}

// Upsert stores the content of a lesson, overwriting the existing row in place
//
// generated_at keeps the time of the first generation, updated_at is stamped on overwrite.
func (r *lessonContentRepository) Upsert(ctx context.Context, content *models.LessonContent) error {
	keyConcepts, err := encodeJSONColumn(content.KeyConcepts)
	if err != nil {
		return err
	}
	codeExamples, err := encodeJSONColumn(content.CodeExamples)
	if err != nil {
		return err
	}
	exercises, err := encodeJSONColumn(content.Exercises)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lesson_content (lesson_id, raw_content, content_summary, key_concepts, code_examples, exercises, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			raw_content = VALUES(raw_content),
			content_summary = VALUES(content_summary),
			key_concepts = VALUES(key_concepts),
			code_examples = VALUES(code_examples),
			exercises = VALUES(exercises),
			updated_at = ?
	`

	now := time.Now()
	generatedAt := content.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = now
	}

	_, err = r.db.ExecContext(ctx, query,
		content.LessonID,
		content.RawContent,
		content.ContentSummary,
		keyConcepts,
		codeExamples,
		exercises,
		generatedAt,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert lesson content: %w", err)
	}

	return nil
}
