package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnanyskills/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetActiveByID retrieves an active lesson by its ID together with its course title and content summary
func (r *lessonRepository) GetActiveByID(ctx context.Context, id int) (*models.LessonWithCourse, error) {
	query := `
		SELECT
			l.id,
			l.course_id,
			l.title,
			l.description,
			l.lesson_number,
			l.estimated_duration,
			l.learning_objectives,
			l.status,
			l.created_at,
			c.title,
			lc.content_summary
		FROM lessons l
		INNER JOIN courses c ON c.id = l.course_id
		LEFT JOIN lesson_content lc ON lc.lesson_id = l.id
		WHERE l.id = ? AND l.status = ?
		LIMIT 1
	`

	var lesson models.LessonWithCourse
	var objectives []byte
	var summary sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, models.StatusActive).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.Description,
		&lesson.LessonNumber,
		&lesson.EstimatedDuration,
		&objectives,
		&lesson.Status,
		&lesson.CreatedAt,
		&lesson.CourseTitle,
		&summary,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lesson %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	lesson.LearningObjectives, err = decodeJSONColumn[string](objectives)
	if err != nil {
		return nil, err
	}
	if summary.Valid {
		lesson.ContentSummary = &summary.String
	}

	return &lesson, nil
}

// GetActiveByCourseID retrieves the active lessons of a course ordered by lesson number
func (r *lessonRepository) GetActiveByCourseID(ctx context.Context, courseID int) ([]models.LessonListItem, error) {
	query := `
		SELECT
			l.id,
			l.title,
			l.description,
			l.lesson_number,
			l.estimated_duration,
			l.learning_objectives,
			l.created_at,
			CASE WHEN lc.id IS NOT NULL THEN 1 ELSE 0 END AS has_content
		FROM lessons l
		LEFT JOIN lesson_content lc ON lc.lesson_id = l.id
		WHERE l.course_id = ? AND l.status = ?
		ORDER BY l.lesson_number
	`

	rows, err := r.db.QueryContext(ctx, query, courseID, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := make([]models.LessonListItem, 0)
	for rows.Next() {
		var lesson models.LessonListItem
		var objectives []byte
		var hasContent int
		err := rows.Scan(
			&lesson.ID,
			&lesson.Title,
			&lesson.Description,
			&lesson.LessonNumber,
			&lesson.EstimatedDuration,
			&objectives,
			&lesson.CreatedAt,
			&hasContent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lesson.LearningObjectives, err = decodeJSONColumn[string](objectives)
		if err != nil {
			return nil, err
		}
		lesson.HasContent = hasContent == 1
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}
