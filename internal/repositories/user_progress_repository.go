package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnanyskills/backend/internal/models"
)

type userProgressRepository struct {
	db *sql.DB
}

// NewUserProgressRepository creates a new user progress repository
func NewUserProgressRepository(db *sql.DB) *userProgressRepository {
	return &userProgressRepository{
		db: db,
	}
}

// CreateIfAbsent inserts a 0% progress row for the (user, lesson) pair unless one already exists
//
// Returns true when a new row was created.
func (r *userProgressRepository) CreateIfAbsent(ctx context.Context, userID string, lessonID, courseID int) (bool, error) {
	query := `
		INSERT INTO user_progress (user_id, lesson_id, course_id, completion_percentage)
		VALUES (?, ?, ?, 0)
		ON DUPLICATE KEY UPDATE id = id
	`

	result, err := r.db.ExecContext(ctx, query, userID, lessonID, courseID)
	if err != nil {
		return false, fmt.Errorf("failed to create user progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected == 1, nil
}

// UpdateInTx locks the progress row of the (user, lesson) pair, creating it when absent,
// applies the mutation and writes the row back in a single transaction
func (r *userProgressRepository) UpdateInTx(ctx context.Context, userID string, lessonID, courseID int, apply func(*models.UserProgress)) (*models.UserProgress, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ensureQuery := `
		INSERT INTO user_progress (user_id, lesson_id, course_id, completion_percentage)
		VALUES (?, ?, ?, 0)
		ON DUPLICATE KEY UPDATE id = id
	`
	if _, err := tx.ExecContext(ctx, ensureQuery, userID, lessonID, courseID); err != nil {
		return nil, fmt.Errorf("failed to ensure user progress: %w", err)
	}

	selectQuery := `
		SELECT id, user_id, lesson_id, course_id, is_completed, completion_percentage, time_spent_minutes,
			started_at, completed_at, last_accessed
		FROM user_progress
		WHERE user_id = ? AND lesson_id = ?
		FOR UPDATE
	`

	var progress models.UserProgress
	var completedAt sql.NullTime
	err = tx.QueryRowContext(ctx, selectQuery, userID, lessonID).Scan(
		&progress.ID,
		&progress.UserID,
		&progress.LessonID,
		&progress.CourseID,
		&progress.IsCompleted,
		&progress.CompletionPercentage,
		&progress.TimeSpentMinutes,
		&progress.StartedAt,
		&completedAt,
		&progress.LastAccessed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user progress: %w", err)
	}
	if completedAt.Valid {
		progress.CompletedAt = &completedAt.Time
	}

	apply(&progress)

	updateQuery := `
		UPDATE user_progress
		SET is_completed = ?, completion_percentage = ?, time_spent_minutes = ?, completed_at = ?, last_accessed = ?
		WHERE id = ?
	`

	var completed any
	if progress.CompletedAt != nil {
		completed = *progress.CompletedAt
	}

	_, err = tx.ExecContext(ctx, updateQuery,
		progress.IsCompleted,
		progress.CompletionPercentage,
		progress.TimeSpentMinutes,
		completed,
		progress.LastAccessed,
		progress.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit progress transaction: %w", err)
	}

	return &progress, nil
}

// GetByUserID retrieves all progress rows of a user together with course and lesson titles
func (r *userProgressRepository) GetByUserID(ctx context.Context, userID string) ([]models.UserProgressRecord, error) {
	query := `
		SELECT
			up.id,
			up.user_id,
			up.lesson_id,
			up.course_id,
			up.is_completed,
			up.completion_percentage,
			up.time_spent_minutes,
			up.started_at,
			up.completed_at,
			up.last_accessed,
			c.title,
			l.title
		FROM user_progress up
		INNER JOIN courses c ON c.id = up.course_id
		INNER JOIN lessons l ON l.id = up.lesson_id
		WHERE up.user_id = ?
		ORDER BY up.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user progress: %w", err)
	}
	defer rows.Close()

	records := make([]models.UserProgressRecord, 0)
	for rows.Next() {
		var record models.UserProgressRecord
		var completedAt sql.NullTime
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.LessonID,
			&record.CourseID,
			&record.IsCompleted,
			&record.CompletionPercentage,
			&record.TimeSpentMinutes,
			&record.StartedAt,
			&completedAt,
			&record.LastAccessed,
			&record.CourseTitle,
			&record.LessonTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user progress: %w", err)
		}
		if completedAt.Valid {
			record.CompletedAt = &completedAt.Time
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}
