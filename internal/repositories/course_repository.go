package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnanyskills/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetAllActive retrieves all active courses with their active lesson counts
func (r *courseRepository) GetAllActive(ctx context.Context) ([]models.CourseListItem, error) {
	query := `
		SELECT
			c.id,
			c.title,
			c.description,
			c.difficulty_level,
			c.estimated_duration,
			c.image_url,
			c.created_at,
			COUNT(l.id) AS lesson_count
		FROM courses c
		LEFT JOIN lessons l ON l.course_id = c.id AND l.status = ?
		WHERE c.status = ?
		GROUP BY c.id, c.title, c.description, c.difficulty_level, c.estimated_duration, c.image_url, c.created_at
		ORDER BY c.id
	`

	rows, err := r.db.QueryContext(ctx, query, models.StatusActive, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.CourseListItem, 0)
	for rows.Next() {
		var course models.CourseListItem
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.DifficultyLevel,
			&course.EstimatedDuration,
			&course.ImageURL,
			&course.CreatedAt,
			&course.LessonCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetActiveByID retrieves an active course by its ID
func (r *courseRepository) GetActiveByID(ctx context.Context, id int) (*models.Course, error) {
	query := `
		SELECT id, title, description, overview, difficulty_level, estimated_duration, image_url, status, created_at, updated_at
		FROM courses
		WHERE id = ? AND status = ?
		LIMIT 1
	`

	var course models.Course
	err := r.db.QueryRowContext(ctx, query, id, models.StatusActive).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Overview,
		&course.DifficultyLevel,
		&course.EstimatedDuration,
		&course.ImageURL,
		&course.Status,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return &course, nil
}

// SeedIfEmpty inserts the given courses and lessons in one transaction when the courses table is empty
//
// It returns false without writing anything when at least one course already exists.
func (r *courseRepository) SeedIfEmpty(ctx context.Context, seeds []models.SeedCourse) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM courses)").Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check course existence: %w", err)
	}
	if exists {
		return false, nil
	}

	courseQuery := `
		INSERT INTO courses (title, description, overview, difficulty_level, estimated_duration, image_url, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	lessonQuery := `
		INSERT INTO lessons (course_id, title, description, lesson_number, estimated_duration, learning_objectives, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	for _, seed := range seeds {
		result, err := tx.ExecContext(ctx, courseQuery,
			seed.Course.Title,
			seed.Course.Description,
			seed.Course.Overview,
			seed.Course.DifficultyLevel,
			seed.Course.EstimatedDuration,
			seed.Course.ImageURL,
			models.StatusActive,
		)
		if err != nil {
			return false, fmt.Errorf("failed to create course %q: %w", seed.Course.Title, err)
		}

		courseID, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("failed to get last insert id: %w", err)
		}

		for _, lesson := range seed.Lessons {
			objectives, err := encodeJSONColumn(lesson.LearningObjectives)
			if err != nil {
				return false, err
			}
			_, err = tx.ExecContext(ctx, lessonQuery,
				courseID,
				lesson.Title,
				lesson.Description,
				lesson.LessonNumber,
				lesson.EstimatedDuration,
				objectives,
				models.StatusActive,
			)
			if err != nil {
				return false, fmt.Errorf("failed to create lesson %q: %w", lesson.Title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return true, nil
}
