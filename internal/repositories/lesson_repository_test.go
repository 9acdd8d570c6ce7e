package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learnanyskills/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestLessonRepository_GetActiveByID(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "course_id", "title", "description", "lesson_number", "estimated_duration", "learning_objectives", "status", "created_at", "course_title", "content_summary"}

	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		notFound      bool
		validate      func(*testing.T, *models.LessonWithCourse)
	}{
		{
			name: "success with content summary",
			id:   3,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(3, 1, "Data Cleaning", "Clean data", 3, "60 minutes", []byte(`["Handle missing values","Remove duplicates"]`), "active", now, "Python for Data Analysis", "Intro text")
				mock.ExpectQuery(`SELECT l.id, l.course_id, l.title, .* FROM lessons l INNER JOIN courses c ON c.id = l.course_id LEFT JOIN lesson_content lc ON lc.lesson_id = l.id WHERE l.id = \? AND l.status = \?`).
					WithArgs(3, "active").
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, lesson *models.LessonWithCourse) {
				assert.Equal(t, "Python for Data Analysis", lesson.CourseTitle)
				assert.Equal(t, []string{"Handle missing values", "Remove duplicates"}, lesson.LearningObjectives)
				require.NotNil(t, lesson.ContentSummary)
				assert.Equal(t, "Intro text", *lesson.ContentSummary)
			},
		},
		{
			name: "success without content and null objectives",
			id:   4,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(4, 1, "Visualization", "Charts", 4, "45 minutes", nil, "active", now, "Python for Data Analysis", nil)
				mock.ExpectQuery(`SELECT l.id`).
					WithArgs(4, "active").
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, lesson *models.LessonWithCourse) {
				assert.Empty(t, lesson.LearningObjectives)
				assert.NotNil(t, lesson.LearningObjectives)
				assert.Nil(t, lesson.ContentSummary)
			},
		},
		{
			name: "lesson not found",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT l.id`).
					WithArgs(99, "active").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			notFound:      true,
		},
		{
			name: "invalid objectives json",
			id:   5,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(5, 1, "Broken", "", 5, "", []byte(`{not json`), "active", now, "Course", nil)
				mock.ExpectQuery(`SELECT l.id`).
					WithArgs(5, "active").
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			lesson, err := repo.GetActiveByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, lesson)
				assert.Equal(t, tt.notFound, errors.Is(err, models.ErrNotFound))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, lesson.ID)
				if tt.validate != nil {
					tt.validate(t, lesson)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_GetActiveByCourseID(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "title", "description", "lesson_number", "estimated_duration", "learning_objectives", "created_at", "has_content"}

	tests := []struct {
		name          string
		courseID      int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
		validate      func(*testing.T, []models.LessonListItem)
	}{
		{
			name:     "success ordered with content flags",
			courseID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "Intro", "d1", 1, "30 minutes", []byte(`["a"]`), now, 1).
					AddRow(2, "Next", "d2", 2, "45 minutes", []byte(`[]`), now, 0)
				mock.ExpectQuery(`SELECT l.id, l.title, .* FROM lessons l LEFT JOIN lesson_content lc ON lc.lesson_id = l.id WHERE l.course_id = \? AND l.status = \? ORDER BY l.lesson_number`).
					WithArgs(1, "active").
					WillReturnRows(rows)
			},
			expectedCount: 2,
			validate: func(t *testing.T, lessons []models.LessonListItem) {
				assert.Equal(t, 1, lessons[0].LessonNumber)
				assert.True(t, lessons[0].HasContent)
				assert.False(t, lessons[1].HasContent)
				assert.Equal(t, []string{"a"}, lessons[0].LearningObjectives)
			},
		},
		{
			name:     "course without lessons",
			courseID: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT l.id`).
					WithArgs(2, "active").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedCount: 0,
		},
		{
			name:     "database error",
			courseID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT l.id`).
					WillReturnError(errors.New("database connection failed"))
			},
			expectedError: true,
		},
		{
			name:     "row error",
			courseID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "Intro", "d1", 1, "30 minutes", []byte(`[]`), now, 0).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`SELECT l.id`).WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			lessons, err := repo.GetActiveByCourseID(context.Background(), tt.courseID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, lessons)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, lessons)
				assert.Len(t, lessons, tt.expectedCount)
				if tt.validate != nil {
					tt.validate(t, lessons)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
