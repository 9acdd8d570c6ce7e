package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learnanyskills/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserProgressTestRepository creates a user progress repository with a mock database
func setupUserProgressTestRepository(t *testing.T) (*userProgressRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserProgressRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestUserProgressRepository_CreateIfAbsent(t *testing.T) {
	tests := []struct {
		name            string
		setupMock       func(sqlmock.Sqlmock)
		expectedError   bool
		expectedCreated bool
	}{
		{
			name: "creates new row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_progress \(user_id, lesson_id, course_id, completion_percentage\) VALUES \(\?, \?, \?, 0\) ON DUPLICATE KEY UPDATE id = id`).
					WithArgs("u1", 2, 1).
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			expectedCreated: true,
		},
		{
			name: "existing row left untouched",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_progress`).
					WithArgs("u1", 2, 1).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedCreated: false,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_progress`).
					WillReturnError(errors.New("database connection failed"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			created, err := repo.CreateIfAbsent(context.Background(), "u1", 2, 1)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCreated, created)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserProgressRepository_UpdateInTx(t *testing.T) {
	started := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	completedAt := time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC)
	accessed := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "lesson_id", "course_id", "is_completed", "completion_percentage", "time_spent_minutes", "started_at", "completed_at", "last_accessed"}

	tests := []struct {
		name          string
		apply         func(*models.UserProgress)
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		validate      func(*testing.T, *models.UserProgress)
	}{
		{
			name: "success applies mutation",
			apply: func(p *models.UserProgress) {
				p.CompletionPercentage = 80
				p.TimeSpentMinutes += 15
				p.LastAccessed = accessed
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO user_progress`).
					WithArgs("u1", 2, 1).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT id, user_id, lesson_id, course_id, is_completed, completion_percentage, time_spent_minutes, started_at, completed_at, last_accessed FROM user_progress WHERE user_id = \? AND lesson_id = \? FOR UPDATE`).
					WithArgs("u1", 2).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "u1", 2, 1, false, 40, 10, started, nil, started))
				mock.ExpectExec(`UPDATE user_progress SET is_completed = \?, completion_percentage = \?, time_spent_minutes = \?, completed_at = \?, last_accessed = \? WHERE id = \?`).
					WithArgs(false, 80, 25, nil, accessed, 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, p *models.UserProgress) {
				assert.Equal(t, 7, p.ID)
				assert.Equal(t, 80, p.CompletionPercentage)
				assert.Equal(t, 25, p.TimeSpentMinutes)
				assert.Nil(t, p.CompletedAt)
			},
		},
		{
			name:  "existing completed_at is read back and written unchanged",
			apply: func(p *models.UserProgress) {},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO user_progress`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT id, user_id`).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "u1", 2, 1, true, 100, 30, started, completedAt, started))
				mock.ExpectExec(`UPDATE user_progress`).
					WithArgs(true, 100, 30, completedAt, started, 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, p *models.UserProgress) {
				require.NotNil(t, p.CompletedAt)
				assert.True(t, completedAt.Equal(*p.CompletedAt))
			},
		},
		{
			name:  "update failure rolls back",
			apply: func(p *models.UserProgress) {},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO user_progress`).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery(`SELECT id, user_id`).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "u1", 2, 1, false, 0, 0, started, nil, started))
				mock.ExpectExec(`UPDATE user_progress`).
					WillReturnError(errors.New("lock wait timeout"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name:  "lock failure rolls back",
			apply: func(p *models.UserProgress) {},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO user_progress`).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery(`SELECT id, user_id`).
					WillReturnError(errors.New("deadlock found"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name:  "commit failure",
			apply: func(p *models.UserProgress) {},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO user_progress`).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery(`SELECT id, user_id`).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(7, "u1", 2, 1, false, 0, 0, started, nil, started))
				mock.ExpectExec(`UPDATE user_progress`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit failed"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			progress, err := repo.UpdateInTx(context.Background(), "u1", 2, 1, tt.apply)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, progress)
			} else {
				require.NoError(t, err)
				if tt.validate != nil {
					tt.validate(t, progress)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserProgressRepository_GetByUserID(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "user_id", "lesson_id", "course_id", "is_completed", "completion_percentage", "time_spent_minutes", "started_at", "completed_at", "last_accessed", "course_title", "lesson_title"}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "u1", 1, 1, false, 40, 10, now, nil, now, "Python", "Intro").
					AddRow(2, "u1", 2, 1, true, 100, 20, now, now, now, "Python", "Pandas")
				mock.ExpectQuery(`SELECT up.id, .* FROM user_progress up INNER JOIN courses c ON c.id = up.course_id INNER JOIN lessons l ON l.id = up.lesson_id WHERE up.user_id = \? ORDER BY up.id`).
					WithArgs("u1").
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "no progress",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT up.id`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT up.id`).
					WillReturnError(errors.New("database connection failed"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserProgressTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			records, err := repo.GetByUserID(context.Background(), "u1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, records)
			} else {
				require.NoError(t, err)
				assert.Len(t, records, tt.expectedCount)
				if tt.expectedCount == 2 {
					assert.Equal(t, "Pandas", records[1].LessonTitle)
					assert.NotNil(t, records[1].CompletedAt)
					assert.Nil(t, records[0].CompletedAt)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
