package models

import "time"

// UserProgress represents a user's progress on a single lesson
type UserProgress struct {
	ID                   int        `json:"id"`
	UserID               string     `json:"user_id"`
	LessonID             int        `json:"lesson_id"`
	CourseID             int        `json:"course_id"`
	IsCompleted          bool       `json:"is_completed"`
	CompletionPercentage int        `json:"completion_percentage"`
	TimeSpentMinutes     int        `json:"time_spent_minutes"`
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	LastAccessed         time.Time  `json:"last_accessed"`
}

// UserProgressRecord is a progress row joined with lesson and course titles
type UserProgressRecord struct {
	UserProgress
	CourseTitle string
	LessonTitle string
}

// LessonProgressItem represents one lesson inside an aggregated progress report
type LessonProgressItem struct {
	LessonID             int       `json:"lesson_id"`
	LessonTitle          string    `json:"lesson_title"`
	IsCompleted          bool      `json:"is_completed"`
	CompletionPercentage int       `json:"completion_percentage"`
	TimeSpentMinutes     int       `json:"time_spent_minutes"`
	LastAccessed         time.Time `json:"last_accessed"`
}

// CourseProgress represents a user's aggregated progress within a course
type CourseProgress struct {
	CourseID        int                  `json:"course_id"`
	CourseTitle     string               `json:"course_title"`
	Lessons         []LessonProgressItem `json:"lessons"`
	TotalCompletion float64              `json:"total_completion"`
	TotalTimeSpent  int                  `json:"total_time_spent"`
}

// UpdateProgressRequest represents a request to update lesson progress
type UpdateProgressRequest struct {
	UserID               string `json:"user_id" validate:"required,max=255"`
	CompletionPercentage int    `json:"completion_percentage"`
	TimeSpentMinutes     int    `json:"time_spent_minutes"`
	IsCompleted          bool   `json:"is_completed"`
}

// ProgressResponse echoes the stored progress fields after an update
type ProgressResponse struct {
	LessonID             int  `json:"lesson_id"`
	CompletionPercentage int  `json:"completion_percentage"`
	TimeSpentMinutes     int  `json:"time_spent_minutes"`
	IsCompleted          bool `json:"is_completed"`
}
