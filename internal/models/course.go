package models

import "time"

// Course represents a course in the catalog
type Course struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Overview          string    `json:"overview"`
	DifficultyLevel   string    `json:"difficulty_level"`
	EstimatedDuration string    `json:"estimated_duration"`
	ImageURL          string    `json:"image_url"`
	Status            Status    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"-"`
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	DifficultyLevel   string    `json:"difficulty_level"`
	EstimatedDuration string    `json:"estimated_duration"`
	ImageURL          string    `json:"image_url"`
	LessonCount       int       `json:"lesson_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// CourseDetailResponse represents a course together with its ordered lessons
type CourseDetailResponse struct {
	Course
	Lessons []LessonListItem `json:"lessons"`
}

// CourseShortInfo represents a course with only ID and Title
type CourseShortInfo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
