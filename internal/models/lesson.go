package models

import "time"

// Lesson represents a lesson in a course
type Lesson struct {
	ID                 int       `json:"id"`
	CourseID           int       `json:"course_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	LessonNumber       int       `json:"lesson_number"`
	EstimatedDuration  string    `json:"estimated_duration"`
	LearningObjectives []string  `json:"learning_objectives"`
	Status             Status    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"-"`
}

// LessonListItem represents a lesson inside a course listing
type LessonListItem struct {
	ID                 int       `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	LessonNumber       int       `json:"lesson_number"`
	EstimatedDuration  string    `json:"estimated_duration"`
	LearningObjectives []string  `json:"learning_objectives"`
	CreatedAt          time.Time `json:"created_at"`
	HasContent         bool      `json:"has_content"`
}

// LessonWithCourse is a lesson joined with its parent course
//
// ContentSummary is nil when no content was generated for the lesson yet.
type LessonWithCourse struct {
	Lesson
	CourseTitle    string  `json:"-"`
	ContentSummary *string `json:"-"`
}

// LessonDetailResponse represents a single lesson in API responses
type LessonDetailResponse struct {
	ID                  int             `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	LessonNumber        int             `json:"lesson_number"`
	EstimatedDuration   string          `json:"estimated_duration"`
	LearningObjectives  []string        `json:"learning_objectives"`
	Course              CourseShortInfo `json:"course"`
	HasGeneratedContent bool            `json:"has_generated_content"`
	ContentSummary      *string         `json:"content_summary,omitempty"`
}

// CourseLessonsResponse represents the lessons of one course
type CourseLessonsResponse struct {
	CourseTitle string           `json:"course_title"`
	Lessons     []LessonListItem `json:"lessons"`
}
