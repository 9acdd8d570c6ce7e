package models

import "time"

// AnonymousUserID is the user identifier used when a caller does not identify itself
const AnonymousUserID = "anonymous"

// ContentSection represents one section of the main lesson text
type ContentSection struct {
	SectionTitle string `json:"section_title"`
	Content      string `json:"content"`
}

// CodeExample represents a code snippet attached to a lesson
type CodeExample struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// PracticeExercise represents a hands-on exercise attached to a lesson
type PracticeExercise struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// LessonBody is the canonical shape of generated lesson content
type LessonBody struct {
	Introduction      string             `json:"introduction"`
	MainContent       []ContentSection   `json:"main_content"`
	CodeExamples      []CodeExample      `json:"code_examples"`
	KeyTakeaways      []string           `json:"key_takeaways"`
	PracticeExercises []PracticeExercise `json:"practice_exercises"`
}

// WithEmptyLists replaces nil lists with empty ones so they encode as [] instead of null
func (b LessonBody) WithEmptyLists() LessonBody {
	if b.MainContent == nil {
		b.MainContent = []ContentSection{}
	}
	if b.CodeExamples == nil {
		b.CodeExamples = []CodeExample{}
	}
	if b.KeyTakeaways == nil {
		b.KeyTakeaways = []string{}
	}
	if b.PracticeExercises == nil {
		b.PracticeExercises = []PracticeExercise{}
	}
	return b
}

// LessonContent represents the cached generated content of a lesson
//
// There is at most one row per lesson; regeneration overwrites it in place.
type LessonContent struct {
	ID             int                `json:"id"`
	LessonID       int                `json:"lesson_id"`
	RawContent     string             `json:"-"`
	ContentSummary string             `json:"content_summary"`
	KeyConcepts    []string           `json:"key_concepts"`
	CodeExamples   []CodeExample      `json:"code_examples"`
	Exercises      []PracticeExercise `json:"exercises"`
	GeneratedAt    time.Time          `json:"generated_at"`
	UpdatedAt      *time.Time         `json:"updated_at,omitempty"`
}

// LessonRef is a short lesson reference used in AI responses
type LessonRef struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	CourseTitle string `json:"course_title"`
}

// GeneratedLesson is the result of a generate-or-fetch call
type GeneratedLesson struct {
	Lesson      LessonRef  `json:"lesson"`
	Content     LessonBody `json:"content"`
	Cached      bool       `json:"cached"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// LessonOverview is the result of an overview generation call
type LessonOverview struct {
	Lesson      LessonOverviewInfo `json:"lesson"`
	Overview    string             `json:"overview"`
	AIGenerated bool               `json:"ai_generated"`
}

// LessonOverviewInfo describes the lesson an overview was generated for
type LessonOverviewInfo struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	CourseTitle        string   `json:"course_title"`
	EstimatedDuration  string   `json:"estimated_duration"`
	LearningObjectives []string `json:"learning_objectives"`
}

// GenerateLessonRequest represents a request to generate lesson content or an overview
type GenerateLessonRequest struct {
	UserID string `json:"user_id" validate:"max=255"`
}

// CachedLesson is previously generated content served without calling the generator
type CachedLesson struct {
	Lesson      LessonRef  `json:"lesson"`
	Content     LessonBody `json:"content"`
	GeneratedAt time.Time  `json:"generated_at"`
}
