package models

import "time"

const contentSummaryLength = 500

// ContentCacheJob carries a freshly generated lesson body to be persisted in the background
type ContentCacheJob struct {
	LessonID    int        `json:"lesson_id"`
	RawContent  string     `json:"raw_content"`
	Body        LessonBody `json:"body"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// ToLessonContent maps the job onto the lesson_content row
//
// The summary is the first 500 runes of the introduction, key concepts are the key takeaways.
func (j ContentCacheJob) ToLessonContent() *LessonContent {
	body := j.Body.WithEmptyLists()
	summary := body.Introduction
	if runes := []rune(summary); len(runes) > contentSummaryLength {
		summary = string(runes[:contentSummaryLength])
	}
	return &LessonContent{
		LessonID:       j.LessonID,
		RawContent:     j.RawContent,
		ContentSummary: summary,
		KeyConcepts:    body.KeyTakeaways,
		CodeExamples:   body.CodeExamples,
		Exercises:      body.PracticeExercises,
		GeneratedAt:    j.GeneratedAt,
	}
}

// ProgressInitJob asks for a 0% progress row for a (user, lesson) pair when none exists
type ProgressInitJob struct {
	UserID   string `json:"user_id"`
	LessonID int    `json:"lesson_id"`
	CourseID int    `json:"course_id"`
}
