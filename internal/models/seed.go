package models

// SeedCourse is a course with its lessons used to initialize an empty catalog
type SeedCourse struct {
	Course  Course
	Lessons []Lesson
}
