package models

// Status represents the lifecycle state of a catalog entry
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)
