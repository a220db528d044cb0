package model

// User represents a user's stats.
type User struct {
	UserID         string
	SubmittedCount int
}
