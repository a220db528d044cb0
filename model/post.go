package model

import "time"

// Draft holds the answers collected during one wizard run.
// It lives only for the duration of the run and is discarded on cancel.
type Draft struct {
	SourceType  string
	URL         string
	Description string
	Priority    string
}

// Post is the durable submission record, one row per user.
// A completed wizard run overwrites all four answer fields.
type Post struct {
	UserID      string
	SourceType  string
	URL         string
	Description string
	Priority    string
	UpdatedAt   time.Time
}
