package model

import "time"

// WizardSession tracks one user's progress through the submission wizard.
// Cursor is the index of the step whose answer we are waiting for; ChannelID
// is the channel the run was started in, the only place free-text answers
// are read from.
type WizardSession struct {
	RunID     string
	UserID    string
	ChannelID string
	Cursor    int
	Draft     Draft
	CreatedAt time.Time
}
