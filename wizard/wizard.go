// Package wizard implements the guided five-question submission dialog.
// It is independent of the Discord transport: the handler layer feeds it one
// input per turn and renders the replies it hands back.
package wizard

import (
	"beitrag/model"
	"beitrag/utils"
	"errors"
)

// ErrNoSession is returned when a turn arrives for a user without an active
// wizard run.
var ErrNoSession = errors.New("no active wizard session")

// Reply is what the wizard hands back to the conversational runtime after a
// turn. A non-empty Choices list means the next answer must be one of these
// labels; an empty list means free text is expected. RunID identifies the
// wizard run a prompt belongs to, so stale choice clicks can be told apart
// from current ones.
type Reply struct {
	Text      string
	Choices   []string
	RunID     string
	Done      bool
	Committed bool
}

// PostStore persists a finished draft. Implemented by the db package.
type PostStore interface {
	SavePost(userID string, d model.Draft) error
}

// Engine runs the fixed step sequence, threading the draft accumulator
// through the per-user session store between turns.
type Engine struct {
	store PostStore
}

func NewEngine(store PostStore) *Engine {
	return &Engine{store: store}
}

// Start begins a new wizard run for the user in the given channel, replacing
// any run already in progress, and returns the first prompt.
func (e *Engine) Start(userID, channelID string) *Reply {
	session := utils.NewSession(userID, channelID)
	return promptReply(steps[0], &session)
}

// Advance feeds one inbound turn into the user's wizard run. The input is
// recorded at the current cursor, the cursor moves forward, and the next
// prompt comes back. At the end of the sequence a "Ja" folds the draft into
// the durable record and returns the summary; a "Nein" discards the draft.
func (e *Engine) Advance(userID, input string) (*Reply, error) {
	session, ok := utils.GetSession(userID)
	if !ok {
		return nil, ErrNoSession
	}

	current := steps[session.Cursor]
	if len(current.choices) > 0 && !containsLabel(current.choices, input) {
		// Not one of the offered labels: re-ask, cursor stays put.
		return promptReply(current, &session), nil
	}

	if current.record != nil {
		current.record(&session.Draft, input)
	}
	session.Cursor++

	if session.Cursor < len(steps) {
		utils.PutSession(session)
		return promptReply(steps[session.Cursor], &session), nil
	}

	// Terminal step: the last answer is the confirmation.
	utils.RemoveSession(userID)
	if input != AnswerYes {
		return &Reply{Text: cancelledText, Done: true}, nil
	}
	if err := e.store.SavePost(userID, session.Draft); err != nil {
		return nil, err
	}
	return &Reply{Text: committedText(&session.Draft), Done: true, Committed: true}, nil
}

// Cancel aborts the user's wizard run, if any, without touching the durable
// record.
func (e *Engine) Cancel(userID string) *Reply {
	utils.RemoveSession(userID)
	return &Reply{Text: cancelledText, Done: true}
}

// AwaitingText reports whether the user's run is currently waiting for a
// free-text answer in the given channel. Messages the user writes elsewhere
// are not wizard input.
func (e *Engine) AwaitingText(userID, channelID string) bool {
	session, ok := utils.GetSession(userID)
	if !ok {
		return false
	}
	if session.ChannelID != channelID {
		return false
	}
	return len(steps[session.Cursor].choices) == 0
}

// Run reports the run ID of the user's active session, if any.
func (e *Engine) Run(userID string) (string, bool) {
	session, ok := utils.GetSession(userID)
	if !ok {
		return "", false
	}
	return session.RunID, true
}

func promptReply(s step, session *model.WizardSession) *Reply {
	return &Reply{Text: s.prompt(&session.Draft), Choices: s.choices, RunID: session.RunID}
}

func containsLabel(labels []string, input string) bool {
	for _, label := range labels {
		if label == input {
			return true
		}
	}
	return false
}
