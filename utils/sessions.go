package utils

import (
	"beitrag/model"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	sessionStore = make(map[string]model.WizardSession)
	sessionMutex = &sync.RWMutex{}
	sessionTTL   = 15 * time.Minute // Abandoned wizard runs expire after 15 minutes
)

func init() {
	go startSessionJanitor()
}

// NewSession creates and stores a fresh wizard session for the user, bound
// to the channel the run was started in. Any previous session for the same
// user is replaced.
func NewSession(userID, channelID string) model.WizardSession {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	session := model.WizardSession{
		RunID:     uuid.New().String(),
		UserID:    userID,
		ChannelID: channelID,
		CreatedAt: time.Now(),
	}
	sessionStore[userID] = session
	return session
}

// GetSession retrieves the user's active wizard session.
func GetSession(userID string) (model.WizardSession, bool) {
	sessionMutex.RLock()
	defer sessionMutex.RUnlock()

	session, found := sessionStore[userID]
	return session, found
}

// PutSession stores an updated wizard session.
func PutSession(session model.WizardSession) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	sessionStore[session.UserID] = session
}

// RemoveSession removes the user's wizard session.
func RemoveSession(userID string) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	delete(sessionStore, userID)
}

// startSessionJanitor runs a background process to clean up expired sessions.
func startSessionJanitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		sessionMutex.Lock()
		for userID, session := range sessionStore {
			if time.Since(session.CreatedAt) > sessionTTL {
				delete(sessionStore, userID)
			}
		}
		sessionMutex.Unlock()
	}
}
