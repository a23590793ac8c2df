// Package session owns the login/sign-up workflow and the current-session
// state. The session value is held by an explicit Manager instead of a
// process-wide global, and the workflow is an explicit state machine.
package session

import (
	"sync"

	"financas/internal/models"
)

// Session is the authenticated identity of the current user.
type Session struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// FromUser builds a session from a user account.
func FromUser(user *models.User) *Session {
	return &Session{
		UserID:        user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
	}
}

// Manager owns the single live session of the process. There is no
// concurrent-session support: a new login replaces the previous session.
type Manager struct {
	mu      sync.RWMutex
	current *Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{}
}

// Set installs sess as the current session, replacing any previous one.
func (m *Manager) Set(sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = sess
}

// Current returns the live session, or nil when nobody is signed in.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Clear drops the current session.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}
