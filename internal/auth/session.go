package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the signed-in identity of one client. It is created signed out,
// becomes signed in on a successful login and can be signed out exactly once;
// a signed-out or expired session has no employee identifier.
type Session struct {
	mu         sync.RWMutex
	id         string
	employeeID uuid.UUID
	expiresAt  time.Time
	signedIn   bool
	now        func() time.Time
}

// NewSession creates a signed-out session with a fresh identifier
func NewSession() *Session {
	return newSession(uuid.NewString(), time.Now)
}

func newSession(id string, now func() time.Time) *Session {
	return &Session{id: id, now: now}
}

// ID returns the session identifier, also used as the token's jti
func (s *Session) ID() string {
	return s.id
}

// SignIn binds the session to an employee until expiresAt
func (s *Session) SignIn(employeeID uuid.UUID, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employeeID = employeeID
	s.expiresAt = expiresAt
	s.signedIn = true
}

// SignOut ends the session
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employeeID = uuid.Nil
	s.signedIn = false
}

// EmployeeID returns the signed-in employee, or false when there is none
func (s *Session) EmployeeID() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.signedIn || !s.now().Before(s.expiresAt) {
		return uuid.Nil, false
	}
	return s.employeeID, true
}

// ExpiresAt returns when the session stops being valid
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// record returns the persisted form of a signed-in session
func (s *Session) record() SessionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionRecord{ID: s.id, EmployeeID: s.employeeID, ExpiresAt: s.expiresAt}
}
