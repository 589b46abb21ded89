package view

import (
	"sync"
	"time"

	"employee-portal-backend/internal/service"
)

// sweepInterval bounds how often For looks for screens of expired sessions
const sweepInterval = time.Minute

// Screens are the screens owned by one session
type Screens struct {
	Profile  *ProfileScreen
	Calendar *CalendarScreen
}

type registryEntry struct {
	screens   *Screens
	expiresAt time.Time
}

// Registry hands every session its own screens. Screens go away on sign-out
// or once their session has expired.
type Registry struct {
	mu        sync.Mutex
	profiles  service.ProfileServiceInterface
	presences service.PresenceServiceInterface
	sessions  map[string]*registryEntry
	nextSweep time.Time
}

// NewRegistry creates an empty registry whose screens use the given services
func NewRegistry(profiles service.ProfileServiceInterface, presences service.PresenceServiceInterface) *Registry {
	return &Registry{
		profiles:  profiles,
		presences: presences,
		sessions:  make(map[string]*registryEntry),
	}
}

// For returns the screens of sessionID, creating them on first use.
// expiresAt is when the session stops being valid.
func (r *Registry) For(sessionID string, expiresAt time.Time) *Screens {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if !now.Before(r.nextSweep) {
		r.sweepLocked(now)
		r.nextSweep = now.Add(sweepInterval)
	}

	entry, ok := r.sessions[sessionID]
	if !ok {
		entry = &registryEntry{screens: &Screens{
			Profile:  NewProfileScreen(r.profiles),
			Calendar: NewCalendarScreen(r.presences),
		}}
		r.sessions[sessionID] = entry
	}
	entry.expiresAt = expiresAt
	return entry.screens
}

// Drop forgets the screens of sessionID
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Sweep forgets the screens of every expired session
func (r *Registry) Sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(time.Now())
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, entry := range r.sessions {
		if !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

// Len returns the number of sessions holding screens
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
