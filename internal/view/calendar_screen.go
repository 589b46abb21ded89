package view

import (
	"context"
	"sync"
	"time"

	"employee-portal-backend/internal/database/models"
	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/logger"
	"employee-portal-backend/internal/service"

	"github.com/google/uuid"
)

// Display layouts of the calendar screen
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

const msgPresencesFailed = "Не удалось загрузить записи"

// CalendarEntry is one presence as shown on the calendar
type CalendarEntry struct {
	ID        uuid.UUID           `json:"id"`
	Type      models.PresenceType `json:"type"`
	Label     PresenceLabel       `json:"display"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Start     string              `json:"start"`
	End       string              `json:"end"`
	Note      string              `json:"note,omitempty"`
}

// CalendarView is a snapshot of the calendar screen
type CalendarView struct {
	Date    string          `json:"date"`
	Loading bool            `json:"loading"`
	Entries []CalendarEntry `json:"entries"`
	Empty   string          `json:"empty,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// CalendarScreen owns one session's presence calendar: the active date and its entries
type CalendarScreen struct {
	mu        sync.Mutex
	presences service.PresenceServiceInterface
	tokens    tokens
	date      time.Time
	shownDate time.Time // date of entries; zero until a load succeeds
	loading   bool
	entries   []CalendarEntry
	lastErr   string
}

// NewCalendarScreen creates a calendar screen whose active date is today
func NewCalendarScreen(presences service.PresenceServiceInterface) *CalendarScreen {
	return &CalendarScreen{
		presences: presences,
		date:      time.Now().In(presences.Location()),
	}
}

// SelectDate makes date the active date and loads its entries
func (s *CalendarScreen) SelectDate(ctx context.Context, identity Identity, date time.Time) (CalendarView, error) {
	s.mu.Lock()
	s.date = date.In(s.presences.Location())
	s.mu.Unlock()
	return s.Load(ctx, identity)
}

// Load fetches the active date's entries. On failure the screen reverts to the
// date and entries it showed before.
func (s *CalendarScreen) Load(ctx context.Context, identity Identity) (CalendarView, error) {
	employeeID, ok := identity.EmployeeID()
	if !ok {
		return s.View(), apperrors.ErrNoSession
	}

	s.mu.Lock()
	token := s.tokens.next()
	date := s.date
	s.loading = true
	s.mu.Unlock()

	presences, err := s.presences.GetForDay(ctx, employeeID, date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tokens.current(token) {
		logger.WithContext(ctx).WithField("token", token).Debug("Discarding superseded presence response")
		return s.viewLocked(), apperrors.ErrStaleResponse
	}
	s.loading = false
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("Error fetching presences")
		s.lastErr = msgPresencesFailed
		if !s.shownDate.IsZero() {
			s.date = s.shownDate
		}
		return s.viewLocked(), err
	}
	s.entries = s.entriesOf(presences)
	s.shownDate = date
	s.lastErr = ""
	return s.viewLocked(), nil
}

// View returns the current snapshot
func (s *CalendarScreen) View() CalendarView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *CalendarScreen) viewLocked() CalendarView {
	v := CalendarView{
		Date:    s.date.Format(DateLayout),
		Loading: s.loading,
		Entries: append([]CalendarEntry{}, s.entries...),
		Error:   s.lastErr,
	}
	if len(v.Entries) == 0 {
		v.Empty = NoEntries
	}
	return v
}

func (s *CalendarScreen) entriesOf(presences []models.Presence) []CalendarEntry {
	loc := s.presences.Location()
	entries := make([]CalendarEntry, 0, len(presences))
	for _, p := range presences {
		start, end := p.StartTime.In(loc), p.EndTime.In(loc)
		entry := CalendarEntry{
			ID:        p.ID,
			Type:      p.Type,
			Label:     LabelForPresence(p.Type),
			StartTime: start,
			EndTime:   end,
			Start:     start.Format(TimeLayout),
			End:       end.Format(TimeLayout),
		}
		if p.Note != nil {
			entry.Note = *p.Note
		}
		entries = append(entries, entry)
	}
	return entries
}
