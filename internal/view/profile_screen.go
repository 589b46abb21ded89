package view

import (
	"context"
	"errors"
	"sync"

	"employee-portal-backend/internal/database/models"
	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/logger"
	"employee-portal-backend/internal/service"

	"github.com/google/uuid"
)

// Mode is the profile screen's interaction state
type Mode string

const (
	ModeViewing Mode = "viewing"
	ModeEditing Mode = "editing"
)

// Generic messages shown for failed requests
const (
	msgLoadFailed = "Не удалось загрузить профиль"
	msgSaveFailed = "Не удалось сохранить профиль"
)

// ProfileDraft is the mutable copy of the editable profile fields
type ProfileDraft struct {
	FullName       string          `json:"fullName"`
	WorkMode       models.WorkMode `json:"workMode"`
	WorkScheduleID *uuid.UUID      `json:"workScheduleId,omitempty"`
}

// DraftPatch changes some fields of the draft; nil fields are left alone
type DraftPatch struct {
	FullName          *string          `json:"fullName,omitempty"`
	WorkMode          *models.WorkMode `json:"workMode,omitempty"`
	WorkScheduleID    *uuid.UUID       `json:"workScheduleId,omitempty"`
	ClearWorkSchedule bool             `json:"clearWorkSchedule,omitempty"`
}

// ProfileView is a snapshot of the profile screen with its derived display values
type ProfileView struct {
	Mode           Mode             `json:"mode"`
	Loading        bool             `json:"loading"`
	Employee       *models.Employee `json:"employee,omitempty"`
	Initials       string           `json:"initials,omitempty"`
	MainDepartment string           `json:"mainDepartment,omitempty"`
	MainTeam       string           `json:"mainTeam,omitempty"`
	WorkSchedule   string           `json:"workSchedule,omitempty"`
	WorkModeLabel  string           `json:"workModeLabel,omitempty"`
	Draft          *ProfileDraft    `json:"draft,omitempty"`
	Error          string           `json:"error,omitempty"`
}

// ProfileScreen owns one session's profile state. Requests run outside the lock;
// a load's result is applied only if no newer load was issued meanwhile.
type ProfileScreen struct {
	mu       sync.Mutex
	profiles service.ProfileServiceInterface
	tokens   tokens
	mode     Mode
	loading  bool
	employee *models.Employee
	draft    *ProfileDraft
	lastErr  string
}

// NewProfileScreen creates a profile screen in viewing mode with nothing loaded
func NewProfileScreen(profiles service.ProfileServiceInterface) *ProfileScreen {
	return &ProfileScreen{profiles: profiles, mode: ModeViewing}
}

// Load fetches the signed-in employee's profile. On failure the previous snapshot is kept.
func (s *ProfileScreen) Load(ctx context.Context, identity Identity) (ProfileView, error) {
	employeeID, ok := identity.EmployeeID()
	if !ok {
		return s.View(), apperrors.ErrNoSession
	}

	s.mu.Lock()
	token := s.tokens.next()
	s.loading = true
	s.mu.Unlock()

	employee, err := s.profiles.GetProfile(ctx, employeeID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tokens.current(token) {
		logger.WithContext(ctx).WithField("token", token).Debug("Discarding superseded profile response")
		return s.viewLocked(), apperrors.ErrStaleResponse
	}
	s.loading = false
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("Error fetching profile")
		s.lastErr = msgLoadFailed
		return s.viewLocked(), err
	}
	s.employee = employee
	s.lastErr = ""
	return s.viewLocked(), nil
}

// BeginEdit copies the loaded snapshot into a draft. A draft already being edited is kept.
func (s *ProfileScreen) BeginEdit() (ProfileView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.employee == nil {
		return s.viewLocked(), apperrors.ErrProfileNotLoaded
	}
	if s.mode != ModeEditing {
		s.draft = draftOf(s.employee)
		s.mode = ModeEditing
	}
	return s.viewLocked(), nil
}

// UpdateDraft applies patch to the draft
func (s *ProfileScreen) UpdateDraft(patch DraftPatch) (ProfileView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeEditing {
		return s.viewLocked(), apperrors.ErrNotEditing
	}
	if patch.FullName != nil {
		s.draft.FullName = *patch.FullName
	}
	if patch.WorkMode != nil {
		s.draft.WorkMode = *patch.WorkMode
	}
	switch {
	case patch.ClearWorkSchedule:
		s.draft.WorkScheduleID = nil
	case patch.WorkScheduleID != nil:
		id := *patch.WorkScheduleID
		s.draft.WorkScheduleID = &id
	}
	return s.viewLocked(), nil
}

// Submit writes the draft and reloads the profile. On failure the screen stays in edit mode
// with the draft intact.
func (s *ProfileScreen) Submit(ctx context.Context, identity Identity) (ProfileView, error) {
	employeeID, ok := identity.EmployeeID()
	if !ok {
		return s.View(), apperrors.ErrNoSession
	}

	s.mu.Lock()
	if s.mode != ModeEditing {
		v := s.viewLocked()
		s.mu.Unlock()
		return v, apperrors.ErrNotEditing
	}
	draft := *s.draft
	s.mu.Unlock()

	err := s.profiles.UpdateProfile(ctx, employeeID, &service.UpdateProfileRequest{
		FullName:       draft.FullName,
		WorkMode:       draft.WorkMode,
		WorkScheduleID: draft.WorkScheduleID,
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("Error updating profile")
		s.mu.Lock()
		s.lastErr = msgSaveFailed
		s.mu.Unlock()
		return s.View(), err
	}

	s.mu.Lock()
	s.mode = ModeViewing
	s.draft = nil
	s.lastErr = ""
	s.mu.Unlock()

	v, err := s.Load(ctx, identity)
	if errors.Is(err, apperrors.ErrStaleResponse) {
		// the write stands; a newer load owns the snapshot
		return v, nil
	}
	return v, err
}

// CancelEdit discards the draft and returns to the last loaded snapshot
func (s *ProfileScreen) CancelEdit() ProfileView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeViewing
	s.draft = nil
	return s.viewLocked()
}

// View returns the current snapshot
func (s *ProfileScreen) View() ProfileView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *ProfileScreen) viewLocked() ProfileView {
	v := ProfileView{
		Mode:     s.mode,
		Loading:  s.loading,
		Employee: s.employee,
		Error:    s.lastErr,
	}
	if s.draft != nil {
		d := *s.draft
		v.Draft = &d
	}
	if e := s.employee; e != nil {
		v.Initials = Initials(e.FullName)
		v.WorkModeLabel = LabelForWorkMode(e.WorkMode)
		v.MainDepartment = NoDepartment
		if d := e.MainDepartment(); d != nil && d.DepartmentName != "" {
			v.MainDepartment = d.DepartmentName
		}
		v.MainTeam = NoTeam
		if t := e.MainTeam(); t != nil && t.TeamName != "" {
			v.MainTeam = t.TeamName
		}
		v.WorkSchedule = NoWorkSchedule
		if e.WorkSchedule != nil && e.WorkSchedule.Name != "" {
			v.WorkSchedule = e.WorkSchedule.Name
		}
	}
	return v
}

func draftOf(e *models.Employee) *ProfileDraft {
	d := &ProfileDraft{FullName: e.FullName, WorkMode: e.WorkMode}
	if e.WorkScheduleID != nil {
		id := *e.WorkScheduleID
		d.WorkScheduleID = &id
	}
	return d
}
