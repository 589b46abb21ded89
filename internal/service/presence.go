package service

import (
	"context"
	"fmt"
	"time"

	"employee-portal-backend/internal/database/models"
	"employee-portal-backend/internal/logger"
	"employee-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// PresenceService provides day-scoped presence lookups
type PresenceService struct {
	repo repository.PresenceRepositoryInterface
	loc  *time.Location
}

// Ensure PresenceService implements PresenceServiceInterface
var _ PresenceServiceInterface = (*PresenceService)(nil)

// NewPresenceService creates a PresenceService whose days are measured in loc
func NewPresenceService(repo repository.PresenceRepositoryInterface, loc *time.Location) *PresenceService {
	if loc == nil {
		loc = time.Local
	}
	return &PresenceService{repo: repo, loc: loc}
}

// Location returns the time zone calendar days are measured in
func (s *PresenceService) Location() *time.Location {
	return s.loc
}

// DayWindow returns [00:00:00.000, 23:59:59.999] of date's calendar day
func (s *PresenceService) DayWindow(date time.Time) (from, to time.Time) {
	y, m, d := date.In(s.loc).Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	to = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), s.loc)
	return from, to
}

// GetForDay returns the employee's presences lying within date's day, earliest first
func (s *PresenceService) GetForDay(ctx context.Context, employeeID uuid.UUID, date time.Time) ([]models.Presence, error) {
	from, to := s.DayWindow(date)

	presences, err := s.repo.GetByEmployeeInRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load presences: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"employee": employeeID.String(),
		"date":     from.Format("2006-01-02"),
		"count":    len(presences),
	}).Debug("Presences loaded")
	return presences, nil
}
