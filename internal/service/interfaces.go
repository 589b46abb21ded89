package service

import (
	"context"
	"time"

	"employee-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, employeeID uuid.UUID) (*models.Employee, error)
	UpdateProfile(ctx context.Context, employeeID uuid.UUID, req *UpdateProfileRequest) error
	ListWorkSchedules(ctx context.Context) ([]models.WorkSchedule, error)
}

// PresenceServiceInterface defines the interface for presence service
type PresenceServiceInterface interface {
	GetForDay(ctx context.Context, employeeID uuid.UUID, date time.Time) ([]models.Presence, error)
	DayWindow(date time.Time) (from, to time.Time)
	Location() *time.Location
}
