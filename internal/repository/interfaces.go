package repository

import (
	"context"
	"time"

	"employee-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) error
}

// WorkScheduleRepositoryInterface defines the interface for work schedule repository operations
type WorkScheduleRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error)
	List(ctx context.Context) ([]models.WorkSchedule, error)
}

// PresenceRepositoryInterface defines the interface for presence repository operations
type PresenceRepositoryInterface interface {
	GetByEmployeeInRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]models.Presence, error)
}
