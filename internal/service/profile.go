package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employee-portal-backend/internal/database/models"
	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/logger"
	"employee-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProfileService provides profile loading and editing
type ProfileService struct {
	employees repository.EmployeeRepositoryInterface
	schedules repository.WorkScheduleRepositoryInterface
	validator *validator.Validate
}

// Ensure ProfileService implements ProfileServiceInterface
var _ ProfileServiceInterface = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService
func NewProfileService(employees repository.EmployeeRepositoryInterface, schedules repository.WorkScheduleRepositoryInterface, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		employees: employees,
		schedules: schedules,
		validator: validator,
	}
}

// UpdateProfileRequest carries the editable profile fields
type UpdateProfileRequest struct {
	FullName       string          `json:"fullName" validate:"required,max=200"`
	WorkMode       models.WorkMode `json:"workMode" validate:"required,oneof=office remote hybrid"`
	WorkScheduleID *uuid.UUID      `json:"workScheduleId"`
}

// GetProfile loads the employee with allocations and work schedule
func (s *ProfileService) GetProfile(ctx context.Context, employeeID uuid.UUID) (*models.Employee, error) {
	employee, err := s.employees.GetProfile(ctx, employeeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	for _, issue := range Diagnose(employee) {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"employee": employee.ID.String(),
			"check":    issue.Check,
		}).Warn(issue.Message)
	}

	return employee, nil
}

// UpdateProfile validates and writes the editable profile fields
func (s *ProfileService) UpdateProfile(ctx context.Context, employeeID uuid.UUID, req *UpdateProfileRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	if err := s.validator.Struct(req); err != nil {
		return toValidationError(err)
	}

	if req.WorkScheduleID != nil {
		if _, err := s.schedules.GetByID(ctx, *req.WorkScheduleID); err != nil {
			if apperrors.IsNotFound(err) {
				return apperrors.ErrWorkScheduleNotFound
			}
			return fmt.Errorf("failed to verify work schedule: %w", err)
		}
	}

	err := s.employees.UpdateProfile(ctx, employeeID, repository.ProfileUpdate{
		FullName:       req.FullName,
		WorkMode:       req.WorkMode,
		WorkScheduleID: req.WorkScheduleID,
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	logger.WithContext(ctx).WithField("employee", employeeID.String()).Info("Profile updated")
	return nil
}

// ListWorkSchedules returns the schedules an employee may choose from
func (s *ProfileService) ListWorkSchedules(ctx context.Context) ([]models.WorkSchedule, error) {
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	return schedules, nil
}

// toValidationError reports the first failed field of a validator error
func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, "is required")
	case "max":
		return apperrors.NewValidationError(field, "must be at most "+fe.Param()+" characters")
	case "oneof":
		return apperrors.NewValidationError(field, "must be one of: "+fe.Param())
	default:
		return apperrors.NewValidationError(field, "failed on "+fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
