package repository

import (
	"context"

	"employee-portal-backend/internal/database/models"
	"employee-portal-backend/internal/store"

	"github.com/google/uuid"
)

// profileJoins are the relations fetched with an employee profile
var profileJoins = []string{"departments", "teams", "projects", "workSchedule"}

// ProfileUpdate is the editable subset of an employee.
// A nil WorkScheduleID clears the schedule reference.
type ProfileUpdate struct {
	FullName       string
	WorkMode       models.WorkMode
	WorkScheduleID *uuid.UUID
}

func (u ProfileUpdate) fields() map[string]interface{} {
	var schedule interface{}
	if u.WorkScheduleID != nil {
		schedule = *u.WorkScheduleID
	}
	return map[string]interface{}{
		"fullName":     u.FullName,
		"workMode":     u.WorkMode,
		"workSchedule": schedule,
	}
}

// EmployeeRepository handles store operations for employees
type EmployeeRepository struct {
	client store.Client
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(client store.Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

// GetProfile retrieves an employee together with allocations and work schedule in one read
func (r *EmployeeRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.client.QueryOne(ctx, store.Query{
		Collection: store.CollectionEmployees,
		Filters:    []store.Filter{store.Eq("id", id)},
		Joins:      profileJoins,
	}, &employee)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by email, without relations
func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.client.QueryOne(ctx, store.Query{
		Collection: store.CollectionEmployees,
		Filters:    []store.Filter{store.Eq("email", email)},
	}, &employee)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateProfile writes the editable profile fields of one employee
func (r *EmployeeRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) error {
	return r.client.Update(ctx, store.CollectionEmployees,
		[]store.Filter{store.Eq("id", id)},
		update.fields(),
	)
}
