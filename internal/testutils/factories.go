package testutils

import (
	"time"

	"employee-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every factory-built employee
const TestPassword = "password123"

var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// WorkScheduleFactory provides methods to create test WorkSchedule data
type WorkScheduleFactory struct{}

// NewWorkScheduleFactory creates a new WorkScheduleFactory
func NewWorkScheduleFactory() *WorkScheduleFactory {
	return &WorkScheduleFactory{}
}

// Create creates a five-day 09:00-18:00 schedule with a lunch break
func (f *WorkScheduleFactory) Create() *models.WorkSchedule {
	return &models.WorkSchedule{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Стандартный",
		WorkingDays:  []string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница"},
		WorkingHours: models.TimeRange{Start: "09:00", End: "18:00"},
		Breaks:       []models.TimeRange{{Start: "13:00", End: "14:00"}},
	}
}

// WithName sets a custom name for the schedule
func (f *WorkScheduleFactory) WithName(name string) *models.WorkSchedule {
	s := f.Create()
	s.Name = name
	return s
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values and no allocations
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel:    models.BaseModel{ID: id},
		FullName:     "Петров Пётр",
		Position:     "Инженер",
		Email:        "employee-" + id.String()[:8] + "@example.com",
		PasswordHash: testPasswordHash,
		Role:         models.UserRoleUser,
		WorkMode:     models.WorkModeOffice,
	}
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	e := f.Create()
	e.Email = email
	return e
}

// WithSchedule assigns a work schedule to the employee
func (f *EmployeeFactory) WithSchedule(scheduleID uuid.UUID) *models.Employee {
	e := f.Create()
	e.WorkScheduleID = &scheduleID
	return e
}

// WithAllocations creates an employee with one main and one secondary allocation per unit kind
func (f *EmployeeFactory) WithAllocations() *models.Employee {
	e := f.Create()
	e.Departments = []models.DepartmentAllocation{
		{DepartmentID: uuid.New(), DepartmentName: "Продажи"},
		{DepartmentID: uuid.New(), DepartmentName: "ИТ", IsMain: true},
	}
	e.Teams = []models.TeamAllocation{
		{TeamID: uuid.New(), TeamName: "Platform", IsMain: true},
		{TeamID: uuid.New(), TeamName: "Mobile"},
	}
	e.Projects = []models.ProjectAllocation{
		{ProjectID: uuid.New(), ProjectName: "Портал", Allocation: 60},
		{ProjectID: uuid.New(), ProjectName: "CRM", Allocation: 40},
	}
	return e
}

// PresenceFactory provides methods to create test Presence data
type PresenceFactory struct{}

// NewPresenceFactory creates a new PresenceFactory
func NewPresenceFactory() *PresenceFactory {
	return &PresenceFactory{}
}

// Create creates an office presence for the employee over [start, end)
func (f *PresenceFactory) Create(employeeID uuid.UUID, start, end time.Time) *models.Presence {
	return &models.Presence{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: employeeID,
		Type:       models.PresenceTypeOffice,
		StartTime:  start,
		EndTime:    end,
	}
}

// WithType creates a presence of the given type
func (f *PresenceFactory) WithType(employeeID uuid.UUID, presenceType models.PresenceType, start, end time.Time) *models.Presence {
	p := f.Create(employeeID, start, end)
	p.Type = presenceType
	return p
}

// FactorySet contains all factories for easy access in tests
type FactorySet struct {
	Employee     *EmployeeFactory
	WorkSchedule *WorkScheduleFactory
	Presence     *PresenceFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:     NewEmployeeFactory(),
		WorkSchedule: NewWorkScheduleFactory(),
		Presence:     NewPresenceFactory(),
	}
}

// Persist inserts records in order, failing fast on the first error
func Persist(db *gorm.DB, records ...interface{}) error {
	for _, r := range records {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}
	return nil
}
