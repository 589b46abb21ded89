package models

import (
	"github.com/google/uuid"
)

// Employee represents a portal user together with their organizational allocations
type Employee struct {
	BaseModel
	FullName       string     `json:"fullName" gorm:"not null;size:200" validate:"required,max=200"`
	Position       string     `json:"position" gorm:"size:200"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string     `json:"-" gorm:"size:100"`
	Role           UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	WorkMode       WorkMode   `json:"workMode" gorm:"type:varchar(20);not null;default:'office'"`
	WorkScheduleID *uuid.UUID `json:"workScheduleId,omitempty" gorm:"type:uuid;index"`

	// Relationships
	WorkSchedule *WorkSchedule          `json:"workSchedule,omitempty" gorm:"foreignKey:WorkScheduleID;constraint:OnDelete:SET NULL"`
	Departments  []DepartmentAllocation `json:"departments" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Teams        []TeamAllocation       `json:"teams" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Projects     []ProjectAllocation    `json:"projects" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// MainDepartment returns the department allocation marked as main, if any
func (e *Employee) MainDepartment() *DepartmentAllocation {
	for i := range e.Departments {
		if e.Departments[i].IsMain {
			return &e.Departments[i]
		}
	}
	return nil
}

// MainTeam returns the team allocation marked as main, if any
func (e *Employee) MainTeam() *TeamAllocation {
	for i := range e.Teams {
		if e.Teams[i].IsMain {
			return &e.Teams[i]
		}
	}
	return nil
}
