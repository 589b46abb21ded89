package models

import (
	"github.com/google/uuid"
)

// DepartmentAllocation links an employee to a department
type DepartmentAllocation struct {
	BaseModel
	EmployeeID     uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	DepartmentID   uuid.UUID `json:"departmentId" gorm:"type:uuid;not null"`
	DepartmentName string    `json:"departmentName" gorm:"not null;size:200"`
	IsMain         bool      `json:"isMain" gorm:"default:false"`
}

// TableName returns the table name for DepartmentAllocation
func (DepartmentAllocation) TableName() string {
	return "employee_departments"
}

// TeamAllocation links an employee to a team
type TeamAllocation struct {
	BaseModel
	EmployeeID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	TeamID     uuid.UUID `json:"teamId" gorm:"type:uuid;not null"`
	TeamName   string    `json:"teamName" gorm:"not null;size:200"`
	IsMain     bool      `json:"isMain" gorm:"default:false"`
}

// TableName returns the table name for TeamAllocation
func (TeamAllocation) TableName() string {
	return "employee_teams"
}

// ProjectAllocation links an employee to a project with a percentage of their time.
// Allocation is conventionally a multiple of 10 between 0 and 100.
type ProjectAllocation struct {
	BaseModel
	EmployeeID  uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null"`
	ProjectName string    `json:"projectName" gorm:"not null;size:200"`
	Allocation  int       `json:"allocation" gorm:"not null;default:0"`
}

// TableName returns the table name for ProjectAllocation
func (ProjectAllocation) TableName() string {
	return "employee_projects"
}
