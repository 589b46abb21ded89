package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Presence describes where or how an employee was engaged during an interval
type Presence struct {
	BaseModel
	EmployeeID uuid.UUID    `json:"employeeId" gorm:"type:uuid;not null;index:idx_presences_employee_start"`
	Type       PresenceType `json:"type" gorm:"type:varchar(30);not null"`
	StartTime  time.Time    `json:"startTime" gorm:"not null;index:idx_presences_employee_start"`
	EndTime    time.Time    `json:"endTime" gorm:"not null"`
	Note       *string      `json:"note,omitempty" gorm:"type:text"`
}

// TableName returns the table name for Presence
func (Presence) TableName() string {
	return "presences"
}

// ProductionCalendar lists holidays and working days of a year.
// Reserved: no component reads it yet.
type ProductionCalendar struct {
	BaseModel
	Year        int         `json:"year" gorm:"not null;uniqueIndex"`
	Holidays    []time.Time `json:"holidays" gorm:"serializer:json"`
	WorkingDays []time.Time `json:"workingDays" gorm:"serializer:json"`
}

// TableName returns the table name for ProductionCalendar
func (ProductionCalendar) TableName() string {
	return "production_calendars"
}

// BeforeSave stores interval boundaries in UTC
func (p *Presence) BeforeSave(tx *gorm.DB) error {
	p.StartTime = p.StartTime.UTC()
	p.EndTime = p.EndTime.UTC()
	return nil
}
