package models

import (
	"time"
)

// ClockLayout is the layout of working-hours and break boundaries ("09:00")
const ClockLayout = "15:04"

// TimeRange is a wall-clock interval within a working day
type TimeRange struct {
	Start string `json:"start" gorm:"size:5"`
	End   string `json:"end" gorm:"size:5"`
}

// Contains reports whether other lies entirely within r.
// Unparseable boundaries are never contained.
func (r TimeRange) Contains(other TimeRange) bool {
	start, err1 := time.Parse(ClockLayout, r.Start)
	end, err2 := time.Parse(ClockLayout, r.End)
	oStart, err3 := time.Parse(ClockLayout, other.Start)
	oEnd, err4 := time.Parse(ClockLayout, other.End)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return !oStart.Before(start) && !oEnd.After(end) && oStart.Before(oEnd)
}

// WorkSchedule is a named template of working days, hours and breaks
type WorkSchedule struct {
	BaseModel
	Name         string      `json:"name" gorm:"not null;size:100"`
	WorkingDays  []string    `json:"workingDays" gorm:"serializer:json"`
	WorkingHours TimeRange   `json:"workingHours" gorm:"embedded;embeddedPrefix:working_hours_"`
	Breaks       []TimeRange `json:"breaks" gorm:"serializer:json"`
}

// TableName returns the table name for WorkSchedule
func (WorkSchedule) TableName() string {
	return "work_schedules"
}
