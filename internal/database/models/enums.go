package models

// WorkMode defines where an employee normally works
type WorkMode string

const (
	WorkModeOffice WorkMode = "office"
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
)

// UserRole defines the portal role of an employee
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// PresenceType defines the kinds of presence records
type PresenceType string

const (
	PresenceTypeOffice       PresenceType = "office"
	PresenceTypeRemote       PresenceType = "remote"
	PresenceTypeVacation     PresenceType = "vacation"
	PresenceTypeSick         PresenceType = "sick"
	PresenceTypeBusinessTrip PresenceType = "business_trip"
	PresenceTypeMeeting      PresenceType = "meeting"
)

// PresenceTypes lists every known presence type in display order
var PresenceTypes = []PresenceType{
	PresenceTypeOffice,
	PresenceTypeRemote,
	PresenceTypeVacation,
	PresenceTypeSick,
	PresenceTypeBusinessTrip,
	PresenceTypeMeeting,
}

// IsValid checks if the WorkMode is valid
func (m WorkMode) IsValid() bool {
	switch m {
	case WorkModeOffice, WorkModeRemote, WorkModeHybrid:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

// IsValid checks if the PresenceType is valid
func (t PresenceType) IsValid() bool {
	for _, known := range PresenceTypes {
		if t == known {
			return true
		}
	}
	return false
}
