// Package view holds per-session screen state for the portal: the profile
// viewer/editor and the daily presence calendar, plus their display lookups.
package view

import (
	"strings"
	"unicode"

	"employee-portal-backend/internal/database/models"
)

// Placeholders shown when an employee has no main grouping or schedule
const (
	NoDepartment   = "Не назначен"
	NoTeam         = "Не назначена"
	NoWorkSchedule = "Не назначен"
	NoEntries      = "Нет записей на выбранную дату"
)

// PresenceLabel is how a presence type is displayed. Icon and Color are empty for unknown types.
type PresenceLabel struct {
	Text  string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

var presenceLabels = map[models.PresenceType]PresenceLabel{
	models.PresenceTypeOffice:       {Text: "В офисе", Icon: "map-pin", Color: "blue"},
	models.PresenceTypeRemote:       {Text: "Удалённо", Icon: "briefcase", Color: "green"},
	models.PresenceTypeVacation:     {Text: "Отпуск", Icon: "plane", Color: "yellow"},
	models.PresenceTypeSick:         {Text: "Больничный", Icon: "stethoscope", Color: "red"},
	models.PresenceTypeBusinessTrip: {Text: "Командировка", Icon: "briefcase", Color: "purple"},
	models.PresenceTypeMeeting:      {Text: "Встреча", Icon: "users", Color: "indigo"},
}

var workModeLabels = map[models.WorkMode]string{
	models.WorkModeOffice: "Офис",
	models.WorkModeRemote: "Удалённо",
	models.WorkModeHybrid: "Гибрид",
}

// LabelForPresence returns the display label of t; unknown types keep their raw value and get no icon
func LabelForPresence(t models.PresenceType) PresenceLabel {
	if label, ok := presenceLabels[t]; ok {
		return label
	}
	return PresenceLabel{Text: string(t)}
}

// LabelForWorkMode returns the display label of m, or m itself when unknown
func LabelForWorkMode(m models.WorkMode) string {
	if label, ok := workModeLabels[m]; ok {
		return label
	}
	return string(m)
}

// Initials returns the first letter of every word of a full name, upper-cased
func Initials(fullName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(fullName) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
