package service

import (
	"fmt"

	"employee-portal-backend/internal/database/models"
)

// Issue is a data-integrity observation about a loaded profile.
// Issues are reported, never enforced.
type Issue struct {
	Check   string
	Message string
}

// Diagnose inspects an employee's allocations and schedule for conventions the store does not enforce
func Diagnose(e *models.Employee) []Issue {
	var issues []Issue

	mainDepartments := 0
	for _, d := range e.Departments {
		if d.IsMain {
			mainDepartments++
		}
	}
	if mainDepartments > 1 {
		issues = append(issues, Issue{"main_department", fmt.Sprintf("%d departments are marked as main", mainDepartments)})
	}

	mainTeams := 0
	for _, t := range e.Teams {
		if t.IsMain {
			mainTeams++
		}
	}
	if mainTeams > 1 {
		issues = append(issues, Issue{"main_team", fmt.Sprintf("%d teams are marked as main", mainTeams)})
	}

	total := 0
	for _, p := range e.Projects {
		total += p.Allocation
		if p.Allocation < 0 || p.Allocation > 100 || p.Allocation%10 != 0 {
			issues = append(issues, Issue{"project_allocation", fmt.Sprintf("allocation %d%% to %q is not a multiple of 10 in 0..100", p.Allocation, p.ProjectName)})
		}
	}
	if total > 100 {
		issues = append(issues, Issue{"project_total", fmt.Sprintf("project allocations sum to %d%%", total)})
	}

	if ws := e.WorkSchedule; ws != nil {
		for _, b := range ws.Breaks {
			if !ws.WorkingHours.Contains(b) {
				issues = append(issues, Issue{"break_window", fmt.Sprintf("break %s-%s is outside working hours %s-%s", b.Start, b.End, ws.WorkingHours.Start, ws.WorkingHours.End)})
			}
		}
	}

	return issues
}
