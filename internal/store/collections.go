package store

import (
	"reflect"

	"employee-portal-backend/internal/database/models"
	apperrors "employee-portal-backend/internal/errors"
)

// Logical collection names
const (
	CollectionEmployees           = "employees"
	CollectionEmployeeDepartments = "employee_departments"
	CollectionEmployeeTeams       = "employee_teams"
	CollectionEmployeeProjects    = "employee_projects"
	CollectionWorkSchedules       = "work_schedules"
	CollectionPresences           = "presences"
)

// collection maps a logical collection onto its model, columns and relations
type collection struct {
	name      string
	model     reflect.Type
	fields    map[string]string
	joins     map[string]string
	updatable map[string]bool
}

var allocationFields = map[string]string{
	"id":         "id",
	"employeeId": "employee_id",
	"isMain":     "is_main",
}

var collections = map[string]*collection{
	CollectionEmployees: {
		name:  CollectionEmployees,
		model: reflect.TypeOf(models.Employee{}),
		fields: map[string]string{
			"id":           "id",
			"fullName":     "full_name",
			"position":     "position",
			"email":        "email",
			"role":         "role",
			"workMode":     "work_mode",
			"workSchedule": "work_schedule_id",
		},
		joins: map[string]string{
			"departments":  "Departments",
			"teams":        "Teams",
			"projects":     "Projects",
			"workSchedule": "WorkSchedule",
		},
		updatable: map[string]bool{
			"fullName":     true,
			"workMode":     true,
			"workSchedule": true,
		},
	},
	CollectionEmployeeDepartments: {
		name:   CollectionEmployeeDepartments,
		model:  reflect.TypeOf(models.DepartmentAllocation{}),
		fields: withFields(allocationFields, map[string]string{"departmentId": "department_id", "departmentName": "department_name"}),
	},
	CollectionEmployeeTeams: {
		name:   CollectionEmployeeTeams,
		model:  reflect.TypeOf(models.TeamAllocation{}),
		fields: withFields(allocationFields, map[string]string{"teamId": "team_id", "teamName": "team_name"}),
	},
	CollectionEmployeeProjects: {
		name:  CollectionEmployeeProjects,
		model: reflect.TypeOf(models.ProjectAllocation{}),
		fields: map[string]string{
			"id":          "id",
			"employeeId":  "employee_id",
			"projectId":   "project_id",
			"projectName": "project_name",
			"allocation":  "allocation",
		},
	},
	CollectionWorkSchedules: {
		name:  CollectionWorkSchedules,
		model: reflect.TypeOf(models.WorkSchedule{}),
		fields: map[string]string{
			"id":   "id",
			"name": "name",
		},
	},
	CollectionPresences: {
		name:  CollectionPresences,
		model: reflect.TypeOf(models.Presence{}),
		fields: map[string]string{
			"id":         "id",
			"employeeId": "employee_id",
			"type":       "type",
			"startTime":  "start_time",
			"endTime":    "end_time",
		},
	},
}

func withFields(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func lookupCollection(name string) (*collection, error) {
	c, ok := collections[name]
	if !ok {
		return nil, apperrors.MalformedQuery("unknown collection %q", name)
	}
	return c, nil
}

func (c *collection) column(field string) (string, error) {
	col, ok := c.fields[field]
	if !ok {
		return "", apperrors.MalformedQuery("unknown field %q in %s", field, c.name)
	}
	return col, nil
}

func (c *collection) association(join string) (string, error) {
	assoc, ok := c.joins[join]
	if !ok {
		return "", apperrors.MalformedQuery("unknown relation %q in %s", join, c.name)
	}
	return assoc, nil
}

func (c *collection) newModel() interface{} {
	return reflect.New(c.model).Interface()
}
