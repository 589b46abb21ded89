package main

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"employee-portal-backend/internal/database/models"
	"employee-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadSeedData(t *testing.T) {
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	seed, err := loadSeedFiles("data")
	require.NoError(t, err)
	require.Len(t, seed.WorkSchedules, 2)
	require.Len(t, seed.Employees, 3)
	require.NotEmpty(t, seed.Presences)

	msk, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	db := testutils.NewSQLiteDB(t)

	require.NoError(t, loadData(db, seed, msk))

	var ivanova models.Employee
	require.NoError(t, db.Preload("Departments").Preload("Teams").Preload("Projects").Preload("WorkSchedule").
		Where("email = ?", "ivanova@example.com").First(&ivanova).Error)
	assert.Equal(t, "Иванова Мария", ivanova.FullName)
	assert.Equal(t, models.WorkModeHybrid, ivanova.WorkMode)
	assert.Equal(t, models.UserRoleAdmin, ivanova.Role)
	require.NotNil(t, ivanova.WorkSchedule)
	assert.Equal(t, "Стандартный", ivanova.WorkSchedule.Name)
	assert.Equal(t, "Platform", ivanova.MainTeam().TeamName)
	assert.Len(t, ivanova.Projects, 2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(ivanova.PasswordHash), []byte("password123")))

	var petrov models.Employee
	require.NoError(t, db.Preload("Departments").Where("email = ?", "petrov@example.com").First(&petrov).Error)
	assert.Equal(t, ivanova.MainDepartment().DepartmentID, petrov.MainDepartment().DepartmentID, "shared units share ids")

	var sidorov models.Employee
	require.NoError(t, db.Where("email = ?", "sidorov@example.com").First(&sidorov).Error)
	assert.Equal(t, models.UserRoleUser, sidorov.Role)
	assert.Nil(t, sidorov.WorkScheduleID)

	var presences []models.Presence
	require.NoError(t, db.Where("employee_id = ?", ivanova.ID).Order("start_time").Find(&presences).Error)
	require.Len(t, presences, 3)
	assert.Equal(t, time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC), presences[0].StartTime.UTC())
	require.NotNil(t, presences[1].Note)
	assert.Equal(t, "Планирование спринта", *presences[1].Note)

	t.Run("loading twice changes nothing", func(t *testing.T) {
		require.NoError(t, loadData(db, seed, msk))

		var employees, schedules, allPresences int64
		db.Model(&models.Employee{}).Count(&employees)
		db.Model(&models.WorkSchedule{}).Count(&schedules)
		db.Model(&models.Presence{}).Count(&allPresences)
		assert.Equal(t, int64(3), employees)
		assert.Equal(t, int64(2), schedules)
		assert.Equal(t, int64(len(seed.Presences)), allPresences)
	})
}

func TestLoadDataRejectsBadSeed(t *testing.T) {
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	db := testutils.NewSQLiteDB(t)

	tests := []struct {
		name string
		seed SeedFile
	}{
		{"unknown schedule", SeedFile{Employees: []EmployeeData{{FullName: "A", Email: "a@example.com", WorkSchedule: "Ночной"}}}},
		{"unknown work mode", SeedFile{Employees: []EmployeeData{{FullName: "B", Email: "b@example.com", WorkMode: "space"}}}},
		{"unknown employee", SeedFile{Presences: []PresenceData{{Employee: "nobody@example.com", Type: "office", Date: "2024-03-15", Start: "09:00", End: "10:00"}}}},
		{"inverted interval", SeedFile{
			Employees: []EmployeeData{{FullName: "C", Email: "c@example.com"}},
			Presences: []PresenceData{{Employee: "c@example.com", Type: "office", Date: "2024-03-15", Start: "18:00", End: "09:00"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, loadData(db, &tt.seed, time.UTC))
		})
	}
}
