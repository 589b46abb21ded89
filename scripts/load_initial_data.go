package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"employee-portal-backend/internal/config"
	"employee-portal-backend/internal/database"
	"employee-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type WorkScheduleData struct {
	Name         string          `yaml:"name"`
	WorkingDays  []string        `yaml:"working_days"`
	WorkingHours TimeRangeData   `yaml:"working_hours"`
	Breaks       []TimeRangeData `yaml:"breaks,omitempty"`
}

type TimeRangeData struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type UnitData struct {
	Name string `yaml:"name"`
	Main bool   `yaml:"main,omitempty"`
}

type ProjectData struct {
	Name       string `yaml:"name"`
	Allocation int    `yaml:"allocation"`
}

type EmployeeData struct {
	FullName     string        `yaml:"full_name"`
	Position     string        `yaml:"position"`
	Email        string        `yaml:"email"`
	Password     string        `yaml:"password"`
	Role         string        `yaml:"role"`
	WorkMode     string        `yaml:"work_mode"`
	WorkSchedule string        `yaml:"work_schedule,omitempty"`
	Departments  []UnitData    `yaml:"departments,omitempty"`
	Teams        []UnitData    `yaml:"teams,omitempty"`
	Projects     []ProjectData `yaml:"projects,omitempty"`
}

type PresenceData struct {
	Employee string `yaml:"employee"`
	Type     string `yaml:"type"`
	Date     string `yaml:"date"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Note     string `yaml:"note,omitempty"`
}

// File structures
type SeedFile struct {
	WorkSchedules []WorkScheduleData `yaml:"work_schedules"`
	Employees     []EmployeeData     `yaml:"employees"`
	Presences     []PresenceData     `yaml:"presences"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	if err := loadData(db, seed, cfg.Location()); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DSN(), opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every .yaml file under dataDir
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	var seed SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		seed.WorkSchedules = append(seed.WorkSchedules, file.WorkSchedules...)
		seed.Employees = append(seed.Employees, file.Employees...)
		seed.Presences = append(seed.Presences, file.Presences...)
		return nil
	})

	return &seed, err
}

// loadData inserts the seed in dependency order. Records that already exist are left untouched.
func loadData(db *gorm.DB, seed *SeedFile, loc *time.Location) error {
	scheduleMap := make(map[string]*models.WorkSchedule)
	created := 0
	for _, data := range seed.WorkSchedules {
		schedule, isNew, err := createWorkSchedule(db, data)
		if err != nil {
			return fmt.Errorf("failed to create work schedule %s: %w", data.Name, err)
		}
		scheduleMap[data.Name] = schedule
		if isNew {
			created++
		}
	}
	log.Printf("Work schedules: %d created, %d total", created, len(seed.WorkSchedules))

	employeeMap := make(map[string]*models.Employee)
	created = 0
	for _, data := range seed.Employees {
		employee, isNew, err := createEmployee(db, data, scheduleMap)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", data.Email, err)
		}
		employeeMap[employee.Email] = employee
		if isNew {
			created++
		}
	}
	log.Printf("Employees: %d created, %d total", created, len(seed.Employees))

	created = 0
	for i, data := range seed.Presences {
		isNew, err := createPresence(db, data, employeeMap, loc)
		if err != nil {
			return fmt.Errorf("failed to create presence #%d for %s: %w", i+1, data.Employee, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Presences: %d created, %d total", created, len(seed.Presences))

	return nil
}

func createWorkSchedule(db *gorm.DB, data WorkScheduleData) (*models.WorkSchedule, bool, error) {
	var schedule models.WorkSchedule
	err := db.Where("name = ?", data.Name).First(&schedule).Error
	if err == nil {
		return &schedule, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query work schedule: %w", err)
	}

	schedule = models.WorkSchedule{
		Name:         data.Name,
		WorkingDays:  data.WorkingDays,
		WorkingHours: models.TimeRange{Start: data.WorkingHours.Start, End: data.WorkingHours.End},
	}
	for _, b := range data.Breaks {
		br := models.TimeRange{Start: b.Start, End: b.End}
		if !schedule.WorkingHours.Contains(br) {
			log.Printf("Warning: break %s-%s of %s lies outside working hours", b.Start, b.End, data.Name)
		}
		schedule.Breaks = append(schedule.Breaks, br)
	}

	if err := db.Create(&schedule).Error; err != nil {
		return nil, false, err
	}
	return &schedule, true, nil
}

func createEmployee(db *gorm.DB, data EmployeeData, scheduleMap map[string]*models.WorkSchedule) (*models.Employee, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var employee models.Employee
	err := db.Where("email = ?", email).First(&employee).Error
	if err == nil {
		return &employee, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query employee: %w", err)
	}

	role := models.UserRole(data.Role)
	if role == "" {
		role = models.UserRoleUser
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("unknown role %q", data.Role)
	}
	mode := models.WorkMode(data.WorkMode)
	if mode == "" {
		mode = models.WorkModeOffice
	}
	if !mode.IsValid() {
		return nil, false, fmt.Errorf("unknown work mode %q", data.WorkMode)
	}

	employee = models.Employee{
		FullName: data.FullName,
		Position: data.Position,
		Email:    email,
		Role:     role,
		WorkMode: mode,
	}

	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, fmt.Errorf("failed to hash password: %w", err)
		}
		employee.PasswordHash = string(hash)
	}

	if data.WorkSchedule != "" {
		schedule := scheduleMap[data.WorkSchedule]
		if schedule == nil {
			return nil, false, fmt.Errorf("work schedule %s not found", data.WorkSchedule)
		}
		employee.WorkScheduleID = &schedule.ID
	}

	for _, d := range data.Departments {
		employee.Departments = append(employee.Departments, models.DepartmentAllocation{
			DepartmentID:   unitID("department", d.Name),
			DepartmentName: d.Name,
			IsMain:         d.Main,
		})
	}
	for _, t := range data.Teams {
		employee.Teams = append(employee.Teams, models.TeamAllocation{
			TeamID:   unitID("team", t.Name),
			TeamName: t.Name,
			IsMain:   t.Main,
		})
	}
	for _, p := range data.Projects {
		employee.Projects = append(employee.Projects, models.ProjectAllocation{
			ProjectID:   unitID("project", p.Name),
			ProjectName: p.Name,
			Allocation:  p.Allocation,
		})
	}

	if err := db.Create(&employee).Error; err != nil {
		return nil, false, err
	}
	return &employee, true, nil
}

func createPresence(db *gorm.DB, data PresenceData, employeeMap map[string]*models.Employee, loc *time.Location) (bool, error) {
	employee := employeeMap[strings.ToLower(data.Employee)]
	if employee == nil {
		return false, fmt.Errorf("employee %s not found", data.Employee)
	}

	presenceType := models.PresenceType(data.Type)
	if !presenceType.IsValid() {
		log.Printf("Warning: presence type %q is not a known type", data.Type)
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", data.Date+" "+data.Start, loc)
	if err != nil {
		return false, fmt.Errorf("invalid start: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", data.Date+" "+data.End, loc)
	if err != nil {
		return false, fmt.Errorf("invalid end: %w", err)
	}
	if !start.Before(end) {
		return false, fmt.Errorf("start %s is not before end %s", data.Start, data.End)
	}

	var count int64
	if err := db.Model(&models.Presence{}).
		Where("employee_id = ? AND start_time = ? AND type = ?", employee.ID, start.UTC(), presenceType).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query presence: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	presence := models.Presence{
		EmployeeID: employee.ID,
		Type:       presenceType,
		StartTime:  start,
		EndTime:    end,
	}
	if data.Note != "" {
		note := data.Note
		presence.Note = &note
	}
	if err := db.Create(&presence).Error; err != nil {
		return false, err
	}
	return true, nil
}

// unitID derives a stable id for a named department, team or project so that
// employees sharing a unit reference the same id
func unitID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name))
}
