//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"employee-portal-backend/internal/database/models"
	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/store"
	"employee-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PostgresRepositoryTestSuite runs the repositories against a real Postgres container
type PostgresRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.RepositoryTestSuite
	employees     *EmployeeRepository
	presences     *PresenceRepository
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.NewRepositoryTestSuite(suite.T())

	client := store.NewGormClient(suite.baseTestSuite.DB)
	suite.employees = NewEmployeeRepository(client)
	suite.presences = NewPresenceRepository(client)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PostgresRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PostgresRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PostgresRepositoryTestSuite) TestProfileRoundTrip() {
	f := suite.baseTestSuite.Factories
	schedule := f.WorkSchedule.Create()
	employee := f.Employee.WithAllocations()
	employee.WorkScheduleID = &schedule.ID
	suite.Require().NoError(testutils.Persist(suite.baseTestSuite.DB, schedule, employee))

	err := suite.employees.UpdateProfile(suite.ctx, employee.ID, ProfileUpdate{
		FullName:       "Иванов Иван",
		WorkMode:       models.WorkModeRemote,
		WorkScheduleID: &schedule.ID,
	})
	suite.Require().NoError(err)

	profile, err := suite.employees.GetProfile(suite.ctx, employee.ID)
	suite.Require().NoError(err)
	suite.Equal("Иванов Иван", profile.FullName)
	suite.Equal(models.WorkModeRemote, profile.WorkMode)
	suite.Equal("ИТ", profile.MainDepartment().DepartmentName)
	suite.Equal(schedule.Name, profile.WorkSchedule.Name)
}

func (suite *PostgresRepositoryTestSuite) TestDuplicateEmailRejected() {
	f := suite.baseTestSuite.Factories
	suite.Require().NoError(testutils.Persist(suite.baseTestSuite.DB, f.Employee.WithEmail("dup@example.com")))

	err := testutils.Persist(suite.baseTestSuite.DB, f.Employee.WithEmail("dup@example.com"))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *PostgresRepositoryTestSuite) TestPresenceWindowInLocalZone() {
	f := suite.baseTestSuite.Factories
	employee := f.Employee.Create()
	suite.Require().NoError(testutils.Persist(suite.baseTestSuite.DB, employee))

	msk := time.FixedZone("MSK", 3*60*60)
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, msk)
	endOfDay := day.Add(24*time.Hour - time.Millisecond)
	suite.Require().NoError(testutils.Persist(suite.baseTestSuite.DB,
		f.Presence.Create(employee.ID, day.Add(9*time.Hour), day.Add(18*time.Hour)),
		f.Presence.Create(employee.ID, day.Add(23*time.Hour), day.Add(26*time.Hour)),
	))

	got, err := suite.presences.GetByEmployeeInRange(suite.ctx, employee.ID, day, endOfDay)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].StartTime.Equal(day.Add(9 * time.Hour)))

	_, err = suite.employees.GetProfile(suite.ctx, uuid.New())
	suite.True(apperrors.IsNotFound(err))
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
