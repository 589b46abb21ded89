package store

import (
	"context"
	"testing"
	"time"

	"employee-portal-backend/internal/database/models"
	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GormClientTestSuite exercises the client against an in-memory database
type GormClientTestSuite struct {
	suite.Suite
	db        *gorm.DB
	client    *GormClient
	factories *testutils.FactorySet
	ctx       context.Context
}

func (suite *GormClientTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.client = NewGormClient(suite.db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *GormClientTestSuite) seedEmployee() *models.Employee {
	schedule := suite.factories.WorkSchedule.Create()
	employee := suite.factories.Employee.WithAllocations()
	employee.WorkScheduleID = &schedule.ID
	suite.Require().NoError(testutils.Persist(suite.db, schedule, employee))
	return employee
}

func (suite *GormClientTestSuite) TestQueryOneWithJoins() {
	employee := suite.seedEmployee()

	var got models.Employee
	err := suite.client.QueryOne(suite.ctx, Query{
		Collection: CollectionEmployees,
		Filters:    []Filter{Eq("id", employee.ID)},
		Joins:      []string{"departments", "teams", "projects", "workSchedule"},
	}, &got)

	suite.Require().NoError(err)
	suite.Equal(employee.FullName, got.FullName)
	suite.Len(got.Departments, 2)
	suite.Len(got.Teams, 2)
	suite.Len(got.Projects, 2)
	suite.Require().NotNil(got.WorkSchedule)
	suite.Equal("Стандартный", got.WorkSchedule.Name)
	suite.Equal([]models.TimeRange{{Start: "13:00", End: "14:00"}}, got.WorkSchedule.Breaks)
	suite.Equal("ИТ", got.MainDepartment().DepartmentName)
}

func (suite *GormClientTestSuite) TestJoinedRecordsComeInCreationOrder() {
	employee := suite.factories.Employee.Create()
	suite.Require().NoError(testutils.Persist(suite.db, employee))

	earlier := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)
	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	suite.Require().NoError(testutils.Persist(suite.db,
		&models.DepartmentAllocation{BaseModel: models.BaseModel{ID: lowID, CreatedAt: later}, EmployeeID: employee.ID, DepartmentID: uuid.New(), DepartmentName: "Продажи", IsMain: true},
		&models.DepartmentAllocation{BaseModel: models.BaseModel{ID: highID, CreatedAt: earlier}, EmployeeID: employee.ID, DepartmentID: uuid.New(), DepartmentName: "ИТ", IsMain: true},
		&models.TeamAllocation{BaseModel: models.BaseModel{ID: highID, CreatedAt: earlier}, EmployeeID: employee.ID, TeamID: uuid.New(), TeamName: "Platform", IsMain: true},
		&models.TeamAllocation{BaseModel: models.BaseModel{ID: lowID, CreatedAt: earlier}, EmployeeID: employee.ID, TeamID: uuid.New(), TeamName: "Backend", IsMain: true},
	))

	load := func() models.Employee {
		var got models.Employee
		suite.Require().NoError(suite.client.QueryOne(suite.ctx, Query{
			Collection: CollectionEmployees,
			Filters:    []Filter{Eq("id", employee.ID)},
			Joins:      []string{"departments", "teams"},
		}, &got))
		return got
	}

	first := load()
	suite.Require().Len(first.Departments, 2)
	suite.Equal("ИТ", first.Departments[0].DepartmentName)
	suite.Equal("ИТ", first.MainDepartment().DepartmentName)
	suite.Require().Len(first.Teams, 2)
	suite.Equal("Backend", first.Teams[0].TeamName)
	suite.Equal("Backend", first.MainTeam().TeamName)

	second := load()
	suite.Equal(first.Departments, second.Departments)
	suite.Equal(first.Teams, second.Teams)
}

func (suite *GormClientTestSuite) TestQueryOneWithoutJoinsLeavesRelationsEmpty() {
	employee := suite.seedEmployee()

	var got models.Employee
	err := suite.client.QueryOne(suite.ctx, Query{
		Collection: CollectionEmployees,
		Filters:    []Filter{Eq("id", employee.ID)},
	}, &got)

	suite.Require().NoError(err)
	suite.Empty(got.Departments)
	suite.Nil(got.WorkSchedule)
}

func (suite *GormClientTestSuite) TestQueryOneNotFound() {
	var got models.Employee
	err := suite.client.QueryOne(suite.ctx, Query{
		Collection: CollectionEmployees,
		Filters:    []Filter{Eq("id", uuid.New())},
	}, &got)

	suite.Error(err)
	suite.True(apperrors.IsQuery(err))
	suite.True(apperrors.IsNotFound(err))
}

func (suite *GormClientTestSuite) TestQueryOneAmbiguous() {
	e1 := suite.factories.Employee.Create()
	e2 := suite.factories.Employee.Create()
	suite.Require().NoError(testutils.Persist(suite.db, e1, e2))

	var got models.Employee
	err := suite.client.QueryOne(suite.ctx, Query{
		Collection: CollectionEmployees,
		Filters:    []Filter{Eq("role", models.UserRoleUser)},
	}, &got)

	suite.ErrorIs(err, apperrors.ErrAmbiguousMatch)
}

func (suite *GormClientTestSuite) TestQueryRangeAndOrder() {
	employee := suite.seedEmployee()
	other := suite.factories.Employee.Create()
	suite.Require().NoError(testutils.Persist(suite.db, other))

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }
	p := suite.factories.Presence
	suite.Require().NoError(testutils.Persist(suite.db,
		p.WithType(employee.ID, models.PresenceTypeMeeting, at(14, 0), at(15, 0)),
		p.Create(employee.ID, at(9, 0), at(13, 0)),
		// crosses into the day from the previous one
		p.Create(employee.ID, at(-2, 0), at(1, 0)),
		// crosses into the next day
		p.Create(employee.ID, at(23, 0), at(25, 0)),
		p.Create(other.ID, at(10, 0), at(11, 0)),
		p.Create(employee.ID, at(24+9, 0), at(24+18, 0)),
	))

	from := day
	to := day.Add(24*time.Hour - time.Millisecond)

	var got []models.Presence
	err := suite.client.Query(suite.ctx, Query{
		Collection: CollectionPresences,
		Filters: []Filter{
			Eq("employeeId", employee.ID),
			Gte("startTime", from),
			Lte("endTime", to),
		},
		Order: Asc("startTime"),
	}, &got)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(models.PresenceTypeOffice, got[0].Type)
	suite.Equal(models.PresenceTypeMeeting, got[1].Type)
	suite.True(got[0].StartTime.Equal(at(9, 0)))

	var desc []models.Presence
	err = suite.client.Query(suite.ctx, Query{
		Collection: CollectionPresences,
		Filters:    []Filter{Eq("employeeId", employee.ID), Gte("startTime", from), Lte("endTime", to)},
		Order:      Desc("startTime"),
	}, &desc)
	suite.Require().NoError(err)
	suite.Require().Len(desc, 2)
	suite.Equal(models.PresenceTypeMeeting, desc[0].Type)
}

func (suite *GormClientTestSuite) TestQueryNormalizesTimeZones() {
	employee := suite.seedEmployee()
	msk := time.FixedZone("MSK", 3*60*60)
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, msk)
	suite.Require().NoError(testutils.Persist(suite.db,
		suite.factories.Presence.Create(employee.ID, start, start.Add(time.Hour))))

	dayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, msk)
	var got []models.Presence
	err := suite.client.Query(suite.ctx, Query{
		Collection: CollectionPresences,
		Filters: []Filter{
			Eq("employeeId", employee.ID),
			Gte("startTime", dayStart),
			Lte("endTime", dayStart.Add(24*time.Hour-time.Millisecond)),
		},
	}, &got)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func (suite *GormClientTestSuite) TestQueryNoMatchIsEmpty() {
	var got []models.Presence
	err := suite.client.Query(suite.ctx, Query{
		Collection: CollectionPresences,
		Filters:    []Filter{Eq("employeeId", uuid.New())},
	}, &got)

	suite.NoError(err)
	suite.Empty(got)
}

func (suite *GormClientTestSuite) TestUpdate() {
	employee := suite.seedEmployee()
	night := suite.factories.WorkSchedule.WithName("Ночной")
	suite.Require().NoError(testutils.Persist(suite.db, night))

	err := suite.client.Update(suite.ctx, CollectionEmployees,
		[]Filter{Eq("id", employee.ID)},
		map[string]interface{}{
			"fullName":     "Иванов Иван",
			"workMode":     models.WorkModeRemote,
			"workSchedule": night.ID,
		})
	suite.Require().NoError(err)

	var got models.Employee
	suite.Require().NoError(suite.db.Preload("WorkSchedule").First(&got, "id = ?", employee.ID).Error)
	suite.Equal("Иванов Иван", got.FullName)
	suite.Equal(models.WorkModeRemote, got.WorkMode)
	suite.Equal("Ночной", got.WorkSchedule.Name)
	suite.Equal(employee.Email, got.Email)
}

func (suite *GormClientTestSuite) TestUpdateNoMatch() {
	err := suite.client.Update(suite.ctx, CollectionEmployees,
		[]Filter{Eq("id", uuid.New())},
		map[string]interface{}{"fullName": "Никто"})

	suite.True(apperrors.IsUpdate(err))
	suite.True(apperrors.IsNotFound(err))
}

func (suite *GormClientTestSuite) TestMalformedRequests() {
	id := uuid.New()
	var employee models.Employee
	var employees []models.Employee
	var presences []models.Presence

	tests := []struct {
		name string
		run  func() error
	}{
		{"unknown collection", func() error {
			return suite.client.Query(suite.ctx, Query{Collection: "salaries"}, &employees)
		}},
		{"unknown field", func() error {
			return suite.client.Query(suite.ctx, Query{Collection: CollectionEmployees, Filters: []Filter{Eq("salary", 1)}}, &employees)
		}},
		{"unknown operator", func() error {
			return suite.client.Query(suite.ctx, Query{Collection: CollectionEmployees, Filters: []Filter{{Field: "id", Op: "like", Value: "x"}}}, &employees)
		}},
		{"unknown order field", func() error {
			return suite.client.Query(suite.ctx, Query{Collection: CollectionEmployees, Order: Asc("salary")}, &employees)
		}},
		{"unknown join", func() error {
			return suite.client.QueryOne(suite.ctx, Query{Collection: CollectionEmployees, Filters: []Filter{Eq("id", id)}, Joins: []string{"salary"}}, &employee)
		}},
		{"destination of another collection", func() error {
			return suite.client.Query(suite.ctx, Query{Collection: CollectionEmployees}, &presences)
		}},
		{"non-slice destination for query", func() error {
			return suite.client.Query(suite.ctx, Query{Collection: CollectionEmployees}, &employee)
		}},
		{"non-pointer destination", func() error {
			return suite.client.QueryOne(suite.ctx, Query{Collection: CollectionEmployees}, employee)
		}},
		{"update without filters", func() error {
			return suite.client.Update(suite.ctx, CollectionEmployees, nil, map[string]interface{}{"fullName": "x"})
		}},
		{"update without fields", func() error {
			return suite.client.Update(suite.ctx, CollectionEmployees, []Filter{Eq("id", id)}, nil)
		}},
		{"update of read-only field", func() error {
			return suite.client.Update(suite.ctx, CollectionEmployees, []Filter{Eq("id", id)}, map[string]interface{}{"email": "x@example.com"})
		}},
		{"update of read-only collection", func() error {
			return suite.client.Update(suite.ctx, CollectionPresences, []Filter{Eq("id", id)}, map[string]interface{}{"type": "office"})
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.ErrorIs(tt.run(), apperrors.ErrMalformedQuery)
		})
	}
}

func TestGormClientTestSuite(t *testing.T) {
	suite.Run(t, new(GormClientTestSuite))
}
