package testutils

import (
	"testing"

	"employee-portal-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated in-memory database private to the test
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(":memory:", &database.Options{Driver: database.DriverSQLite})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
