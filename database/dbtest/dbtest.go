// Package dbtest opens throwaway sqlite databases with the fyyur schema for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/rpupo63/fyyur/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated database stored in a temp dir that is removed when
// the test ends.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "fyyur_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(tb, err, "open sqlite database")
	require.NoError(tb, models.Migrate(db), "migrate test schema")

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
