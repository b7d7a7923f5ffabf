// Package databasetest provides in-memory reminder stores for tests.
package databasetest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pathakanu/medReminder/internal/database"
	"github.com/pathakanu/medReminder/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewStore opens a private in-memory SQLite store named after the test.
func NewStore(t testing.TB) *database.Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	if err := db.AutoMigrate(&model.Reminder{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return database.NewStore(db)
}
