package database

import (
	"fmt"
	"log"

	"github.com/pathakanu/medReminder/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the reminder database and makes sure the reminders table exists.
// PostgreSQL is used when databaseURL is set, otherwise the SQLite file at sqlitePath.
func Open(databaseURL, sqlitePath string) (*Store, error) {
	dialector, backend := sqlite.Open(sqlitePath), "SQLite "+sqlitePath
	if databaseURL != "" {
		dialector, backend = postgres.Open(databaseURL), "PostgreSQL"
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}
	if err := db.AutoMigrate(&model.Reminder{}); err != nil {
		return nil, fmt.Errorf("migrate %s table: %w", model.Reminder{}.TableName(), err)
	}

	var count int64
	if err := db.Model(&model.Reminder{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count %s: %w", model.Reminder{}.TableName(), err)
	}
	log.Printf("database: %s table ready on %s (%d reminders)", model.Reminder{}.TableName(), backend, count)

	return NewStore(db), nil
}
