package database

import (
	"context"
	"fmt"

	"github.com/pathakanu/medReminder/internal/model"
	"gorm.io/gorm"
)

// Store persists reminders in the single reminders table.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Add inserts a reminder as given. No field is validated.
func (s *Store) Add(ctx context.Context, reminder *model.Reminder) error {
	if err := s.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// ListDue returns every reminder whose stored time equals hhmm exactly.
func (s *Store) ListDue(ctx context.Context, hhmm string) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := s.db.WithContext(ctx).
		Where(map[string]interface{}{"time": hhmm}).
		Order("id ASC").
		Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list due reminders at %s: %w", hhmm, err)
	}
	return reminders, nil
}

// List returns all stored reminders in insertion order.
func (s *Store) List(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
