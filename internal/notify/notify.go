package notify

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gen2brain/beeep"
	"github.com/pathakanu/medReminder/internal/model"
)

// Notification is a single reminder alert.
type Notification struct {
	Title   string
	Message string
}

// ForReminder builds the alert shown when a reminder is due.
func ForReminder(r model.Reminder) Notification {
	return Notification{
		Title:   fmt.Sprintf("Medicine Reminder: %s", r.MedicineName),
		Message: fmt.Sprintf("Time to take %s of %s.", r.Dosage, r.MedicineName),
	}
}

// Notifier delivers notifications over one channel.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Desktop shows notifications on the local desktop.
type Desktop struct {
	send func(title, message, icon string) error
}

// NewDesktop returns a notifier backed by the OS notification service.
func NewDesktop() *Desktop {
	return &Desktop{send: func(title, message, icon string) error {
		return beeep.Notify(title, message, icon)
	}}
}

// Notify pops up a desktop notification.
func (d *Desktop) Notify(_ context.Context, n Notification) error {
	if err := d.send(n.Title, n.Message, ""); err != nil {
		return fmt.Errorf("desktop notify: %w", err)
	}
	return nil
}

// Logger writes notifications to a log. It never fails.
type Logger struct {
	logger *log.Logger
}

// NewLogger returns a notifier that records each alert on logger.
func NewLogger(logger *log.Logger) *Logger {
	return &Logger{logger: logger}
}

// Notify logs the notification.
func (l *Logger) Notify(_ context.Context, n Notification) error {
	l.logger.Printf("notify: %s: %s", n.Title, n.Message)
	return nil
}

// Multi fans a notification out to every channel. A failing channel does not
// stop the rest; all errors are joined.
type Multi []Notifier

// Notify delivers n to each channel in order.
func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
