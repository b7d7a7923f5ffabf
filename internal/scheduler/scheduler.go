package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pathakanu/medReminder/internal/model"
	"github.com/pathakanu/medReminder/internal/notify"
	"github.com/robfig/cron/v3"
)

// TimeLayout is the stored reminder time format.
const TimeLayout = "15:04"

// DueLister returns reminders scheduled for a given "HH:MM" minute.
type DueLister interface {
	ListDue(ctx context.Context, hhmm string) ([]model.Reminder, error)
}

// Scheduler periodically fires notifications for due reminders.
type Scheduler struct {
	store    DueLister
	notifier notify.Notifier
	interval time.Duration
	location *time.Location
	logger   *log.Logger
	now      func() time.Time

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

// New creates a scheduler that checks store every interval in location.
func New(store DueLister, notifier notify.Notifier, interval time.Duration, location *time.Location, logger *log.Logger) *Scheduler {
	if location == nil {
		location = time.Local
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		interval: interval,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the check job and starts the scheduler loop.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return fmt.Errorf("scheduler already started")
	}

	c := cron.New(cron.WithLocation(s.location))
	ctx, cancel := context.WithCancel(context.Background())
	_, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.Tick(ctx, s.now())
	})
	if err != nil {
		cancel()
		return fmt.Errorf("register reminder check: %w", err)
	}

	c.Start()
	s.cron, s.cancel = c, cancel
	s.logger.Printf("scheduler: checking reminders every %s", s.interval)
	return nil
}

// Stop cancels any in-flight check and waits for it to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c, cancel := s.cron, s.cancel
	s.cron, s.cancel = nil, nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
	s.logger.Printf("scheduler: stopped")
}

// Tick notifies once for every reminder stored at the minute of now and
// returns how many notifications were attempted. Nothing is suppressed: a
// reminder fires on every tick that lands in its minute.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) int {
	minute := now.In(s.location).Format(TimeLayout)

	due, err := s.store.ListDue(ctx, minute)
	if err != nil {
		s.logger.Printf("scheduler: %v", err)
		return 0
	}

	sent := 0
	for _, reminder := range due {
		if ctx.Err() != nil {
			break
		}
		sent++
		if err := s.notifier.Notify(ctx, notify.ForReminder(reminder)); err != nil {
			s.logger.Printf("scheduler: reminder %d (%s): %v", reminder.ID, reminder.MedicineName, err)
		}
	}
	return sent
}
