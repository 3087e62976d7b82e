// Package scanner periodically re-evaluates stored events against the
// current time and delivers reminders for the ones that are due.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boubertbot/boubert/internal/storage"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultInterval = time.Minute

	notifyTimeout  = 10 * time.Second
	notifyAttempts = 3
	notifyBackoff  = 500 * time.Millisecond
)

// Notifier delivers one reminder. Implementations send through the
// messaging gateway directly or publish to a queue for a separate sender.
type Notifier interface {
	Notify(ctx context.Context, e storage.Event) error
}

type Scanner struct {
	storage  storage.Storage
	notifier Notifier
	interval time.Duration
	now      func() time.Time
}

func New(stor storage.Storage, notifier Notifier, interval time.Duration) *Scanner {
	return NewWithClock(stor, notifier, interval, time.Now)
}

// NewWithClock is New with an injected time source.
func NewWithClock(stor storage.Storage, notifier Notifier, interval time.Duration, now func() time.Time) *Scanner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scanner{storage: stor, notifier: notifier, interval: interval, now: now}
}

// Run ticks until the context is canceled.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		s.Tick(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick performs one full scan. A due event is claimed by removing it from
// the store before delivery; only the scanner that wins the removal sends,
// so overlapping or concurrent scans cannot deliver the same reminder
// twice. A delivery that still fails after retries is logged and dropped:
// losing one reminder is preferred over duplicating it.
func (s *Scanner) Tick(ctx context.Context) {
	now := s.now()
	events, err := s.storage.ListEvents(ctx)
	if err != nil {
		log.Errorf("failed to list events: %v", err)
		return
	}
	for _, e := range events {
		dueAt, err := e.DueAt()
		if err != nil {
			log.Errorf("skipping event %q: %v", e.ID, err)
			continue
		}
		if now.Before(dueAt) {
			continue
		}
		if err := s.storage.RemoveEvent(ctx, e.ID); err != nil {
			if errors.Is(err, storage.ErrNotFoundEvent) {
				// Claimed by a concurrent scan.
				continue
			}
			log.Errorf("failed to claim event %q: %v", e.ID, err)
			continue
		}
		if err := s.notify(ctx, e); err != nil {
			log.Errorf("dropping reminder for event %q after failed delivery: %v", e.ID, err)
		}
	}
}

func (s *Scanner) notify(ctx context.Context, e storage.Event) error {
	delay := notifyBackoff
	var err error
	for attempt := 0; attempt < notifyAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
		err = s.notifier.Notify(attemptCtx, e)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == notifyAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}

// ReminderText renders the outbound reminder message.
func ReminderText(e storage.Event) string {
	return fmt.Sprintf("Reminder: %s is on %s at %s", e.Title, e.Date, e.Time)
}
