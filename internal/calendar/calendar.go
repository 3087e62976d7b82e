package calendar

import (
	"context"
	"time"
)

// Bridge forwards alarms to an external calendar.
type Bridge interface {
	CreateEvent(ctx context.Context, title string, start time.Time, end time.Time) (string, error)
}
