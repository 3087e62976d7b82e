package storage

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is a scheduled moment with a reminder offset. Date and Time keep the
// user's original tokens so replies can echo them verbatim.
type Event struct {
	ID          string `json:"id" db:"id" bson:"_id"`
	OwnerID     string `json:"ownerId" db:"owner_id" bson:"usuario"`
	Title       string `json:"title" db:"title" bson:"titulo"`
	Date        string `json:"date" db:"event_date" bson:"fecha"`
	Time        string `json:"time" db:"event_time" bson:"hora"`
	RemindDays  int    `json:"remindDays" db:"remind_days" bson:"recordatorio_dias"`
	RemindHours int    `json:"remindHours" db:"remind_hours" bson:"recordatorio_horas"`
}

// Start parses the event's date and time into a single point in time.
// The tokens are wall-clock times in the server's zone: a reminder for
// "10:00" fires relative to local 10:00, not UTC.
func (e Event) Start() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %q has invalid date/time: %w", e.ID, err)
	}
	return t, nil
}

// DueAt is the moment the reminder should fire: the event start minus the
// reminder offset.
func (e Event) DueAt() (time.Time, error) {
	start, err := e.Start()
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, -e.RemindDays).Add(-time.Duration(e.RemindHours) * time.Hour), nil
}
