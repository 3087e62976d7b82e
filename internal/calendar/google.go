package calendar

import (
	"context"
	"fmt"
	"time"

	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type GoogleConfig struct {
	// CredentialsJSON is the service-account credentials blob, usually bound
	// to the GOOGLE_CREDENTIALS environment variable.
	CredentialsJSON string
	CalendarID      string
}

type Google struct {
	calendarID string
	service    *gcalendar.Service
}

func NewGoogle(ctx context.Context, config GoogleConfig) (*Google, error) {
	service, err := gcalendar.NewService(ctx, option.WithCredentialsJSON([]byte(config.CredentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar service: %w", err)
	}
	calendarID := config.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Google{calendarID: calendarID, service: service}, nil
}

func (g *Google) CreateEvent(ctx context.Context, title string, start time.Time, end time.Time) (string, error) {
	event := &gcalendar.Event{
		Summary: title,
		Start:   &gcalendar.EventDateTime{DateTime: start.UTC().Format(time.RFC3339), TimeZone: "UTC"},
		End:     &gcalendar.EventDateTime{DateTime: end.UTC().Format(time.RFC3339), TimeZone: "UTC"},
		Reminders: &gcalendar.EventReminders{
			UseDefault:      true,
			ForceSendFields: []string{"UseDefault"},
		},
	}
	created, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}
