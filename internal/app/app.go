package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boubertbot/boubert/internal/calendar"
	"github.com/boubertbot/boubert/internal/command"
	"github.com/boubertbot/boubert/internal/storage"
	log "github.com/sirupsen/logrus"
)

const calendarCallTimeout = 10 * time.Second

const (
	ReplyFallback          = "Sorry, I did not understand that. Send 'comandos' to see the available commands."
	ReplyBadDateTime       = "Could not read the date and time. Use YYYY-MM-DD HH:MM."
	ReplyBadReminder       = "Reminder days and hours must be non-negative numbers."
	ReplyEventSaveFailed   = "Could not save the event, please try again."
	ReplyNoEvents          = "No events scheduled."
	ReplyLinkSaved         = "Link saved."
	ReplyLinkSaveFailed    = "Could not save the link, please try again."
	ReplyNoLinks           = "No links saved."
	ReplyAlarmsUnavailable = "Alarms are not configured."
	ReplyAlarmFailed       = "Could not create the alarm, please try again."
	ReplyListFailed        = "Could not read the saved records, please try again."
)

const helpText = `Boubert commands:

Events and reminders:
  Lista de eventos -> show all saved events.
  Evento [date] [time] [title] [reminder days] [reminder hours] -> save an event.
  Eliminar evento [title] -> delete an event.

Saved links:
  Guardar enlace [title] [URL] -> save a link.
  Lista de enlaces -> show saved links.

Alarms:
  Pon una alarma [date] [time] [title] -> set an alarm.

Info:
  Ayuda or Comandos -> show this list.`

// App turns an inbound message into a store mutation or query and a reply.
// The calendar bridge may be nil; alarms then answer with a fixed reply.
type App struct {
	storage  storage.Storage
	calendar calendar.Bridge
	now      func() time.Time
}

func New(stor storage.Storage, bridge calendar.Bridge) *App {
	return &App{storage: stor, calendar: bridge, now: time.Now}
}

func (a *App) Handle(ctx context.Context, owner string, body string) string {
	cmd := command.Parse(body)
	switch cmd.Intent {
	case command.IntentCreateEvent:
		return a.createEvent(ctx, owner, cmd.Args)
	case command.IntentListEvents:
		return a.listEvents(ctx)
	case command.IntentDeleteEvent:
		return a.deleteEvent(ctx, cmd.Args)
	case command.IntentSaveLink:
		return a.saveLink(ctx, owner, cmd.Args)
	case command.IntentListLinks:
		return a.listLinks(ctx)
	case command.IntentCreateAlarm:
		return a.createAlarm(ctx, owner, cmd.Args)
	case command.IntentHelp:
		return helpText
	default:
		return ReplyFallback
	}
}

// args: date, time, title, reminder days, reminder hours.
func (a *App) createEvent(ctx context.Context, owner string, args []string) string {
	date, clock, title := args[0], args[1], args[2]
	days, errDays := strconv.Atoi(args[3])
	hours, errHours := strconv.Atoi(args[4])
	if errDays != nil || errHours != nil || days < 0 || hours < 0 {
		return ReplyBadReminder
	}
	e := storage.Event{
		OwnerID:     owner,
		Title:       title,
		Date:        date,
		Time:        clock,
		RemindDays:  days,
		RemindHours: hours,
	}
	if _, err := e.Start(); err != nil {
		return ReplyBadDateTime
	}
	if err := a.storage.AddEvent(ctx, &e); err != nil {
		log.Errorf("failed to add event: %v", err)
		return ReplyEventSaveFailed
	}
	return fmt.Sprintf("Event %q saved for %s at %s.", title, date, clock)
}

// Lists include every owner's events: the original bot never scoped list
// operations to the requesting user.
func (a *App) listEvents(ctx context.Context) string {
	events, err := a.storage.ListEvents(ctx)
	if err != nil {
		log.Errorf("failed to list events: %v", err)
		return ReplyListFailed
	}
	if len(events) == 0 {
		return ReplyNoEvents
	}
	var b strings.Builder
	b.WriteString("Events:")
	for _, e := range events {
		b.WriteString(fmt.Sprintf("\n%s - %s %s", e.Title, e.Date, e.Time))
	}
	return b.String()
}

// args: title.
func (a *App) deleteEvent(ctx context.Context, args []string) string {
	title := args[0]
	removed, err := a.storage.RemoveEventsByTitle(ctx, title)
	if err != nil {
		log.Errorf("failed to delete events: %v", err)
		return ReplyListFailed
	}
	if removed == 0 {
		return fmt.Sprintf("No event named %q.", title)
	}
	if removed == 1 {
		return fmt.Sprintf("Event %q deleted.", title)
	}
	return fmt.Sprintf("Deleted %d events named %q.", removed, title)
}

// args: title, url.
func (a *App) saveLink(ctx context.Context, owner string, args []string) string {
	l := storage.Link{
		OwnerID: owner,
		Title:   args[0],
		URL:     args[1],
		SavedAt: a.now().UTC(),
	}
	if err := a.storage.AddLink(ctx, &l); err != nil {
		log.Errorf("failed to add link: %v", err)
		return ReplyLinkSaveFailed
	}
	return ReplyLinkSaved
}

func (a *App) listLinks(ctx context.Context) string {
	links, err := a.storage.ListLinks(ctx)
	if err != nil {
		log.Errorf("failed to list links: %v", err)
		return ReplyListFailed
	}
	if len(links) == 0 {
		return ReplyNoLinks
	}
	var b strings.Builder
	b.WriteString("Links:")
	for _, l := range links {
		b.WriteString(fmt.Sprintf("\n%s - %s", l.Title, l.URL))
	}
	return b.String()
}

// args: date, time, title. The calendar entry is zero-duration: start and
// end are the same moment, with the calendar's default reminders enabled.
func (a *App) createAlarm(ctx context.Context, _ string, args []string) string {
	date, clock, title := args[0], args[1], args[2]
	start, err := time.Parse(storage.DateLayout+" "+storage.TimeLayout, date+" "+clock)
	if err != nil {
		return ReplyBadDateTime
	}
	if a.calendar == nil {
		return ReplyAlarmsUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, calendarCallTimeout)
	defer cancel()
	if _, err := a.calendar.CreateEvent(ctx, title, start, start); err != nil {
		log.Errorf("failed to create alarm: %v", err)
		return ReplyAlarmFailed
	}
	return fmt.Sprintf("Alarm %q set for %s at %s.", title, date, clock)
}
