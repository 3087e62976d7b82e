package storage

import (
	"context"
	"errors"
)

var (
	ErrDuplicateEventID = errors.New("event with same ID exists")
	ErrNotFoundEvent    = errors.New("event not found")
	ErrDuplicateLinkID  = errors.New("link with same ID exists")
)

// Storage persists the bot's records. RemoveEvent returns ErrNotFoundEvent
// when the event is already gone, which lets the reminder scanner use it as
// an atomic claim: whoever removes a due event first is the one that delivers.
type Storage interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	AddEvent(ctx context.Context, e *Event) error
	ListEvents(ctx context.Context) ([]Event, error)
	RemoveEvent(ctx context.Context, id string) error
	RemoveEventsByTitle(ctx context.Context, title string) (int, error)
	AddLink(ctx context.Context, l *Link) error
	ListLinks(ctx context.Context) ([]Link, error)
}
