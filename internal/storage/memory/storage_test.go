package memorystorage_test

import (
	"context"
	"testing"

	"github.com/boubertbot/boubert/internal/storage"
	memorystorage "github.com/boubertbot/boubert/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

func newEvent(title string) storage.Event {
	return storage.Event{
		OwnerID:     "whatsapp:+100000000",
		Title:       title,
		Date:        "2025-03-01",
		Time:        "10:00",
		RemindDays:  1,
		RemindHours: 0,
	}
}

func TestEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("add and list", func(t *testing.T) {
		s := memorystorage.New()
		e := newEvent("meeting")

		require.NoError(t, s.AddEvent(ctx, &e))
		require.NotEmpty(t, e.ID)

		events, err := s.ListEvents(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, len(events))
		require.Equal(t, e, events[0])
	})

	t.Run("add with same id", func(t *testing.T) {
		s := memorystorage.New()
		e := newEvent("meeting")
		require.NoError(t, s.AddEvent(ctx, &e))

		dup := newEvent("meeting")
		dup.ID = e.ID
		require.ErrorIs(t, s.AddEvent(ctx, &dup), storage.ErrDuplicateEventID)
	})

	t.Run("remove", func(t *testing.T) {
		s := memorystorage.New()
		e := newEvent("meeting")
		require.NoError(t, s.AddEvent(ctx, &e))

		require.NoError(t, s.RemoveEvent(ctx, e.ID))

		events, err := s.ListEvents(ctx)
		require.NoError(t, err)
		require.Empty(t, events)
	})

	t.Run("remove is an atomic claim", func(t *testing.T) {
		s := memorystorage.New()
		e := newEvent("meeting")
		require.NoError(t, s.AddEvent(ctx, &e))

		require.NoError(t, s.RemoveEvent(ctx, e.ID))
		require.ErrorIs(t, s.RemoveEvent(ctx, e.ID), storage.ErrNotFoundEvent)
	})

	t.Run("remove not exist", func(t *testing.T) {
		s := memorystorage.New()
		require.ErrorIs(t, s.RemoveEvent(ctx, "___not_exists___"), storage.ErrNotFoundEvent)
	})

	t.Run("remove by title", func(t *testing.T) {
		s := memorystorage.New()
		first := newEvent("meeting")
		second := newEvent("meeting")
		other := newEvent("dentist")
		require.NoError(t, s.AddEvent(ctx, &first))
		require.NoError(t, s.AddEvent(ctx, &second))
		require.NoError(t, s.AddEvent(ctx, &other))

		removed, err := s.RemoveEventsByTitle(ctx, "meeting")
		require.NoError(t, err)
		require.Equal(t, 2, removed)

		events, err := s.ListEvents(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, len(events))
		require.Equal(t, "dentist", events[0].Title)
	})

	t.Run("remove by title without match", func(t *testing.T) {
		s := memorystorage.New()
		removed, err := s.RemoveEventsByTitle(ctx, "meeting")
		require.NoError(t, err)
		require.Equal(t, 0, removed)
	})
}

func TestLinks(t *testing.T) {
	ctx := context.Background()

	t.Run("add and list", func(t *testing.T) {
		s := memorystorage.New()
		l := storage.Link{OwnerID: "whatsapp:+100000000", Title: "docs", URL: "https://example.com"}

		require.NoError(t, s.AddLink(ctx, &l))
		require.NotEmpty(t, l.ID)

		links, err := s.ListLinks(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, len(links))
		require.Equal(t, l, links[0])
	})

	t.Run("add with same id", func(t *testing.T) {
		s := memorystorage.New()
		l := storage.Link{Title: "docs", URL: "https://example.com"}
		require.NoError(t, s.AddLink(ctx, &l))

		dup := storage.Link{ID: l.ID, Title: "docs", URL: "https://example.com"}
		require.ErrorIs(t, s.AddLink(ctx, &dup), storage.ErrDuplicateLinkID)
	})
}
