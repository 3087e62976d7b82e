//go:build mongo

package mongostorage_test

import (
	"context"
	"os"
	"testing"

	"github.com/boubertbot/boubert/internal/storage"
	mongostorage "github.com/boubertbot/boubert/internal/storage/mongo"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	uri      = "mongodb://127.0.0.1:27017"
	database = "boubert_testing"
)

func TestMain(m *testing.M) {
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		uri = mongoURI
	}

	os.Exit(m.Run())
}

func createStorage(t *testing.T) *mongostorage.Storage {
	t.Helper()
	cleanupDB(t)
	s := mongostorage.New(mongostorage.Config{URI: uri, Database: database})
	require.NoError(t, s.Connect(context.Background()))
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func cleanupDB(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer client.Disconnect(ctx)
	require.NoError(t, client.Database(database).Drop(ctx))
}

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

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("add and list event", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("meeting")

		require.NoError(t, s.AddEvent(ctx, &e))
		require.NotEmpty(t, e.ID)

		events, err := s.ListEvents(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, len(events))
		require.Equal(t, e, events[0])
	})

	t.Run("add event with same id", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("meeting")
		require.NoError(t, s.AddEvent(ctx, &e))

		dup := newEvent("meeting")
		dup.ID = e.ID
		require.ErrorIs(t, s.AddEvent(ctx, &dup), storage.ErrDuplicateEventID)
	})

	t.Run("remove event is an atomic claim", func(t *testing.T) {
		s := createStorage(t)
		e := newEvent("meeting")
		require.NoError(t, s.AddEvent(ctx, &e))

		require.NoError(t, s.RemoveEvent(ctx, e.ID))
		require.ErrorIs(t, s.RemoveEvent(ctx, e.ID), storage.ErrNotFoundEvent)

		events, err := s.ListEvents(ctx)
		require.NoError(t, err)
		require.Empty(t, events)
	})

	t.Run("remove not exist event", func(t *testing.T) {
		s := createStorage(t)
		require.ErrorIs(t, s.RemoveEvent(ctx, "___not_exists___"), storage.ErrNotFoundEvent)
	})

	t.Run("remove events by title", func(t *testing.T) {
		s := createStorage(t)
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

	t.Run("add and list link", func(t *testing.T) {
		s := createStorage(t)
		l := storage.Link{OwnerID: "whatsapp:+100000000", Title: "docs", URL: "https://example.com"}

		require.NoError(t, s.AddLink(ctx, &l))
		require.NotEmpty(t, l.ID)

		links, err := s.ListLinks(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, len(links))
		require.Equal(t, l.Title, links[0].Title)
		require.Equal(t, l.URL, links[0].URL)
	})
}
