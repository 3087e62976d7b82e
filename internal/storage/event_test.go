package storage_test

import (
	"testing"
	"time"

	"github.com/boubertbot/boubert/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestEventStart(t *testing.T) {
	e := storage.Event{Date: "2025-03-01", Time: "10:00"}
	start, err := e.Start()
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local), start)
}

func TestEventStartIsLocalWallClock(t *testing.T) {
	restore := time.Local
	time.Local = time.FixedZone("UTC-5", -5*60*60)
	defer func() { time.Local = restore }()

	e := storage.Event{Date: "2025-03-01", Time: "10:00"}
	start, err := e.Start()
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC).Unix(), start.Unix())
}

func TestEventStartInvalid(t *testing.T) {
	tests := []struct {
		name string
		e    storage.Event
	}{
		{name: "bad date", e: storage.Event{Date: "tomorrow", Time: "10:00"}},
		{name: "bad time", e: storage.Event{Date: "2025-03-01", Time: "morning"}},
		{name: "empty", e: storage.Event{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.e.Start()
			require.Error(t, err)
		})
	}
}

func TestEventDueAt(t *testing.T) {
	e := storage.Event{Date: "2025-03-01", Time: "10:00", RemindDays: 1, RemindHours: 2}
	dueAt, err := e.DueAt()
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 2, 28, 8, 0, 0, 0, time.Local), dueAt)
}

func TestEventDueAtWithoutOffset(t *testing.T) {
	e := storage.Event{Date: "2025-03-01", Time: "10:00"}
	dueAt, err := e.DueAt()
	require.NoError(t, err)

	start, err := e.Start()
	require.NoError(t, err)
	require.Equal(t, start, dueAt)
}
