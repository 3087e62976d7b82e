package memorystorage

import (
	"context"
	"fmt"
	"sync"

	"github.com/boubertbot/boubert/internal/storage"
	"github.com/google/uuid"
)

type Storage struct {
	mu     sync.RWMutex
	events map[string]storage.Event
	links  map[string]storage.Link
}

func New() *Storage {
	return &Storage{
		events: make(map[string]storage.Event),
		links:  make(map[string]storage.Link),
	}
}

func (s *Storage) Connect(_ context.Context) error {
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	return nil
}

func (s *Storage) AddEvent(_ context.Context, e *storage.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.ID]; ok {
		return fmt.Errorf("duplicate ID %q: %w", e.ID, storage.ErrDuplicateEventID)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.events[e.ID] = *e
	return nil
}

func (s *Storage) ListEvents(_ context.Context) ([]storage.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]storage.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	return events, nil
}

func (s *Storage) RemoveEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("failed to remove event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	delete(s.events, id)
	return nil
}

func (s *Storage) RemoveEventsByTitle(_ context.Context, title string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.events {
		if e.Title == title {
			delete(s.events, id)
			removed++
		}
	}
	return removed, nil
}

func (s *Storage) AddLink(_ context.Context, l *storage.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[l.ID]; ok {
		return fmt.Errorf("duplicate ID %q: %w", l.ID, storage.ErrDuplicateLinkID)
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	s.links[l.ID] = *l
	return nil
}

func (s *Storage) ListLinks(_ context.Context) ([]storage.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	links := make([]storage.Link, 0, len(s.links))
	for _, l := range s.links {
		links = append(links, l)
	}
	return links, nil
}
