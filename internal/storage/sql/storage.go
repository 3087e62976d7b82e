package sqlstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boubertbot/boubert/internal/storage"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

var ErrConnectionFailed = errors.New("failed to connect")

const dbErrUniqueViolation = "23505"

type Config struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
}

type Storage struct {
	host     string
	port     int
	database string
	username string
	password string
	db       *sqlx.DB
}

func New(config Config) *Storage {
	return &Storage{
		host:     config.Host,
		port:     config.Port,
		database: config.Database,
		username: config.Username,
		password: config.Password,
	}
}

func (s *Storage) Connect(ctx context.Context) error {
	db, err := sqlx.ConnectContext(
		ctx,
		"postgres",
		fmt.Sprintf(
			"sslmode=disable host=%s port=%d dbname=%s user=%s password=%s",
			s.host, s.port, s.database, s.username, s.password),
	)
	if err != nil {
		log.Errorf("failed to connect: %v", err)
		return ErrConnectionFailed
	}
	s.db = db
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

func (s *Storage) AddEvent(ctx context.Context, e *storage.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO events(id, owner_id, title, event_date, event_time, remind_days, remind_hours) "+
			"VALUES($1, $2, $3, $4, $5, $6, $7)",
		e.ID, e.OwnerID, e.Title, e.Date, e.Time, e.RemindDays, e.RemindHours)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == dbErrUniqueViolation {
		return fmt.Errorf("duplicate ID %q: %w", e.ID, storage.ErrDuplicateEventID)
	}
	return err
}

func (s *Storage) ListEvents(ctx context.Context) ([]storage.Event, error) {
	var events []storage.Event
	err := s.db.SelectContext(
		ctx,
		&events,
		"SELECT id, owner_id, title, event_date, event_time, remind_days, remind_hours FROM events")
	return events, err
}

func (s *Storage) RemoveEvent(ctx context.Context, id string) error {
	var found bool
	err := s.db.GetContext(ctx, &found, "DELETE FROM events WHERE id=$1 RETURNING TRUE", id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !found) {
		return fmt.Errorf("failed to remove event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	return err
}

func (s *Storage) RemoveEventsByTitle(ctx context.Context, title string) (int, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE title=$1", title)
	if err != nil {
		return 0, err
	}
	removed, err := res.RowsAffected()
	return int(removed), err
}

func (s *Storage) AddLink(ctx context.Context, l *storage.Link) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO links(id, owner_id, title, url, saved_at) VALUES($1, $2, $3, $4, $5)",
		l.ID, l.OwnerID, l.Title, l.URL, l.SavedAt.UTC())

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == dbErrUniqueViolation {
		return fmt.Errorf("duplicate ID %q: %w", l.ID, storage.ErrDuplicateLinkID)
	}
	return err
}

func (s *Storage) ListLinks(ctx context.Context) ([]storage.Link, error) {
	var links []storage.Link
	err := s.db.SelectContext(
		ctx,
		&links,
		"SELECT id, owner_id, title, url, saved_at FROM links")
	return links, err
}
