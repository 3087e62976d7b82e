package mongostorage

import (
	"context"
	"fmt"

	"github.com/boubertbot/boubert/internal/storage"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names match the original deployment of this bot.
const (
	eventsCollection = "eventos"
	linksCollection  = "enlaces"
)

type Config struct {
	URI      string
	Database string
}

type Storage struct {
	uri      string
	database string
	client   *mongo.Client
	events   *mongo.Collection
	links    *mongo.Collection
}

func New(config Config) *Storage {
	return &Storage{uri: config.URI, database: config.Database}
}

func (s *Storage) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	s.client = client
	db := client.Database(s.database)
	s.events = db.Collection(eventsCollection)
	s.links = db.Collection(linksCollection)
	return nil
}

func (s *Storage) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

func (s *Storage) AddEvent(ctx context.Context, e *storage.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.events.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("duplicate ID %q: %w", e.ID, storage.ErrDuplicateEventID)
	}
	return err
}

func (s *Storage) ListEvents(ctx context.Context) ([]storage.Event, error) {
	cursor, err := s.events.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	events := make([]storage.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// RemoveEvent deletes by ID. DeleteOne is atomic, so concurrent scanners
// racing on the same event see exactly one successful removal.
func (s *Storage) RemoveEvent(ctx context.Context, id string) error {
	res, err := s.events.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("failed to remove event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	return nil
}

func (s *Storage) RemoveEventsByTitle(ctx context.Context, title string) (int, error) {
	res, err := s.events.DeleteMany(ctx, bson.D{{Key: "titulo", Value: title}})
	if err != nil {
		return 0, err
	}
	return int(res.DeletedCount), nil
}

func (s *Storage) AddLink(ctx context.Context, l *storage.Link) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := s.links.InsertOne(ctx, l)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("duplicate ID %q: %w", l.ID, storage.ErrDuplicateLinkID)
	}
	return err
}

func (s *Storage) ListLinks(ctx context.Context) ([]storage.Link, error) {
	cursor, err := s.links.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	links := make([]storage.Link, 0)
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}
