package storage

import "time"

// Link is a saved URL. Links are never mutated or deleted.
type Link struct {
	ID      string    `json:"id" db:"id" bson:"_id"`
	OwnerID string    `json:"ownerId" db:"owner_id" bson:"usuario"`
	Title   string    `json:"title" db:"title" bson:"titulo"`
	URL     string    `json:"url" db:"url" bson:"url"`
	SavedAt time.Time `json:"savedAt" db:"saved_at" bson:"fecha"`
}
