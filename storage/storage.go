package storage

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StoryCollection = "story"

// Document is a stored record as read back from a collection.
type Document = bson.M

type DocumentStorage interface {
	// Create stores doc in collection and returns its identifier
	Create(collection string, doc any) (string, error)
	// List returns up to limit documents matching filter, newest first; limit <= 0 means all
	List(collection string, filter Document, limit int64) ([]Document, error)
	// Name describes the backend for diagnostics
	Name() string
	CollectionNames() ([]string, error)
	Close() error
}

// stringifyID replaces an ObjectID _id with its hex form so documents can be
// handed to clients as plain JSON.
func stringifyID(doc Document) Document {
	if id, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = id.Hex()
	}
	return doc
}
