package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexedCollections get a created_at index when the storage starts
var indexedCollections = []string{StoryCollection}

type MongoStorage struct {
	client   *mongo.Client
	database *mongo.Database
	log      *slog.Logger
}

func NewMongoStorage(uri, database string, log *slog.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	db := client.Database(database)

	for _, name := range indexedCollections {
		_, err = db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		})
		if err != nil {
			log.Warn("creating index", slog.String("collection", name), slog.String("error", err.Error()))
		}
	}

	return &MongoStorage{
		client:   client,
		database: db,
		log:      log,
	}, nil
}

func (m *MongoStorage) Create(collection string, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := m.database.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (m *MongoStorage) List(collection string, filter Document, limit int64) ([]Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if filter == nil {
		filter = Document{}
	}
	opts := newestFirst(limit)

	cursor, err := m.database.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding in %s: %w", collection, err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err := cursor.Close(ctx)
		if err != nil {
			m.log.Warn("closing cursor", slog.String("error", err.Error()))
		}
	}(cursor, ctx)

	docs := make([]Document, 0)
	for cursor.Next(ctx) {
		var doc Document
		if err := cursor.Decode(&doc); err != nil {
			m.log.Warn("decoding document", slog.String("collection", collection), slog.String("error", err.Error()))
			continue
		}
		docs = append(docs, stringifyID(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	return docs, nil
}

// newestFirst orders by created_at, ties broken by _id.
func newestFirst(limit int64) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}

func (m *MongoStorage) Name() string {
	return m.database.Name()
}

func (m *MongoStorage) CollectionNames() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	names, err := m.database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	return names, nil
}

func (m *MongoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
