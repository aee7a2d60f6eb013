package storage

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStorage keeps documents in process. Documents go through a bson round
// trip so they read back with the same field names as from MongoDB.
type MemoryStorage struct {
	collections map[string][]Document
	mutex       sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		collections: make(map[string][]Document),
	}
}

func (m *MemoryStorage) Create(collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	var stored Document
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("decoding document: %w", err)
	}
	id := primitive.NewObjectID()
	stored["_id"] = id

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.collections[collection] = append(m.collections[collection], stored)
	return id.Hex(), nil
}

func (m *MemoryStorage) List(collection string, filter Document, limit int64) ([]Document, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	stored := m.collections[collection]
	docs := make([]Document, 0)
	for i := len(stored) - 1; i >= 0; i-- {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		if !matches(stored[i], filter) {
			continue
		}
		docs = append(docs, stringifyID(copyDocument(stored[i])))
	}
	return docs, nil
}

func (m *MemoryStorage) Name() string {
	return "memory"
}

func (m *MemoryStorage) CollectionNames() ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

// matches supports top-level equality filters only.
func matches(doc, filter Document) bool {
	for key, want := range filter {
		if got, ok := doc[key]; !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func copyDocument(doc Document) Document {
	c := make(Document, len(doc))
	for k, v := range doc {
		c[k] = v
	}
	return c
}
