package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentStore saves and loads named documents.
type DocumentStore interface {
	Save(ctx context.Context, doc Document) error
	LoadAll(ctx context.Context) ([]Document, error)
}

// MongoStore keeps every document in a single collection, one per name.
type MongoStore struct {
	db         *Database
	collection string
}

// NewMongoStore creates a store on top of a connected Database.
func NewMongoStore(db *Database, collection string) *MongoStore {
	return &MongoStore{db: db, collection: collection}
}

// Save upserts the document by name, replacing the previous version.
// While the database is offline the write is queued and replayed on reconnect.
func (s *MongoStore) Save(ctx context.Context, doc Document) error {
	if !s.db.Connected() {
		s.db.AddToWriteQueue(QueuedOperation{CollectionName: s.collection, Document: doc})
		logger.Debug(fmt.Sprintf("DB offline, '%s' encolado", doc.Name), "DB")
		return nil
	}

	col := s.db.GetCollection(s.collection)
	if col == nil {
		return fmt.Errorf("collection %s unavailable", s.collection)
	}

	_, err := col.ReplaceOne(ctx, bson.M{"name": doc.Name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if s.db.checkConnection() {
			return fmt.Errorf("save %s: %w", doc.Name, err)
		}
		s.db.AddToWriteQueue(QueuedOperation{CollectionName: s.collection, Document: doc})
		return nil
	}
	return nil
}

// LoadAll returns every stored document, converting the legacy key/val layout.
func (s *MongoStore) LoadAll(ctx context.Context) ([]Document, error) {
	col := s.db.GetCollection(s.collection)
	if col == nil {
		return nil, fmt.Errorf("collection %s unavailable", s.collection)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []Document
	for cursor.Next(ctx) {
		var stored storedDocument
		if err := cursor.Decode(&stored); err != nil {
			return nil, fmt.Errorf("documento ilegible en '%s': %w", s.collection, err)
		}
		doc, err := stored.toDocument()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cursor.Err()
}

// MemoryStore is an in-process DocumentStore used by tests and offline runs.
type MemoryStore struct {
	mu    sync.Mutex
	docs  map[string]Document
	order []string
	saves []string
	fail  error

	loadFail  error
	loadFails int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(docs ...Document) *MemoryStore {
	m := &MemoryStore{docs: make(map[string]Document)}
	for _, doc := range docs {
		m.put(doc)
	}
	return m
}

func (m *MemoryStore) put(doc Document) {
	if _, ok := m.docs[doc.Name]; !ok {
		m.order = append(m.order, doc.Name)
	}
	data := make([]byte, len(doc.Data))
	copy(data, doc.Data)
	m.docs[doc.Name] = Document{Name: doc.Name, Data: data}
}

// Save stores a copy of the document.
func (m *MemoryStore) Save(ctx context.Context, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, doc.Name)
	if m.fail != nil {
		return m.fail
	}
	m.put(doc)
	return nil
}

// LoadAll returns the documents in first-save order.
func (m *MemoryStore) LoadAll(ctx context.Context) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadFails > 0 {
		m.loadFails--
		return nil, m.loadFail
	}
	docs := make([]Document, 0, len(m.order))
	for _, name := range m.order {
		docs = append(docs, m.docs[name])
	}
	return docs, nil
}

// Get returns the stored document with the given name.
func (m *MemoryStore) Get(name string) (Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[name]
	return doc, ok
}

// Saves returns the names of every Save call in order, failed ones included.
func (m *MemoryStore) Saves() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.saves...)
}

// FailWith makes subsequent saves return err. Pass nil to recover.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// FailLoads makes the next n LoadAll calls return err.
func (m *MemoryStore) FailLoads(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadFails = n
	m.loadFail = err
}
